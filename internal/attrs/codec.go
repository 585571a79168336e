package attrs

import (
	"html"
	"strings"
)

// Map holds decoded sub-attributes preserving first-seen key order. The
// empty value is distinct from an absent key.
type Map struct {
	values map[string]string
	keys   []string
}

// Get returns the value stored under key and whether the key is present.
func (m *Map) Get(key string) (string, bool) {
	value, ok := m.values[key]
	return value, ok
}

// Value returns the value stored under key, or "" when absent.
func (m *Map) Value(key string) string {
	return m.values[key]
}

// Keys returns the sub-keys in first-seen order.
func (m *Map) Keys() []string {
	return m.keys
}

// Len returns the number of sub-attributes.
func (m *Map) Len() int {
	return len(m.values)
}

func (m *Map) set(key, value string) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Parse decodes one compound attribute string into a Map. Pairs are split on
// separator; each pair splits on its first equals sign into a trimmed
// sub-key and sub-value. Sub-values are HTML-entity unescaped and lose one
// layer of surrounding matching quotes. A pair without an equals sign
// becomes a flag sub-key with an empty value. An empty input yields an
// empty Map, and a later duplicate sub-key overwrites the earlier value.
func Parse(value, separator string) *Map {
	m := &Map{values: map[string]string{}}
	if value == "" {
		return m
	}

	var pairs []string
	if separator == "" {
		pairs = []string{value}
	} else {
		pairs = strings.Split(value, separator)
	}

	for _, pair := range pairs {
		key, subValue, found := strings.Cut(pair, "=")
		if !found {
			m.set(strings.TrimSpace(pair), "")
			continue
		}
		subValue = html.UnescapeString(strings.TrimSpace(subValue))
		m.set(strings.TrimSpace(key), stripQuotes(subValue))
	}
	return m
}

func stripQuotes(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}
