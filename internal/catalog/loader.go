package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Record holds one catalog row as column name to raw string value.
type Record map[string]string

// Catalog is a keyed set of records sharing one header schema. Key and
// column order match the input document so iteration is deterministic.
type Catalog struct {
	records map[string]Record
	keys    []string
	columns []string
}

// Get returns the record stored under key.
func (c *Catalog) Get(key string) (Record, bool) {
	record, ok := c.records[key]
	return record, ok
}

// Has reports whether a record exists under key.
func (c *Catalog) Has(key string) bool {
	_, ok := c.records[key]
	return ok
}

// Keys returns the catalog's keys in first-seen input order.
func (c *Catalog) Keys() []string {
	return c.keys
}

// Columns returns the header column names in input order.
func (c *Catalog) Columns() []string {
	return c.columns
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// LoadFile reads the document at path and loads it via Load. A leading
// UTF-8 byte order mark is stripped, matching exports produced by
// spreadsheet tooling.
func LoadFile(path string, delimiter rune, specialField, keyField string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	decoded, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), raw)
	if err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	catalog, err := Load(string(decoded), delimiter, specialField, keyField)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return catalog, nil
}

// Load parses a whole delimited document into a Catalog. Line 0 is the
// header. Each subsequent line is protected via ProtectLine, parsed with
// standard CSV semantics against the header schema, and the protected
// column's placeholders are restored. Rows whose key column is empty or
// absent are dropped; keys are stored trimmed; a later duplicate key
// replaces the earlier record. An empty document yields an empty Catalog.
//
// When specialField is absent from the header, protection is disabled and
// every row is parsed as an ordinary record.
func Load(content string, delimiter rune, specialField, keyField string) (*Catalog, error) {
	catalog := &Catalog{records: map[string]Record{}}

	lines := splitLines(content)
	if len(lines) == 0 {
		return catalog, nil
	}

	specialIdx := -1
	for i, name := range strings.Split(lines[0], string(delimiter)) {
		if name == specialField {
			specialIdx = i
			break
		}
	}

	processed := make([]string, 0, len(lines))
	processed = append(processed, lines[0])
	for _, line := range lines[1:] {
		processed = append(processed, ProtectLine(line, delimiter, specialIdx))
	}

	reader := csv.NewReader(strings.NewReader(strings.Join(processed, "\n")))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse rows: %w", err)
	}
	if len(rows) == 0 {
		return catalog, nil
	}

	catalog.columns = rows[0]
	for _, row := range rows[1:] {
		record := make(Record, len(catalog.columns))
		for i, name := range catalog.columns {
			if i < len(row) {
				record[name] = row[i]
			} else {
				record[name] = ""
			}
		}

		key := strings.TrimSpace(record[keyField])
		if key == "" {
			continue
		}

		if value, ok := record[specialField]; ok && value != "" {
			record[specialField] = restoreValue(value)
		}

		if _, exists := catalog.records[key]; !exists {
			catalog.keys = append(catalog.keys, key)
		}
		catalog.records[key] = record
	}

	return catalog, nil
}

// splitLines splits on any of the usual line terminators and drops the
// empty remainder after a trailing newline.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
