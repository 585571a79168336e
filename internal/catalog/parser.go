package catalog

import "strings"

// Placeholder tokens substituted into the protected column before the
// structured parse and restored afterwards. They must never occur in real
// catalog data.
const (
	placeholderComma   = "<<<COMMA>>>"
	placeholderNewline = "<<<NEWLINE>>>"
	placeholderSection = "<<<SECTION>>>"
)

// sectionMarker is the attribute separator as it appears in raw catalog
// exports (U+00A7 SECTION SIGN, bytes 0xC2 0xA7 in UTF-8).
const sectionMarker = "§"

var protectReplacer = strings.NewReplacer(
	",", placeholderComma,
	"\n", placeholderNewline,
	"\r", placeholderNewline,
	sectionMarker, placeholderSection,
)

var restoreReplacer = strings.NewReplacer(
	placeholderComma, ",",
	placeholderNewline, "\n",
	placeholderSection, sectionMarker,
)

// ProtectLine splits one raw line on the delimiter with quote awareness and
// replaces delimiter-sensitive characters inside the column at specialIdx
// with placeholder tokens so the line survives a standard CSV parse. The
// protected column loses one layer of surrounding matching quotes; all other
// fields keep their original quote markers. A negative specialIdx disables
// protection and returns the line re-joined unchanged.
func ProtectLine(line string, delimiter rune, specialIdx int) string {
	parts := splitQuoteAware(line, delimiter)
	if specialIdx >= 0 && specialIdx < len(parts) {
		parts[specialIdx] = protectReplacer.Replace(stripQuotes(parts[specialIdx]))
	}
	return strings.Join(parts, string(delimiter))
}

// splitQuoteAware splits line on delimiter, treating the delimiter as a
// separator only outside quoted runs. Quoting opens on either `"` or `'` and
// closes only on the same character; quotes do not nest.
func splitQuoteAware(line string, delimiter rune) []string {
	var (
		parts     []string
		current   strings.Builder
		inQuotes  bool
		quoteChar rune
	)
	for _, ch := range line {
		switch {
		case ch == '"' || ch == '\'':
			if !inQuotes {
				inQuotes = true
				quoteChar = ch
			} else if quoteChar == ch {
				inQuotes = false
			}
			current.WriteRune(ch)
		case ch == delimiter && !inQuotes:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	parts = append(parts, current.String())
	return parts
}

// restoreValue reverses the placeholder substitution applied by ProtectLine.
func restoreValue(value string) string {
	return restoreReplacer.Replace(value)
}

// stripQuotes removes one layer of surrounding matching quotes, if present.
func stripQuotes(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}
