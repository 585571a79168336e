// Package catalog loads delimited product catalog exports into keyed records.
//
// Catalog exports carry one column (usually additional_attributes) whose
// value may contain the row delimiter, quote characters, and the attribute
// separator marker. Loading happens in three phases: a quote-aware scan
// protects that column by substituting placeholder tokens for the sensitive
// characters, a standard CSV parse maps the now-safe line onto the header
// schema, and the placeholders are restored to their literal characters in
// the resulting record.
//
// Catalogs preserve key and column order as observed in the input so that
// downstream comparison output is deterministic.
package catalog
