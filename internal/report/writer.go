package report

import (
	"encoding/csv"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"

	"catdiff/internal/catalog"
	"catdiff/internal/compare"
)

// auxiliaryField is the fixed display column copied from the staging record
// into every report row.
const auxiliaryField = "product_websites"

// Options configures report rendering.
type Options struct {
	KeyField   string
	HTMLFields []string
}

// Line is one grouped report row: all of a key's rendered differences plus
// the auxiliary display value.
type Line struct {
	Key             string
	ProductWebsites string
	Differences     []string
}

// Group collapses entries into one Line per key, ordered by each key's first
// appearance in entries. The product_websites value comes from the staging
// record and is empty when the key is absent from staging.
func Group(entries []compare.Entry, staging *catalog.Catalog, opts Options) []Line {
	index := map[string]int{}
	var lines []Line

	for _, entry := range entries {
		i, ok := index[entry.Key]
		if !ok {
			i = len(lines)
			index[entry.Key] = i
			lines = append(lines, Line{Key: entry.Key})
		}
		lines[i].Differences = append(lines[i].Differences, render(entry, opts.HTMLFields))
	}

	for i := range lines {
		if record, ok := staging.Get(lines[i].Key); ok {
			lines[i].ProductWebsites = record[auxiliaryField]
		}
	}
	return lines
}

// render formats one entry for the differences column. Whole-record kinds
// render as their literal kind token; field-level kinds render as
// "field [staging → production]" with values escaped for HTML fields.
func render(entry compare.Entry, htmlFields []string) string {
	switch entry.Kind {
	case compare.KindMissingInProduction, compare.KindExtraInProduction:
		return string(entry.Kind)
	}

	stagingValue := entry.StagingValue
	productionValue := entry.ProductionValue
	if isHTMLField(entry.Field, htmlFields) {
		stagingValue = html.EscapeString(stagingValue)
		productionValue = html.EscapeString(productionValue)
	}
	return fmt.Sprintf("%s [%s → %s]", entry.Field, stagingValue, productionValue)
}

// isHTMLField reports whether field, or for sub-attribute fields the part
// before the colon, is in the configured escape set.
func isHTMLField(field string, htmlFields []string) bool {
	for _, htmlField := range htmlFields {
		if field == htmlField || strings.HasPrefix(field, htmlField+":") {
			return true
		}
	}
	return false
}

// Write emits the grouped lines as CSV with the fixed report header.
func Write(w io.Writer, lines []Line, keyField string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{keyField, auxiliaryField, "differences"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, line := range lines {
		row := []string{line.Key, line.ProductWebsites, strings.Join(line.Differences, "; ")}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row for %s: %w", line.Key, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteFile writes the report to path, creating the parent directory first.
func WriteFile(path string, lines []Line, keyField string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory %q: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report %s: %w", path, err)
	}
	defer file.Close()

	if err := Write(file, lines, keyField); err != nil {
		return err
	}
	return file.Close()
}
