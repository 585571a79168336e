package compare

import (
	"strings"

	"catdiff/internal/attrs"
	"catdiff/internal/catalog"
)

// Kind classifies one detected divergence.
type Kind string

const (
	KindMissingInProduction Kind = "missing_in_production"
	KindExtraInProduction   Kind = "extra_in_production"
	KindDifferentValue      Kind = "different_value"
	KindDifferentAttribute  Kind = "different_value (additional_attribute)"
)

// Entry is one unit of divergence between the two catalogs. Field is empty
// for whole-record kinds and "column" or "column:subkey" otherwise.
type Entry struct {
	Key             string
	Kind            Kind
	Field           string
	StagingValue    string
	ProductionValue string
}

// Options configures a catalog comparison.
type Options struct {
	KeyField          string
	SpecialField      string
	AttrSeparator     string
	ExcludeColumns    []string
	ExcludeAttributes []string
}

// Catalogs compares staging against production and returns the ordered
// difference entries. Columns listed in ExcludeColumns are skipped entirely;
// sub-keys listed in ExcludeAttributes never appear in attribute diffs.
func Catalogs(staging, production *catalog.Catalog, opts Options) []Entry {
	excludeColumns := toSet(opts.ExcludeColumns)
	excludeAttributes := toSet(opts.ExcludeAttributes)

	var entries []Entry
	for _, key := range staging.Keys() {
		stagingRecord, _ := staging.Get(key)
		productionRecord, ok := production.Get(key)
		if !ok {
			entries = append(entries, Entry{Key: key, Kind: KindMissingInProduction})
			continue
		}

		for _, field := range staging.Columns() {
			if _, skip := excludeColumns[field]; skip {
				continue
			}

			stagingValue := strings.TrimSpace(stagingRecord[field])
			productionValue := strings.TrimSpace(productionRecord[field])

			if field == opts.SpecialField {
				entries = append(entries, attributeDiffs(
					key, field, stagingValue, productionValue,
					opts.AttrSeparator, excludeAttributes,
				)...)
				continue
			}

			if stagingValue != productionValue {
				entries = append(entries, Entry{
					Key:             key,
					Kind:            KindDifferentValue,
					Field:           field,
					StagingValue:    stagingValue,
					ProductionValue: productionValue,
				})
			}
		}
	}

	for _, key := range production.Keys() {
		if !staging.Has(key) {
			entries = append(entries, Entry{Key: key, Kind: KindExtraInProduction})
		}
	}

	return entries
}

// attributeDiffs computes the symmetric key-wise difference of the decoded
// additional-attributes values. Sub-key order is the union ordered by first
// observation in staging, then production.
func attributeDiffs(key, field, stagingValue, productionValue, separator string, exclude map[string]struct{}) []Entry {
	stagingAttrs := attrs.Parse(stagingValue, separator)
	productionAttrs := attrs.Parse(productionValue, separator)

	var entries []Entry
	for _, subKey := range stagingAttrs.Keys() {
		if _, skip := exclude[subKey]; skip {
			continue
		}
		stagingSub := stagingAttrs.Value(subKey)
		productionSub := productionAttrs.Value(subKey)
		if stagingSub != productionSub {
			entries = append(entries, Entry{
				Key:             key,
				Kind:            KindDifferentAttribute,
				Field:           field + ":" + subKey,
				StagingValue:    stagingSub,
				ProductionValue: productionSub,
			})
		}
	}

	for _, subKey := range productionAttrs.Keys() {
		if _, skip := exclude[subKey]; skip {
			continue
		}
		if _, inStaging := stagingAttrs.Get(subKey); inStaging {
			continue
		}
		entries = append(entries, Entry{
			Key:             key,
			Kind:            KindDifferentAttribute,
			Field:           field + ":" + subKey,
			StagingValue:    "",
			ProductionValue: productionAttrs.Value(subKey),
		})
	}

	return entries
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}
	return set
}
