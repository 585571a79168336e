// Package compare produces field-level difference entries between a staging
// and a production catalog.
//
// Records are matched by key. A key only in staging yields one
// missing_in_production entry, a key only in production one
// extra_in_production entry. Matched records are compared column by column
// with trimmed values; the additional-attributes column is decoded and
// compared sub-key by sub-key instead. Entries come out in staging input
// order with production-only keys appended, so identical inputs always
// produce an identical report.
package compare
