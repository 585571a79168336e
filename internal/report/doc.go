// Package report groups difference entries per key and renders them as the
// final CSV report.
//
// Each affected key becomes one row carrying the key, the product_websites
// value pulled from the staging record, and every rendered difference joined
// with "; ". Values belonging to configured HTML fields are markup-escaped
// before rendering so the report stays readable in spreadsheet tooling.
package report
