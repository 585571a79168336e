// Package history persists comparison runs in SQLite so past audits can be
// reviewed from the CLI.
//
// The Store records one row per run: identifiers, timestamps, the two input
// locations, record counts, difference totals, and where the report was
// written. The database is a convenience log, not an archive; schema changes
// bump schemaVersion in store.go and users clear the database to adopt the
// new schema.
package history
