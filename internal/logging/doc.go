// Package logging constructs the slog loggers used across catdiff.
//
// Loggers write to stderr so report tables and notices on stdout stay
// machine-readable. The console format is for interactive runs; json is for
// scheduled audits whose output gets collected.
package logging
