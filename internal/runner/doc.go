// Package runner drives one complete comparison: load both catalogs, diff
// them, write the grouped report, and record the run in history.
//
// The report file is guarded by a sibling lock file so two overlapping
// invocations cannot interleave writes. History recording is best-effort;
// a failing history database never fails the comparison itself.
package runner
