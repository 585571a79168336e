package testsupport

import (
	"path/filepath"
	"testing"

	"catdiff/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with per-test temp locations and the
// given staging/production document contents already written to disk.
func NewConfig(t testing.TB, stagingContent, productionContent string, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Inputs.StagingFile = WriteFile(t, base, "staging.csv", stagingContent)
	cfg.Inputs.ProductionFile = WriteFile(t, base, "production.csv", productionContent)
	cfg.Report.OutputFile = filepath.Join(base, "output", "diff_report.csv")
	cfg.History.Enabled = false
	cfg.History.Path = filepath.Join(base, "history.db")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithHistory enables history recording for the test config.
func WithHistory() ConfigOption {
	return func(cfg *config.Config) {
		cfg.History.Enabled = true
	}
}

// WithExcludeColumns sets the excluded columns.
func WithExcludeColumns(columns ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Compare.ExcludeColumns = columns
	}
}

// WithHTMLFields sets the HTML escape set.
func WithHTMLFields(fields ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Compare.HTMLFields = fields
	}
}
