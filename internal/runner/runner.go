package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"catdiff/internal/catalog"
	"catdiff/internal/compare"
	"catdiff/internal/config"
	"catdiff/internal/history"
	"catdiff/internal/logging"
	"catdiff/internal/report"
)

// ErrReportLocked indicates another invocation currently holds the report
// lock.
var ErrReportLocked = errors.New("report file is locked by another catdiff run")

// Result summarizes one completed comparison run.
type Result struct {
	RunID           string
	StagingCount    int
	ProductionCount int
	Entries         []compare.Entry
	Lines           []report.Line
	ReportPath      string
	Duration        time.Duration
}

// HasDifferences reports whether the run found any divergence.
func (r *Result) HasDifferences() bool {
	return len(r.Entries) > 0
}

// Runner executes comparison runs for one configuration.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *history.Store
}

// New returns a Runner. The history store may be nil when history is
// disabled.
func New(cfg *config.Config, logger *slog.Logger, store *history.Store) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{cfg: cfg, logger: logger, store: store}
}

// Run loads the staging and production catalogs, compares them, and writes
// the grouped report unless the diff is empty. Missing input locations or
// unreadable documents are fatal; no partial report is ever written.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	if r.cfg.Inputs.StagingFile == "" {
		return nil, errors.New("inputs.staging_file is required")
	}
	if r.cfg.Inputs.ProductionFile == "" {
		return nil, errors.New("inputs.production_file is required")
	}

	started := time.Now()
	result := &Result{RunID: uuid.NewString()}

	delimiter := r.cfg.DelimiterRune()
	specialField := r.cfg.Compare.SpecialField
	keyField := r.cfg.Compare.KeyField

	staging, err := catalog.LoadFile(r.cfg.Inputs.StagingFile, delimiter, specialField, keyField)
	if err != nil {
		return nil, fmt.Errorf("load staging catalog: %w", err)
	}
	production, err := catalog.LoadFile(r.cfg.Inputs.ProductionFile, delimiter, specialField, keyField)
	if err != nil {
		return nil, fmt.Errorf("load production catalog: %w", err)
	}

	result.StagingCount = staging.Len()
	result.ProductionCount = production.Len()
	r.logger.Info("catalogs loaded",
		logging.String("run_id", result.RunID),
		logging.Int("staging_records", staging.Len()),
		logging.Int("production_records", production.Len()),
	)

	result.Entries = compare.Catalogs(staging, production, compare.Options{
		KeyField:          keyField,
		SpecialField:      specialField,
		AttrSeparator:     r.cfg.Compare.AttrSeparator,
		ExcludeColumns:    r.cfg.Compare.ExcludeColumns,
		ExcludeAttributes: r.cfg.Compare.ExcludeAttributes,
	})

	if len(result.Entries) > 0 {
		result.Lines = report.Group(result.Entries, staging, report.Options{
			KeyField:   keyField,
			HTMLFields: r.cfg.Compare.HTMLFields,
		})
		if err := r.writeReport(result.Lines); err != nil {
			return nil, err
		}
		result.ReportPath = r.cfg.Report.OutputFile
		r.logger.Info("report written",
			logging.String("run_id", result.RunID),
			logging.String("report", result.ReportPath),
			logging.Int("differences", len(result.Entries)),
			logging.Int("affected_keys", len(result.Lines)),
		)
	} else {
		r.logger.Info("no differences found", logging.String("run_id", result.RunID))
	}

	result.Duration = time.Since(started)
	r.recordHistory(ctx, started, result)
	return result, nil
}

// writeReport takes the report lock before writing so concurrent runs with
// the same output_file cannot interleave.
func (r *Runner) writeReport(lines []report.Line) error {
	if err := os.MkdirAll(filepath.Dir(r.cfg.Report.OutputFile), 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}
	lock := flock.New(r.cfg.Report.OutputFile + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire report lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("%w: %s", ErrReportLocked, lock.Path())
	}
	defer func() { _ = lock.Unlock() }()

	return report.WriteFile(r.cfg.Report.OutputFile, lines, r.cfg.Compare.KeyField)
}

// recordHistory is best-effort; failures are logged and swallowed.
func (r *Runner) recordHistory(ctx context.Context, started time.Time, result *Result) {
	if r.store == nil {
		return
	}
	err := r.store.RecordRun(ctx, history.Run{
		ID:              result.RunID,
		StartedAt:       started,
		CompletedAt:     started.Add(result.Duration),
		StagingFile:     r.cfg.Inputs.StagingFile,
		ProductionFile:  r.cfg.Inputs.ProductionFile,
		StagingCount:    result.StagingCount,
		ProductionCount: result.ProductionCount,
		DiffCount:       len(result.Entries),
		AffectedKeys:    len(result.Lines),
		ReportPath:      result.ReportPath,
	})
	if err != nil {
		r.logger.Warn("record run history", logging.Error(err))
	}
}
