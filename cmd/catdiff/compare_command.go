package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"catdiff/internal/config"
	"catdiff/internal/history"
	"catdiff/internal/logging"
	"catdiff/internal/runner"
)

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string
	var noHistory bool

	cmd := &cobra.Command{
		Use:   "compare [staging-file] [production-file]",
		Short: "Compare the two catalogs and write a difference report",
		Long: `Compare the staging catalog against the production catalog and write a
grouped report of field-level differences. Input locations come from the
configuration file; positional arguments override them.

Examples:
  catdiff compare                           # Use configured input files
  catdiff compare stg.csv prod.csv          # Override both inputs
  catdiff compare --output /tmp/report.csv  # Override the report location`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			if err := applyOverrides(cfg, args, outputFlag); err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			var store *history.Store
			if cfg.History.Enabled && !noHistory {
				store, err = history.Open(cfg.History.Path)
				if err != nil {
					logger.Warn("history store unavailable", logging.Error(err))
					store = nil
				} else {
					defer store.Close()
				}
			}

			result, err := runner.New(cfg, logger, store).Run(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !result.HasDifferences() {
				if isTerminal(out) {
					fmt.Fprintln(out, "✅ No differences found between the two catalogs.")
				} else {
					fmt.Fprintln(out, "No differences found between the two catalogs.")
				}
				return nil
			}

			if isTerminal(out) {
				fmt.Fprintf(out, "\U0001f4c4 Report generated: %s\n", result.ReportPath)
				fmt.Fprintln(out, renderTable(
					[]string{"Metric", "Value"},
					[][]string{
						{"Staging records", strconv.Itoa(result.StagingCount)},
						{"Production records", strconv.Itoa(result.ProductionCount)},
						{"Differences", strconv.Itoa(len(result.Entries))},
						{"Affected keys", strconv.Itoa(len(result.Lines))},
					},
					[]columnAlignment{alignLeft, alignRight},
				))
			} else {
				fmt.Fprintf(out, "Report generated: %s\n", result.ReportPath)
				fmt.Fprintf(out, "Total differences found: %d\n", len(result.Entries))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Report destination (overrides report.output_file)")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Skip recording this run in the history database")
	return cmd
}

func applyOverrides(cfg *config.Config, args []string, outputFlag string) error {
	if len(args) > 0 {
		expanded, err := config.ExpandPath(args[0])
		if err != nil {
			return fmt.Errorf("resolve staging file: %w", err)
		}
		cfg.Inputs.StagingFile = expanded
	}
	if len(args) > 1 {
		expanded, err := config.ExpandPath(args[1])
		if err != nil {
			return fmt.Errorf("resolve production file: %w", err)
		}
		cfg.Inputs.ProductionFile = expanded
	}
	if outputFlag != "" {
		expanded, err := config.ExpandPath(outputFlag)
		if err != nil {
			return fmt.Errorf("resolve output file: %w", err)
		}
		cfg.Report.OutputFile = expanded
	}
	return nil
}
