package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeInputs(); err != nil {
		return err
	}
	if err := c.normalizeReport(); err != nil {
		return err
	}
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	c.normalizeCompare()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeInputs() error {
	var err error
	c.Inputs.StagingFile = strings.TrimSpace(c.Inputs.StagingFile)
	if c.Inputs.StagingFile != "" {
		if c.Inputs.StagingFile, err = expandPath(c.Inputs.StagingFile); err != nil {
			return fmt.Errorf("inputs.staging_file: %w", err)
		}
	}
	c.Inputs.ProductionFile = strings.TrimSpace(c.Inputs.ProductionFile)
	if c.Inputs.ProductionFile != "" {
		if c.Inputs.ProductionFile, err = expandPath(c.Inputs.ProductionFile); err != nil {
			return fmt.Errorf("inputs.production_file: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeCompare() {
	c.Compare.KeyField = strings.TrimSpace(c.Compare.KeyField)
	if c.Compare.KeyField == "" {
		c.Compare.KeyField = defaultKeyField
	}
	// The delimiter and separator are deliberately not trimmed: a tab or
	// space delimiter must survive normalization.
	if c.Compare.CSVDelimiter == "" {
		c.Compare.CSVDelimiter = defaultCSVDelimiter
	}
	if c.Compare.AttrSeparator == "" {
		c.Compare.AttrSeparator = defaultAttrSeparator
	}
	c.Compare.SpecialField = strings.TrimSpace(c.Compare.SpecialField)
	if c.Compare.SpecialField == "" {
		c.Compare.SpecialField = defaultSpecialField
	}
}

func (c *Config) normalizeReport() error {
	c.Report.OutputFile = strings.TrimSpace(c.Report.OutputFile)
	if c.Report.OutputFile == "" {
		c.Report.OutputFile = defaultOutputFile
	}
	var err error
	if c.Report.OutputFile, err = expandPath(c.Report.OutputFile); err != nil {
		return fmt.Errorf("report.output_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeHistory() error {
	c.History.Path = strings.TrimSpace(c.History.Path)
	if c.History.Path == "" {
		c.History.Path = defaultHistoryPath
	}
	var err error
	if c.History.Path, err = expandPath(c.History.Path); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
