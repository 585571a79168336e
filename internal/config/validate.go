package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Validate ensures the configuration is usable. Input file locations are
// checked at run time, not here, so configuration utilities keep working
// before inputs are chosen.
func (c *Config) Validate() error {
	if err := c.validateCompare(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCompare() error {
	if c.Compare.KeyField == "" {
		return errors.New("compare.key_field must be set")
	}
	if count := utf8.RuneCountInString(c.Compare.CSVDelimiter); count != 1 {
		return fmt.Errorf("compare.csv_delimiter must be a single character, got %q", c.Compare.CSVDelimiter)
	}
	if c.Compare.AttrSeparator == "" {
		return errors.New("compare.attr_separator must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
