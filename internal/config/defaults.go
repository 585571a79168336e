package config

const (
	defaultKeyField      = "sku"
	defaultCSVDelimiter  = ","
	defaultAttrSeparator = "§"
	defaultSpecialField  = "additional_attributes"
	defaultOutputFile    = "output/diff_report.csv"
	defaultHistoryPath   = "~/.local/share/catdiff/history.db"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Compare: Compare{
			KeyField:      defaultKeyField,
			CSVDelimiter:  defaultCSVDelimiter,
			AttrSeparator: defaultAttrSeparator,
			SpecialField:  defaultSpecialField,
		},
		Report: Report{
			OutputFile: defaultOutputFile,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
