// Package config loads, normalizes, and validates catdiff configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from ~/.config/catdiff/config.toml or a
// project-local catdiff.toml. The Config type centralizes every knob the CLI
// needs: input catalog locations, comparison rules (key column, delimiter,
// attribute separator, exclusions), report output, run history, and logging.
//
// Always obtain settings through this package so downstream code receives
// expanded paths and clear validation errors.
package config
