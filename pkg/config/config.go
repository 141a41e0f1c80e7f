package config

import (
	"time"

	"github.com/wadoon/hf3lint/pkg/lint/report"
)

// Config is the root configuration for hf3lint.
type Config struct {
	// Lint controls document selection, validation and report output.
	Lint LintConfig `yaml:"lint"`

	// Logging contains diagnostic logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus textfile export configuration.
	Metrics MetricsConfig `yaml:"metrics"`

	// Watch contains configuration for "hf3lint watch".
	Watch WatchConfig `yaml:"watch"`
}

// LintConfig controls a lint run.
type LintConfig struct {
	// Variant selects the rule set.
	// Options: "auto", "hf3", "bc"
	// Default: "auto"
	Variant string `yaml:"variant"`

	// Format is the report output format.
	// Options: "term", "cterm", "json", "xml", "csv"
	// Default: "cterm"
	Format string `yaml:"format"`

	// Errors shows Error entries.
	// Default: true
	Errors *bool `yaml:"errors"`

	// Warnings shows Warning entries.
	// Default: true
	Warnings *bool `yaml:"warnings"`

	// Information shows Information entries.
	// Default: true
	Information *bool `yaml:"information"`

	// Strict makes warnings fail the run.
	// Default: false
	Strict bool `yaml:"strict"`

	// BaseDir resolves relative file references inside documents.
	// Empty means relative to each document's directory.
	BaseDir string `yaml:"base_dir"`
}

// Levels returns the severities selected for display.
func (c LintConfig) Levels() report.Levels {
	return report.Levels{
		Error:       boolOr(c.Errors, true),
		Warning:     boolOr(c.Warnings, true),
		Information: boolOr(c.Information, true),
	}
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "warn"
	Level string `yaml:"level"`

	// Format controls the log output format.
	// Options: "json", "text", "console"
	// Default: "console"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether metrics are collected.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Namespace is the metric name prefix.
	// Default: "hf3lint"
	Namespace string `yaml:"namespace"`

	// Subsystem is the metric subsystem name.
	// Default: "lint"
	Subsystem string `yaml:"subsystem"`

	// DurationBuckets are the histogram buckets for validation duration in seconds.
	DurationBuckets []float64 `yaml:"duration_buckets"`

	// Textfile is the node-exporter textfile the metrics are written to.
	// Empty disables the export.
	Textfile string `yaml:"textfile"`
}

// WatchConfig contains configuration for watch mode.
type WatchConfig struct {
	// Debounce is the quiet period after a change before re-linting.
	// Default: 100ms
	Debounce time.Duration `yaml:"debounce"`

	// Extensions are the file extensions that trigger a re-lint when a
	// directory is watched.
	// Default: [".xml"]
	Extensions []string `yaml:"extensions"`
}
