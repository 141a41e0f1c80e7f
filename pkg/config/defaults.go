package config

import "time"

// Default values for configuration fields.
const (
	// DefaultConfigFile is read when no --config flag is given.
	DefaultConfigFile = ".hf3lint.yaml"

	// Lint defaults
	DefaultVariant = "auto"
	DefaultFormat  = "cterm"

	// Logging defaults
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "console"

	// Metrics defaults
	DefaultMetricsNamespace = "hf3lint"
	DefaultMetricsSubsystem = "lint"

	// Watch defaults
	DefaultWatchDebounce = 100 * time.Millisecond
)

// DefaultWatchExtensions are the extensions watched in a directory.
var DefaultWatchExtensions = []string{".xml"}

// NewDefaultConfig returns a configuration with every default applied.
func NewDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills unset fields with their default values.
func ApplyDefaults(cfg *Config) {
	// Lint defaults
	if cfg.Lint.Variant == "" {
		cfg.Lint.Variant = DefaultVariant
	}
	if cfg.Lint.Format == "" {
		cfg.Lint.Format = DefaultFormat
	}
	if cfg.Lint.Errors == nil {
		cfg.Lint.Errors = boolPtr(true)
	}
	if cfg.Lint.Warnings == nil {
		cfg.Lint.Warnings = boolPtr(true)
	}
	if cfg.Lint.Information == nil {
		cfg.Lint.Information = boolPtr(true)
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}

	// Metrics defaults
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Metrics.Subsystem == "" {
		cfg.Metrics.Subsystem = DefaultMetricsSubsystem
	}

	// Watch defaults
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = DefaultWatchDebounce
	}
	if len(cfg.Watch.Extensions) == 0 {
		cfg.Watch.Extensions = append([]string(nil), DefaultWatchExtensions...)
	}
}

func boolPtr(b bool) *bool {
	return &b
}
