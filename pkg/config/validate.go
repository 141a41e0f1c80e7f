package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "lint.format").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
// It implements the error interface and provides access to all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Accepted option values.
var (
	ValidVariants   = []string{"auto", "hf3", "bc"}
	ValidFormats    = []string{"term", "cterm", "json", "xml", "csv"}
	ValidLogLevels  = []string{"debug", "info", "warn", "warning", "error"}
	ValidLogFormats = []string{"json", "text", "console"}
)

var metricNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. It returns nil if the configuration is valid.
// All validation errors are collected and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateLint(&cfg.Lint)...)
	errs = append(errs, validateLogging(&cfg.Logging)...)
	errs = append(errs, validateMetrics(&cfg.Metrics)...)
	errs = append(errs, validateWatch(&cfg.Watch)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

func validateLint(cfg *LintConfig) []FieldError {
	var errs []FieldError

	if !oneOf(strings.ToLower(cfg.Variant), ValidVariants) {
		errs = append(errs, FieldError{
			Field:   "lint.variant",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidVariants, ", ")),
		})
	}
	if !oneOf(strings.ToLower(cfg.Format), ValidFormats) {
		errs = append(errs, FieldError{
			Field:   "lint.format",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidFormats, ", ")),
		})
	}

	return errs
}

func validateLogging(cfg *LoggingConfig) []FieldError {
	var errs []FieldError

	if !oneOf(strings.ToLower(cfg.Level), ValidLogLevels) {
		errs = append(errs, FieldError{
			Field:   "logging.level",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels, ", ")),
		})
	}
	if !oneOf(strings.ToLower(cfg.Format), ValidLogFormats) {
		errs = append(errs, FieldError{
			Field:   "logging.format",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogFormats, ", ")),
		})
	}

	return errs
}

func validateMetrics(cfg *MetricsConfig) []FieldError {
	var errs []FieldError

	if !metricNamePattern.MatchString(cfg.Namespace) {
		errs = append(errs, FieldError{
			Field:   "metrics.namespace",
			Message: "must be a valid Prometheus metric name prefix",
		})
	}
	if !metricNamePattern.MatchString(cfg.Subsystem) {
		errs = append(errs, FieldError{
			Field:   "metrics.subsystem",
			Message: "must be a valid Prometheus metric name prefix",
		})
	}
	if len(cfg.DurationBuckets) > 0 && !sort.Float64sAreSorted(cfg.DurationBuckets) {
		errs = append(errs, FieldError{
			Field:   "metrics.duration_buckets",
			Message: "buckets must be in increasing order",
		})
	}
	if cfg.Enabled && cfg.Textfile == "" {
		errs = append(errs, FieldError{
			Field:   "metrics.textfile",
			Message: "is required when metrics are enabled",
		})
	}

	return errs
}

func validateWatch(cfg *WatchConfig) []FieldError {
	var errs []FieldError

	if cfg.Debounce < 0 {
		errs = append(errs, FieldError{
			Field:   "watch.debounce",
			Message: "must not be negative",
		})
	}
	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("watch.extensions[%d]", i),
				Message: fmt.Sprintf("extension %q must start with a dot", ext),
			})
		}
	}

	return errs
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
