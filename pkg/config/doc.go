// Package config provides configuration management for hf3lint.
//
// Configuration is read from a YAML file, completed with defaults and
// overridden by environment variables. Command-line flags are applied on top
// by the caller.
//
// # Configuration Loading
//
//	cfg, err := config.Load("")            // .hf3lint.yaml if present, else defaults
//	cfg, err := config.Load("ci.yaml")     // file must exist
//	cfg, err := config.LoadConfig("x.yaml") // no environment overrides
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention HF3LINT_SECTION_FIELD:
//
//   - HF3LINT_LINT_FORMAT overrides lint.format
//   - HF3LINT_LINT_STRICT overrides lint.strict
//   - HF3LINT_LOGGING_LEVEL overrides logging.level
//   - HF3LINT_METRICS_TEXTFILE overrides metrics.textfile
//
// # Configuration Precedence
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// Validation errors include field paths:
//
//	configuration validation failed with 2 errors:
//	  - lint.format: must be one of: term, cterm, json, xml, csv
//	  - watch.debounce: must not be negative
//
// # Example Configuration
//
//	lint:
//	  variant: auto
//	  format: term
//	  warnings: false
//	  strict: false
//
//	logging:
//	  level: info
//	  format: json
//
//	metrics:
//	  enabled: true
//	  textfile: /var/lib/node_exporter/hf3lint.prom
//
//	watch:
//	  debounce: 250ms
//	  extensions: [".xml", ".yaml"]
package config
