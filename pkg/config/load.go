package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any errors.
// Environment variables are not consulted; use LoadConfigWithEnvOverrides
// for that.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention HF3LINT_SECTION_FIELD (e.g., HF3LINT_LINT_FORMAT).
// Environment variables always take precedence over file-based configuration.
//
// The loading sequence is:
// 1. Load YAML from file
// 2. Apply default values
// 3. Apply environment variable overrides
// 4. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return finishEnv(cfg)
}

// Load resolves the configuration used by the command line. With an empty
// path the default file is read if it exists; otherwise defaults are used.
// An explicitly named file must exist.
func Load(path string) (*Config, error) {
	if path != "" {
		return LoadConfigWithEnvOverrides(path)
	}

	cfg, err := LoadConfigWithEnvOverrides(DefaultConfigFile)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return finishEnv(NewDefaultConfig())
}

func finishEnv(cfg *Config) (*Config, error) {
	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables use the format HF3LINT_SECTION_FIELD.
func applyEnvOverrides(cfg *Config) {
	// Lint overrides
	if val := os.Getenv("HF3LINT_LINT_VARIANT"); val != "" {
		cfg.Lint.Variant = val
	}
	if val := os.Getenv("HF3LINT_LINT_FORMAT"); val != "" {
		cfg.Lint.Format = val
	}
	if val := os.Getenv("HF3LINT_LINT_ERRORS"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Lint.Errors = boolPtr(b)
		}
	}
	if val := os.Getenv("HF3LINT_LINT_WARNINGS"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Lint.Warnings = boolPtr(b)
		}
	}
	if val := os.Getenv("HF3LINT_LINT_INFORMATION"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Lint.Information = boolPtr(b)
		}
	}
	if val := os.Getenv("HF3LINT_LINT_STRICT"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Lint.Strict = b
		}
	}
	if val := os.Getenv("HF3LINT_LINT_BASE_DIR"); val != "" {
		cfg.Lint.BaseDir = val
	}

	// Logging overrides
	if val := os.Getenv("HF3LINT_LOGGING_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv("HF3LINT_LOGGING_FORMAT"); val != "" {
		cfg.Logging.Format = val
	}

	// Metrics overrides
	if val := os.Getenv("HF3LINT_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Metrics.Enabled = b
		}
	}
	if val := os.Getenv("HF3LINT_METRICS_TEXTFILE"); val != "" {
		cfg.Metrics.Textfile = val
	}

	// Watch overrides
	if val := os.Getenv("HF3LINT_WATCH_DEBOUNCE"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Watch.Debounce = d
		}
	}
	if val := os.Getenv("HF3LINT_WATCH_EXTENSIONS"); val != "" {
		var exts []string
		for _, e := range strings.Split(val, ",") {
			if e = strings.TrimSpace(e); e != "" {
				exts = append(exts, e)
			}
		}
		cfg.Watch.Extensions = exts
	}
}
