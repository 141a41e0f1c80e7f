package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wadoon/hf3lint/pkg/config"
	"github.com/wadoon/hf3lint/pkg/telemetry/logging"
	"github.com/wadoon/hf3lint/pkg/telemetry/metrics"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "hf3lint",
	Short: "hf3lint - validator for HiFlow3 parameter files",
	Long: `hf3lint checks HiFlow3 XML parameter and boundary-condition documents
before they are handed to the solver.

Findings are reported as errors, warnings and information entries:
  - hf3 documents are checked against the parameter schema
    (required fields, numbers, permitted values, referenced files)
  - bc documents are checked for consistent point counts and 3D vectors

Configuration is read from .hf3lint.yaml when present.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default .hf3lint.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostic logging")

	rootCmd.SilenceErrors = true
}

// environment holds what every command builds from the configuration.
type environment struct {
	config  *config.Config
	logger  *logging.Logger
	metrics *metrics.Collector
}

func setup() (*environment, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Config{
		Level:     level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
	})
	if err != nil {
		return nil, err
	}

	return &environment{
		config:  cfg,
		logger:  logger,
		metrics: metrics.NewCollector(&cfg.Metrics, nil),
	}, nil
}
