package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/wadoon/hf3lint/pkg/config"
	"github.com/wadoon/hf3lint/pkg/lint/report"
)

// Collector owns the registry and the lint metric families.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	lintMetrics *LintMetrics
}

// NewCollector creates a collector with the given configuration. If registry
// is nil a fresh registry is used.
//
// Example:
//
//	cfg := &config.MetricsConfig{
//		Enabled:   true,
//		Namespace: "hf3lint",
//		Subsystem: "lint",
//	}
//	collector := metrics.NewCollector(cfg, nil)
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	if cfg.Namespace == "" {
		cfg.Namespace = "hf3lint"
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = "lint"
	}
	if len(cfg.DurationBuckets) == 0 {
		// Validation of a single document takes micro- to milliseconds
		cfg.DurationBuckets = prometheus.ExponentialBuckets(0.00001, 4, 10) // 10µs to 2.6s
	}

	return &Collector{
		config:      cfg,
		registry:    registry,
		lintMetrics: NewLintMetrics(cfg, registry),
	}
}

// RecordRun records a finished validation.
//
// Parameters:
//   - variant: document variant ("hf3", "bc")
//   - rep: the report produced by the run
//   - duration: validation time
func (c *Collector) RecordRun(variant string, rep *report.Report, duration time.Duration) {
	if !c.config.Enabled {
		return
	}

	c.lintMetrics.RecordRun(variant, rep, duration)
}

// RecordFailure records a document that could not be linted.
//
// Parameters:
//   - reason: failure class (e.g., "parse", "detect", "read")
func (c *Collector) RecordFailure(reason string) {
	if !c.config.Enabled {
		return
	}

	c.lintMetrics.RecordFailure(reason)
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile writes all registered metrics to path in the Prometheus text
// format. The file is replaced atomically. An empty path or a disabled
// collector is a no-op.
func (c *Collector) WriteTextfile(path string) error {
	if !c.config.Enabled || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
