package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/wadoon/hf3lint/pkg/config"
	"github.com/wadoon/hf3lint/pkg/lint/report"
)

// Run status label values.
const (
	StatusClean  = "clean"
	StatusFailed = "failed"
)

// LintMetrics tracks lint runs and their findings.
//
// Metrics:
//   - hf3lint_lint_runs_total: Total lint runs by variant and status
//   - hf3lint_lint_entries_total: Report entries by variant and level
//   - hf3lint_lint_run_duration_seconds: Validation duration
//   - hf3lint_lint_document_failures_total: Documents that could not be linted
type LintMetrics struct {
	runsTotal    *prometheus.CounterVec
	entriesTotal *prometheus.CounterVec
	runDuration  *prometheus.HistogramVec
	failures     *prometheus.CounterVec
}

// NewLintMetrics creates and registers lint metrics with the provided registry.
func NewLintMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *LintMetrics {
	lm := &LintMetrics{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "runs_total",
				Help:      "Total number of lint runs",
			},
			[]string{"variant", "status"},
		),

		entriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "entries_total",
				Help:      "Total number of report entries",
			},
			[]string{"variant", "level"},
		),

		runDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "run_duration_seconds",
				Help:      "Duration of document validation in seconds",
				Buckets:   cfg.DurationBuckets,
			},
			[]string{"variant"},
		),

		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "document_failures_total",
				Help:      "Total number of documents that could not be linted",
			},
			[]string{"reason"},
		),
	}

	registry.MustRegister(
		lm.runsTotal,
		lm.entriesTotal,
		lm.runDuration,
		lm.failures,
	)

	return lm
}

// RecordRun records one validation and the entries it produced.
func (lm *LintMetrics) RecordRun(variant string, rep *report.Report, duration time.Duration) {
	status := StatusClean
	if rep.HasErrors() {
		status = StatusFailed
	}
	lm.runsTotal.WithLabelValues(variant, status).Inc()
	lm.runDuration.WithLabelValues(variant).Observe(duration.Seconds())

	for _, level := range []report.Level{report.Error, report.Warning, report.Information} {
		if n := rep.Count(level); n > 0 {
			lm.entriesTotal.WithLabelValues(variant, level.Name()).Add(float64(n))
		}
	}
}

// RecordFailure records a document that could not be linted.
func (lm *LintMetrics) RecordFailure(reason string) {
	lm.failures.WithLabelValues(reason).Inc()
}
