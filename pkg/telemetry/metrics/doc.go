// Package metrics provides Prometheus metrics for lint runs.
//
// # Overview
//
// hf3lint is a short-lived command, so metrics are not scraped over HTTP.
// Instead the collector writes the registry to a node-exporter textfile after
// each run (or after each reload in watch mode).
//
// # Metrics
//
//   - hf3lint_lint_runs_total: lint runs by variant and status (clean, failed)
//   - hf3lint_lint_entries_total: report entries by variant and level
//   - hf3lint_lint_run_duration_seconds: validation duration by variant
//   - hf3lint_lint_document_failures_total: documents that could not be linted, by reason
//
// # Usage
//
//	collector := metrics.NewCollector(&cfg.Metrics, nil)
//	collector.RecordRun("hf3", rep, time.Since(start))
//	if err := collector.WriteTextfile(cfg.Metrics.Textfile); err != nil {
//		logger.Warn("failed to write metrics", "error", err)
//	}
package metrics
