// Package telemetry groups the diagnostics of hf3lint.
//
// # Components
//
//   - logging: structured slog logging with run, document and variant fields
//   - metrics: Prometheus counters and histograms for lint runs, exported
//     to a node-exporter textfile
//
// Logs go to stderr so that reports on stdout stay machine readable.
// Metrics are disabled unless metrics.enabled is set together with a
// metrics.textfile path.
package telemetry
