package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/wadoon/hf3lint/pkg/config"
	"github.com/wadoon/hf3lint/pkg/lint/report"
)

// Helper function to create test config
func testConfig() *config.MetricsConfig {
	return &config.MetricsConfig{
		Enabled:         true,
		Namespace:       "test",
		Subsystem:       "lint",
		DurationBuckets: []float64{0.001, 0.01, 0.1},
	}
}

func sampleReport() *report.Report {
	rep := report.New()
	rep.Add(report.Entry{Level: report.Error, Number: 1, Message: "Field does not exist", Path: "Param.Mesh"})
	rep.Add(report.Entry{Level: report.Error, Number: 2, Message: "string expected", Path: "Param.X"})
	rep.Add(report.Entry{Level: report.Warning, Number: 3, Message: "mu", Path: "Param.ElasticityModel.mu"})
	return rep
}

func TestCollector_NewCollector(t *testing.T) {
	cfg := testConfig()
	registry := prometheus.NewRegistry()

	collector := NewCollector(cfg, registry)

	if collector == nil {
		t.Fatal("Expected non-nil collector")
	}
	if collector.Registry() != registry {
		t.Error("Collector registry not set correctly")
	}
}

func TestCollector_Defaults(t *testing.T) {
	cfg := &config.MetricsConfig{Enabled: true}
	NewCollector(cfg, nil)

	if cfg.Namespace != "hf3lint" || cfg.Subsystem != "lint" {
		t.Errorf("unexpected defaults %q/%q", cfg.Namespace, cfg.Subsystem)
	}
	if len(cfg.DurationBuckets) == 0 {
		t.Error("expected default duration buckets")
	}
}

func TestCollector_RecordRun(t *testing.T) {
	collector := NewCollector(testConfig(), nil)
	lm := collector.lintMetrics

	collector.RecordRun("hf3", sampleReport(), 2*time.Millisecond)
	collector.RecordRun("bc", report.New(), time.Millisecond)

	if got := testutil.ToFloat64(lm.runsTotal.WithLabelValues("hf3", StatusFailed)); got != 1 {
		t.Errorf("hf3 failed runs = %v, want 1", got)
	}
	if got := testutil.ToFloat64(lm.runsTotal.WithLabelValues("bc", StatusClean)); got != 1 {
		t.Errorf("bc clean runs = %v, want 1", got)
	}
	if got := testutil.ToFloat64(lm.entriesTotal.WithLabelValues("hf3", "error")); got != 2 {
		t.Errorf("hf3 error entries = %v, want 2", got)
	}
	if got := testutil.ToFloat64(lm.entriesTotal.WithLabelValues("hf3", "warning")); got != 1 {
		t.Errorf("hf3 warning entries = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(lm.runDuration); got != 2 {
		t.Errorf("duration series = %d, want 2", got)
	}
}

func TestCollector_RecordFailure(t *testing.T) {
	collector := NewCollector(testConfig(), nil)

	collector.RecordFailure("parse")
	collector.RecordFailure("parse")
	collector.RecordFailure("detect")

	if got := testutil.ToFloat64(collector.lintMetrics.failures.WithLabelValues("parse")); got != 2 {
		t.Errorf("parse failures = %v, want 2", got)
	}
}

func TestCollector_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false
	collector := NewCollector(cfg, nil)

	collector.RecordRun("hf3", sampleReport(), time.Millisecond)
	collector.RecordFailure("parse")

	if got := testutil.CollectAndCount(collector.lintMetrics.runsTotal); got != 0 {
		t.Errorf("disabled collector recorded %d run series", got)
	}

	path := filepath.Join(t.TempDir(), "out.prom")
	if err := collector.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("disabled collector should not write a textfile")
	}
}

func TestCollector_WriteTextfile(t *testing.T) {
	collector := NewCollector(testConfig(), nil)
	collector.RecordRun("bc", sampleReport(), time.Millisecond)

	path := filepath.Join(t.TempDir(), "hf3lint.prom")
	if err := collector.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	out := string(data)
	for _, want := range []string{
		`test_lint_runs_total{status="failed",variant="bc"} 1`,
		`test_lint_entries_total{level="error",variant="bc"} 2`,
		"test_lint_run_duration_seconds_bucket",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("textfile missing %q:\n%s", want, out)
		}
	}

	if err := collector.WriteTextfile(""); err != nil {
		t.Errorf("empty path should be a no-op, got %v", err)
	}
	if err := collector.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom")); err == nil {
		t.Error("expected error for unwritable path")
	}
}
