package lint

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/wadoon/hf3lint/pkg/lint/checker"
	"github.com/wadoon/hf3lint/pkg/lint/document"
	"github.com/wadoon/hf3lint/pkg/lint/parser"
	"github.com/wadoon/hf3lint/pkg/lint/report"
	"github.com/wadoon/hf3lint/pkg/lint/variant"
	"github.com/wadoon/hf3lint/pkg/telemetry/logging"
	"github.com/wadoon/hf3lint/pkg/telemetry/metrics"
)

// Failure reasons recorded in metrics.
const (
	FailureParse  = "parse"
	FailureDetect = "detect"
)

// Linter parses and validates documents.
type Linter struct {
	logger  *logging.Logger
	metrics *metrics.Collector
	fs      checker.FileSystem
	parser  *parser.Parser
}

// Option configures a Linter.
type Option func(*Linter)

// WithLogger sets the diagnostic logger.
func WithLogger(logger *logging.Logger) Option {
	return func(l *Linter) { l.logger = logger }
}

// WithMetrics sets the metrics collector.
func WithMetrics(collector *metrics.Collector) Option {
	return func(l *Linter) { l.metrics = collector }
}

// WithFileSystem sets the file system for file-reference checks. Without
// it, references are resolved relative to the linted document.
func WithFileSystem(fsys checker.FileSystem) Option {
	return func(l *Linter) { l.fs = fsys }
}

// WithParser sets the document parser.
func WithParser(p *parser.Parser) Option {
	return func(l *Linter) { l.parser = p }
}

// New creates a Linter.
func New(opts ...Option) *Linter {
	l := &Linter{
		logger: logging.NewNop(),
		parser: parser.NewParser(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LintFile parses the file at path and validates it.
func (l *Linter) LintFile(ctx context.Context, path string, kind variant.Kind) (*report.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ctx = logging.WithDocument(ctx, path)

	doc, err := l.parser.ParseFile(path)
	if err != nil {
		l.fail(ctx, FailureParse, err)
		return nil, err
	}

	fsys := l.fs
	if fsys == nil {
		fsys = checker.OSFileSystem{BaseDir: filepath.Dir(path)}
	}
	return l.lint(ctx, doc, kind, path, fsys)
}

// LintDocument validates an already decoded document. source names the
// document in the report.
func (l *Linter) LintDocument(ctx context.Context, doc document.Document, kind variant.Kind, source string) (*report.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if source != "" {
		ctx = logging.WithDocument(ctx, source)
	}

	fsys := l.fs
	if fsys == nil {
		fsys = checker.OSFileSystem{}
	}
	return l.lint(ctx, doc, kind, source, fsys)
}

// DetectFile parses the file at path and returns its variant.
func (l *Linter) DetectFile(ctx context.Context, path string) (variant.Kind, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	doc, err := l.parser.ParseFile(path)
	if err != nil {
		return "", err
	}
	kind, err := variant.Detect(doc)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return kind, nil
}

func (l *Linter) lint(ctx context.Context, doc document.Document, kind variant.Kind, source string, fsys checker.FileSystem) (*report.Report, error) {
	resolved, err := variant.Resolve(kind, doc)
	if err != nil {
		l.fail(ctx, FailureDetect, err)
		return nil, err
	}
	ctx = logging.WithVariant(ctx, string(resolved))
	if kind == variant.Auto {
		l.logger.DebugContext(ctx, "variant detected")
	}

	v, err := variant.New(resolved, variant.Options{FS: fsys})
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rep := v.Validate(doc)
	duration := time.Since(start)

	rep.Source = source
	rep.Variant = string(resolved)

	ctx = logging.WithRunID(ctx, rep.ID)
	l.logger.InfoContext(ctx, "document validated",
		"errors", rep.Count(report.Error),
		"warnings", rep.Count(report.Warning),
		"information", rep.Count(report.Information),
		"duration", duration,
	)
	if l.metrics != nil {
		l.metrics.RecordRun(rep.Variant, rep, duration)
	}
	return rep, nil
}

func (l *Linter) fail(ctx context.Context, reason string, err error) {
	l.logger.ErrorContext(ctx, "document not linted", "reason", reason, "error", err)
	if l.metrics != nil {
		l.metrics.RecordFailure(reason)
	}
}

// LintFile validates the file at path with a default Linter.
func LintFile(ctx context.Context, path string, kind variant.Kind) (*report.Report, error) {
	return New().LintFile(ctx, path, kind)
}
