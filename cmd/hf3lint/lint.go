package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/wadoon/hf3lint/pkg/cli"
	"github.com/wadoon/hf3lint/pkg/config"
	"github.com/wadoon/hf3lint/pkg/lint"
	"github.com/wadoon/hf3lint/pkg/lint/checker"
	"github.com/wadoon/hf3lint/pkg/lint/report"
	"github.com/wadoon/hf3lint/pkg/lint/variant"
)

type lintOptions struct {
	language string
	format   string
	strict   bool
	baseDir  string

	showErrors      bool
	hideErrors      bool
	showWarnings    bool
	hideWarnings    bool
	showInformation bool
	hideInformation bool
}

var lintFlags lintOptions

var lintCmd = &cobra.Command{
	Use:   "lint FILE...",
	Short: "Validate parameter documents",
	Long: `Validate HiFlow3 parameter documents and print a report per document.

Arguments may be glob patterns, including ** for any directory depth.
The variant (hf3 or bc) is detected per document unless --language is set.

The command fails when a report holds errors, when --strict is set and a
report holds warnings, or when a document cannot be read or detected.

Examples:
  # Lint a single document
  hf3lint lint flow.xml

  # Force the boundary-condition rules and hide information entries
  hf3lint lint -l bc -I bc.xml

  # Lint a tree of documents as CSV
  hf3lint lint -f csv 'cases/**/*.xml'`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	flags := lintCmd.Flags()
	flags.StringVarP(&lintFlags.language, "language", "l", "", "rule set: auto, hf3, bc (default from config, auto)")
	flags.StringVarP(&lintFlags.format, "format", "f", "", "output format: term, cterm, json, xml, csv (default from config, cterm)")
	flags.BoolVar(&lintFlags.strict, "strict", false, "treat warnings as errors")
	flags.StringVar(&lintFlags.baseDir, "base-dir", "", "resolve file references relative to this directory")

	flags.BoolVarP(&lintFlags.showErrors, "errors", "e", false, "show errors")
	flags.BoolVarP(&lintFlags.hideErrors, "no-errors", "E", false, "hide errors")
	flags.BoolVarP(&lintFlags.showWarnings, "warnings", "w", false, "show warnings")
	flags.BoolVarP(&lintFlags.hideWarnings, "no-warnings", "W", false, "hide warnings")
	flags.BoolVarP(&lintFlags.showInformation, "information", "i", false, "show information")
	flags.BoolVarP(&lintFlags.hideInformation, "no-information", "I", false, "hide information")
}

// applyLintFlags overrides the configuration with explicitly set flags.
func applyLintFlags(cfg *config.LintConfig) {
	if lintFlags.language != "" {
		cfg.Variant = lintFlags.language
	}
	if lintFlags.format != "" {
		cfg.Format = lintFlags.format
	}
	if lintFlags.baseDir != "" {
		cfg.BaseDir = lintFlags.baseDir
	}
	cfg.Strict = cfg.Strict || lintFlags.strict

	cfg.Errors = toggle(cfg.Errors, lintFlags.showErrors, lintFlags.hideErrors)
	cfg.Warnings = toggle(cfg.Warnings, lintFlags.showWarnings, lintFlags.hideWarnings)
	cfg.Information = toggle(cfg.Information, lintFlags.showInformation, lintFlags.hideInformation)
}

// toggle applies a show/hide flag pair; hide wins.
func toggle(current *bool, show, hide bool) *bool {
	switch {
	case hide:
		v := false
		return &v
	case show:
		v := true
		return &v
	}
	return current
}

// lintSettings is the resolved configuration of a lint run.
type lintSettings struct {
	kind   variant.Kind
	format cli.OutputFormat
	levels report.Levels
	strict bool
}

func resolveLintSettings(cfg config.LintConfig) (*lintSettings, error) {
	kind, err := variant.ParseKind(cfg.Variant)
	if err != nil {
		return nil, cli.NewConfigError("lint.variant", err.Error())
	}
	format, err := cli.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	return &lintSettings{
		kind:   kind,
		format: format,
		levels: cfg.Levels(),
		strict: cfg.Strict,
	}, nil
}

func (s *lintSettings) renderer() (cli.Renderer, error) {
	opts := cli.RenderOptions{Levels: s.levels, Profile: termenv.ANSI}
	if termenv.EnvNoColor() {
		opts.Profile = termenv.Ascii
	}
	return cli.NewRenderer(s.format, opts)
}

// failed reports whether rep fails the run.
func (s *lintSettings) failed(rep *report.Report) bool {
	return rep.HasErrors() || (s.strict && rep.Count(report.Warning) > 0)
}

func newLinter(env *environment) *lint.Linter {
	opts := []lint.Option{
		lint.WithLogger(env.logger),
		lint.WithMetrics(env.metrics),
	}
	if env.config.Lint.BaseDir != "" {
		opts = append(opts, lint.WithFileSystem(checker.OSFileSystem{BaseDir: env.config.Lint.BaseDir}))
	}
	return lint.New(opts...)
}

func runLint(cmd *cobra.Command, args []string) error {
	env, err := setup()
	if err != nil {
		return err
	}
	applyLintFlags(&env.config.Lint)

	settings, err := resolveLintSettings(env.config.Lint)
	if err != nil {
		return err
	}
	renderer, err := settings.renderer()
	if err != nil {
		return err
	}

	paths, err := expandPaths(args)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	reports, unreadable := lintPaths(ctx, newLinter(env), settings.kind, paths, cmd.ErrOrStderr())

	if err := renderer.Render(cmd.OutOrStdout(), reports); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := env.metrics.WriteTextfile(env.config.Metrics.Textfile); err != nil {
		env.logger.Warn("metrics not exported", "error", err)
	}

	failed := unreadable
	for _, rep := range reports {
		if settings.failed(rep) {
			failed++
		}
	}
	if failed > 0 {
		return cli.NewCommandError("lint",
			fmt.Errorf("%d of %d document(s) failed: %w", failed, len(paths), cli.ErrLintFailed))
	}
	return nil
}

// lintPaths lints every path in order. Documents that cannot be parsed or
// detected are reported on errOut and counted.
func lintPaths(ctx context.Context, linter *lint.Linter, kind variant.Kind, paths []string, errOut io.Writer) ([]*report.Report, int) {
	reports := make([]*report.Report, 0, len(paths))
	unreadable := 0
	for _, path := range paths {
		rep, err := linter.LintFile(ctx, path, kind)
		if err != nil {
			fmt.Fprintf(errOut, "%s: %v\n", path, err)
			unreadable++
			continue
		}
		reports = append(reports, rep)
	}
	return reports, unreadable
}

// expandPaths expands glob arguments. An argument that is not a pattern,
// or matches nothing, is kept so that the failure names it.
func expandPaths(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			add(arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, cli.NewConfigError("arguments", fmt.Sprintf("invalid pattern %q: %v", arg, err))
		}
		if len(matches) == 0 {
			add(arg)
		}
		for _, m := range matches {
			add(m)
		}
	}
	return paths, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}
