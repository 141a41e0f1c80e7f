package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/wadoon/hf3lint/pkg/cli"
	"github.com/wadoon/hf3lint/pkg/lint"
	"github.com/wadoon/hf3lint/pkg/watch"
)

var watchFlags struct {
	language string
	format   string
	debounce time.Duration
}

var watchCmd = &cobra.Command{
	Use:   "watch PATH...",
	Short: "Re-lint documents when they change",
	Long: `Lint documents once, then again whenever they change on disk.

Directories are watched recursively for files with the configured
extensions (watch.extensions, default .xml). Stop with Ctrl-C.

Examples:
  # Watch one document
  hf3lint watch flow.xml

  # Watch a case directory with plain output
  hf3lint watch -f term cases/`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchFlags.language, "language", "l", "", "rule set: auto, hf3, bc (default from config, auto)")
	watchCmd.Flags().StringVarP(&watchFlags.format, "format", "f", "", "output format (default from config, cterm)")
	watchCmd.Flags().DurationVar(&watchFlags.debounce, "debounce", 0, "quiet period before re-linting (default from config, 100ms)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	env, err := setup()
	if err != nil {
		return err
	}
	if watchFlags.language != "" {
		env.config.Lint.Variant = watchFlags.language
	}
	if watchFlags.format != "" {
		env.config.Lint.Format = watchFlags.format
	}
	if watchFlags.debounce > 0 {
		env.config.Watch.Debounce = watchFlags.debounce
	}

	settings, err := resolveLintSettings(env.config.Lint)
	if err != nil {
		return err
	}
	renderer, err := settings.renderer()
	if err != nil {
		return err
	}

	roots, err := expandPaths(args)
	if err != nil {
		return err
	}
	initial, err := documentsIn(roots, env.config.Watch.Extensions)
	if err != nil {
		return err
	}

	ctx, stop := cli.SetupSignalHandler(commandContext(cmd))
	defer stop()

	linter := newLinter(env)
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	run := func(paths []string) {
		reports, _ := lintPaths(ctx, linter, settings.kind, paths, errOut)
		if err := renderer.Render(out, reports); err != nil {
			env.logger.Error("failed to write report", "error", err)
		}
		if err := env.metrics.WriteTextfile(env.config.Metrics.Textfile); err != nil {
			env.logger.Warn("metrics not exported", "error", err)
		}
	}
	run(initial)

	watcher, err := watch.New(&watch.Config{
		Paths:      roots,
		Debounce:   env.config.Watch.Debounce,
		Extensions: env.config.Watch.Extensions,
		SkipHidden: true,
	}, env.logger.Slog())
	if err != nil {
		return err
	}
	defer watcher.Close()

	return watcher.Watch(ctx, func(changed []string) {
		existing := changed[:0:0]
		for _, p := range changed {
			if _, err := os.Stat(p); err != nil {
				env.logger.Debug("changed document is gone", "path", p)
				continue
			}
			existing = append(existing, p)
		}
		if len(existing) == 0 {
			return
		}
		env.logger.Info("documents changed", "count", len(existing))
		announce(errOut, existing)
		run(existing)
	})
}

// documentsIn lists the documents below roots. Files are kept as given,
// directories contribute every file with one of the extensions.
func documentsIn(roots []string, extensions []string) ([]string, error) {
	var docs []string
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("cannot watch %s: %w", root, err)
		}
		if !info.IsDir() {
			docs = append(docs, root)
			continue
		}
		matches, err := doublestar.FilepathGlob(filepath.Join(root, "**", "*"), doublestar.WithFilesOnly())
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if hasExtension(m, extensions) && !hiddenBelow(root, m) {
				docs = append(docs, m)
			}
		}
	}
	return docs, nil
}

func hasExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// hiddenBelow reports whether any element of path below root starts with a dot.
func hiddenBelow(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	for _, part := range strings.Split(rel, string(filepath.Separator)) {
		if strings.HasPrefix(part, ".") && part != "." && part != ".." {
			return true
		}
	}
	return false
}

func announce(w io.Writer, paths []string) {
	fmt.Fprintf(w, "--- %s: %s\n", time.Now().Format(time.TimeOnly), strings.Join(paths, ", "))
}
