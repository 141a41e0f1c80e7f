package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wadoon/hf3lint/pkg/cli"
)

var detectCmd = &cobra.Command{
	Use:   "detect FILE...",
	Short: "Print the variant of each document",
	Long: `Print which rule set (hf3 or bc) a document would be linted with.

A document with Param.Mesh and without Param.BCData is hf3, one with
Param.BCData and without Param.Mesh is bc. Anything else cannot be detected.`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	env, err := setup()
	if err != nil {
		return err
	}
	paths, err := expandPaths(args)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	linter := newLinter(env)
	failed := 0
	for _, path := range paths {
		kind, err := linter.DetectFile(ctx, path)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			failed++
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, kind)
	}

	if failed > 0 {
		return cli.NewCommandError("detect", fmt.Errorf("%d of %d document(s) not detected", failed, len(paths)))
	}
	return nil
}
