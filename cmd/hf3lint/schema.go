package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wadoon/hf3lint/pkg/lint/checker"
	"github.com/wadoon/hf3lint/pkg/lint/schema"
	"github.com/wadoon/hf3lint/pkg/lint/variant"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "List the fields of the hf3 schema",
	Long: `List every field required by the hf3 rule set with the check applied
to its value, one field per line in path order.`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, pair := range schema.Flatten(variant.HF3Schema(checker.OSFileSystem{})) {
		fmt.Fprintf(w, "%s\t%s\n", pair.Path, pair.Checker.Name())
	}
	return w.Flush()
}
