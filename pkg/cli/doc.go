/*
Package cli provides command-line utilities for hf3lint.

Output Formatting:

Lint reports are written by a Renderer for one of the supported formats
(term, cterm, json, xml, csv). Entries of hidden severities are dropped
before rendering:

	r, err := cli.NewRenderer(cli.FormatColorTerm, cli.DefaultRenderOptions())
	if err != nil {
		return err
	}
	return r.Render(os.Stdout, reports)

Signal Handling:

SetupSignalHandler returns a context canceled on SIGINT or SIGTERM, used by
long-running commands such as watch.
*/
package cli
