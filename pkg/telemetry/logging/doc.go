// Package logging provides structured logging for hf3lint.
//
// # Overview
//
// The logging package wraps Go's standard log/slog package to provide:
//   - Structured logging with JSON, text, and console formats
//   - Context-aware logging with run IDs, document paths and variants
//   - Configurable log levels (debug, info, warn, error)
//
// Logs are diagnostics about the linter itself. Lint findings are never
// logged; they go to the report renderer.
//
// # Usage
//
//	logger, err := logging.New(logging.Config{
//	    Level:  "info",
//	    Format: "text",
//	    Writer: os.Stderr,
//	})
//
//	ctx = logging.WithDocument(ctx, "bunny.xml")
//	logger.InfoContext(ctx, "document validated", "errors", 2)
package logging
