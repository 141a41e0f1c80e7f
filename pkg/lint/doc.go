// Package lint validates HiFlow3 parameter and boundary-condition files.
//
// # Architecture
//
// The package is organized into subpackages:
//
// - document: nested key-value documents and dotted path lookup
// - checker: leaf predicates (string, natural number, float, membership, ...)
// - schema: declarative field catalogs and their flattening
// - report: severities, entries and the per-run report
// - validator: rule dispatch and entry recording
// - rules: schema, point-set and elasticity rules
// - variant: rule sets for hf3 and bc documents and their detection
// - parser: XML, YAML and JSON decoding into documents
//
// # Basic Usage
//
//	rep, err := lint.LintFile(ctx, "bunny.xml", variant.Auto)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, e := range rep.Entries {
//	    fmt.Println(e)
//	}
//
// A Linter carries the logger, metrics collector and file system used for
// file-reference checks:
//
//	l := lint.New(
//	    lint.WithLogger(logger),
//	    lint.WithMetrics(collector),
//	)
//	rep, err := l.LintFile(ctx, "bunny_bc.xml", variant.BC)
//
// Errors are returned only when a document cannot be read or its variant
// cannot be determined. Findings about the content are always entries in the
// returned report.
package lint
