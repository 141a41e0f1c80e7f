// Package document defines the decoded configuration document and the path
// based accessor used by every lint rule.
//
// A Document is a nested mapping from element names to either scalar strings
// or nested Documents. It is produced by the parser package and never
// modified by the linter.
//
// Paths are written with "." separated segments:
//
//	doc.Get("Param.Mesh.Filename")
//	doc.Lookup(document.Path{"Param", "Mesh", "Filename"})
//
// Resolution short-circuits on the first missing segment and reports the
// value as absent instead of failing.
package document
