// hf3lint validates HiFlow3 parameter and boundary-condition documents.
//
// A document is checked against one of two rule sets: "hf3" for solver
// parameter files (a declarative field schema plus parameter relations) and
// "bc" for boundary-condition files (point counts and vector arity). The
// rule set is detected from the document unless given explicitly.
//
// Usage:
//
//	# Lint a document, detecting its variant
//	hf3lint lint flow.xml
//
//	# Lint every document below a directory as JSON
//	hf3lint lint -f json 'cases/**/*.xml'
//
//	# Re-lint documents whenever they change
//	hf3lint watch cases/
//
//	# Show which variant a document is
//	hf3lint detect flow.xml
//
//	# List every field of the hf3 schema
//	hf3lint schema
package main

func main() {
	Execute()
}
