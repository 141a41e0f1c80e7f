/*
Package validator runs a fixed set of lint rules against a document.

A Validator is assembled once from Rule values and sorted by rule name, so
every run executes the rules in the same order:

	v := validator.New(
	    rules.NewSchemaRule("check_fields", fields),
	    rules.NewElasticityRule(),
	)
	rep := v.Validate(doc)

Each call to Validate creates a fresh Report and a Recorder bound to it. Rules
record findings through the Recorder; they never return errors for bad
document content. Because no run state lives on the Validator, one Validator
can serve concurrent runs as long as its rules are read-only.

Recording helpers take a condition and record only when it is false, returning
the condition so that dependent checks can be skipped:

	if !rec.Error(ok, msg, path) {
	    return
	}
*/
package validator
