package validator

import (
	"sort"

	"github.com/wadoon/hf3lint/pkg/lint/document"
	"github.com/wadoon/hf3lint/pkg/lint/report"
)

// Rule is a named validation procedure.
type Rule interface {
	Name() string
	Apply(doc document.Document, rec *Recorder)
}

type ruleFunc struct {
	name string
	fn   func(doc document.Document, rec *Recorder)
}

func (r ruleFunc) Name() string                               { return r.name }
func (r ruleFunc) Apply(doc document.Document, rec *Recorder) { r.fn(doc, rec) }

// NewRule adapts a function to the Rule interface.
func NewRule(name string, fn func(doc document.Document, rec *Recorder)) Rule {
	return ruleFunc{name: name, fn: fn}
}

// Validator holds an ordered rule set.
type Validator struct {
	rules []Rule
}

// New creates a Validator. Rules are sorted by name; rules sharing a name
// keep their relative order.
func New(rules ...Rule) *Validator {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name() < sorted[j].Name()
	})
	return &Validator{rules: sorted}
}

// Rules returns the rules in execution order.
func (v *Validator) Rules() []Rule {
	out := make([]Rule, len(v.rules))
	copy(out, v.rules)
	return out
}

// Validate runs every rule against doc and returns the accumulated report.
func (v *Validator) Validate(doc document.Document) *report.Report {
	rep := report.New()
	rec := NewRecorder(rep)
	for _, r := range v.rules {
		r.Apply(doc, rec)
	}
	return rep
}
