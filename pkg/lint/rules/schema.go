package rules

import (
	"github.com/wadoon/hf3lint/pkg/lint/document"
	"github.com/wadoon/hf3lint/pkg/lint/schema"
	"github.com/wadoon/hf3lint/pkg/lint/validator"
)

// MsgFieldMissing is recorded for every required field that cannot be resolved.
const MsgFieldMissing = "Field does not exist"

// SchemaRule checks every flattened leaf of a schema.
type SchemaRule struct {
	name  string
	pairs []schema.Pair
}

// NewSchemaRule flattens s once and returns a rule evaluating it.
func NewSchemaRule(name string, s schema.Schema) *SchemaRule {
	return &SchemaRule{name: name, pairs: schema.Flatten(s)}
}

// Name returns the rule name.
func (r *SchemaRule) Name() string { return r.name }

// Pairs returns the flattened leaves in evaluation order.
func (r *SchemaRule) Pairs() []schema.Pair { return r.pairs }

// Apply records one Error per missing field and one per failed check.
func (r *SchemaRule) Apply(doc document.Document, rec *validator.Recorder) {
	for _, p := range r.pairs {
		path := p.Path.String()
		value, ok := doc.Lookup(p.Path)
		if !ok {
			rec.AddError(MsgFieldMissing, path)
			continue
		}
		passed, msg := p.Checker.Check(value)
		rec.Error(passed, msg, path)
	}
}
