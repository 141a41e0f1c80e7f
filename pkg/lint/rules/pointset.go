package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wadoon/hf3lint/pkg/lint/checker"
	"github.com/wadoon/hf3lint/pkg/lint/document"
	"github.com/wadoon/hf3lint/pkg/lint/validator"
)

const (
	segmentSeparator   = ";"
	componentSeparator = ","
	pointArity         = 3
)

// PointSet names one optional block holding a count, a point list and a
// value list. Field names are relative to Root.
type PointSet struct {
	Root   string
	Count  string
	Points string
	Values string
}

// PointSetRule checks that a PointSet block is internally consistent.
type PointSetRule struct {
	name string
	set  PointSet
}

// NewPointSetRule returns a rule for set. The rule is named after the last
// segment of set.Root.
func NewPointSetRule(set PointSet) *PointSetRule {
	root := document.SplitPath(set.Root)
	name := set.Root
	if len(root) > 0 {
		name = root[len(root)-1]
	}
	return &PointSetRule{name: name, set: set}
}

// Name returns the rule name.
func (r *PointSetRule) Name() string { return r.name }

// Set returns the checked block description.
func (r *PointSetRule) Set() PointSet { return r.set }

// Apply validates the block if it is present. A missing block is not an error.
func (r *PointSetRule) Apply(doc document.Document, rec *validator.Recorder) {
	s := r.set
	raw, ok := doc.Get(s.Root)
	if !ok {
		return
	}
	block, ok := document.AsDocument(raw)
	if !ok {
		rec.AddError("structure expected", s.Root)
		return
	}

	fields := []string{s.Count, s.Points, s.Values}
	complete := true
	for _, f := range fields {
		complete = rec.Error(block.Has(f), MsgFieldMissing, r.path(f)) && complete
	}
	if !complete {
		return
	}

	values := make(map[string]string, len(fields))
	for _, f := range fields {
		v, isString := block.GetString(f)
		if !rec.Error(isString, "string expected", r.path(f)) {
			return
		}
		values[f] = v
	}

	passed, msg := checker.NaturalNumber.Check(values[s.Count])
	if !rec.Error(passed, msg, r.path(s.Count)) {
		return
	}
	expected, err := strconv.Atoi(values[s.Count])
	if err != nil {
		rec.AddError(fmt.Sprintf("count %s is out of range", values[s.Count]), r.path(s.Count))
		return
	}

	// Both counts are reported before any vector, points ahead of values.
	r.checkCount(rec, expected, s.Points, values[s.Points])
	r.checkCount(rec, expected, s.Values, values[s.Values])
	r.checkVectors(rec, s.Points, values[s.Points], pointArity)
	r.checkVectors(rec, s.Values, values[s.Values], 0)
}

func (r *PointSetRule) path(field string) string {
	return r.set.Root + document.Separator + field
}

func (r *PointSetRule) checkCount(rec *validator.Recorder, expected int, field, list string) {
	found := strings.Count(list, segmentSeparator) + 1
	rec.Error(expected == found,
		fmt.Sprintf("Amount of points mismatch (expected %d, found %d)", expected, found),
		r.path(field))
}

// checkVectors validates every component of list as a float, untrimmed. With a
// positive arity each segment must also hold exactly that many components.
func (r *PointSetRule) checkVectors(rec *validator.Recorder, field, list string, arity int) {
	path := r.path(field)
	for _, segment := range strings.Split(list, segmentSeparator) {
		components := strings.Split(segment, componentSeparator)
		if arity > 0 {
			rec.Error(len(components) == arity,
				fmt.Sprintf("The vector %s does not have exactly %d components", segment, arity),
				path)
		}
		for _, c := range components {
			passed, msg := checker.Float.Check(c)
			rec.Error(passed, msg, path)
		}
	}
}
