// Package variant selects the rule set for a document.
//
// Two variants exist: hf3 for solver parameter files and bc for boundary
// condition files. Detect picks one from the document shape; New builds the
// matching validator.
package variant

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wadoon/hf3lint/pkg/lint/checker"
	"github.com/wadoon/hf3lint/pkg/lint/document"
	"github.com/wadoon/hf3lint/pkg/lint/rules"
	"github.com/wadoon/hf3lint/pkg/lint/validator"
)

// Kind names a document variant.
type Kind string

const (
	Auto Kind = "auto"
	HF3  Kind = "hf3"
	BC   Kind = "bc"
)

var (
	// ErrInvalidKind is returned for an unrecognised variant name.
	ErrInvalidKind = errors.New("invalid variant")
	// ErrUnknownVariant is returned when detection finds no marker.
	ErrUnknownVariant = errors.New("cannot detect document variant")
	// ErrAmbiguousVariant is returned when both markers are present.
	ErrAmbiguousVariant = errors.New("ambiguous document variant")
)

// Kinds lists the accepted variant names.
func Kinds() []Kind {
	return []Kind{Auto, HF3, BC}
}

// ParseKind parses a variant name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case Auto, HF3, BC:
		return k, nil
	case "":
		return Auto, nil
	}
	return "", fmt.Errorf("%w: %q (expected one of auto, hf3, bc)", ErrInvalidKind, s)
}

// Marker paths inspected by Detect.
const (
	RootElement = "Param"
	hf3Marker   = RootElement + ".Mesh"
	bcMarker    = RootElement + ".BCData"
)

// Detect infers the variant from the document shape: a Mesh block means
// hf3, a BCData block means bc.
func Detect(doc document.Document) (Kind, error) {
	if _, ok := doc.GetDocument(RootElement); !ok {
		return "", fmt.Errorf("%w: no %s element", ErrUnknownVariant, RootElement)
	}
	hasMesh := doc.Has(hf3Marker)
	hasBC := doc.Has(bcMarker)

	switch {
	case hasMesh && hasBC:
		return "", fmt.Errorf("%w: both %s and %s present", ErrAmbiguousVariant, hf3Marker, bcMarker)
	case hasMesh:
		return HF3, nil
	case hasBC:
		return BC, nil
	}
	return "", fmt.Errorf("%w: neither %s nor %s present", ErrUnknownVariant, hf3Marker, bcMarker)
}

// Options configures validator construction.
type Options struct {
	// FS answers file existence checks. Nil uses the working directory.
	FS checker.FileSystem
}

// New returns the validator for kind. Auto is not accepted; resolve it with
// Detect first.
func New(kind Kind, opts Options) (*validator.Validator, error) {
	switch kind {
	case HF3:
		return validator.New(
			rules.NewSchemaRule("check_fields", HF3Schema(opts.FS)),
			rules.NewElasticityRule(),
		), nil
	case BC:
		rs := make([]validator.Rule, 0, len(BCPointSets))
		for _, set := range BCPointSets {
			rs = append(rs, rules.NewPointSetRule(set))
		}
		return validator.New(rs...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
}

// Resolve returns kind, or the detected variant when kind is Auto.
func Resolve(kind Kind, doc document.Document) (Kind, error) {
	if kind == Auto || kind == "" {
		return Detect(doc)
	}
	return kind, nil
}
