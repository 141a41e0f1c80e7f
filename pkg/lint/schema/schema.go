// Package schema describes the required shape of a configuration document.
//
// A Schema maps element names to nodes. A node is one of:
//
//   - Nested: a sub-schema (structure only),
//   - Check: a checker applied to the field's value,
//   - Literal: shorthand for an equality check against a fixed string.
//
// Schemas are built once and only read afterwards, so a single Schema may be
// shared by concurrent validation runs.
//
//	s := schema.Schema{
//	    "Param": schema.Nested{
//	        "QuadratureOrder": schema.Literal("2"),
//	        "Mesh": schema.Nested{
//	            "InitialRefLevel": schema.Is(checker.NaturalNumber),
//	        },
//	    },
//	}
package schema

import (
	"fmt"
	"sort"

	"github.com/wadoon/hf3lint/pkg/lint/checker"
	"github.com/wadoon/hf3lint/pkg/lint/document"
)

// Node is a schema entry. The set of implementations is closed.
type Node interface {
	node()
}

// Schema is the root of a field description.
type Schema map[string]Node

// Nested is a sub-schema.
type Nested map[string]Node

// Check applies a Checker to the field value.
type Check struct {
	Checker checker.Checker
}

// Literal requires the field to equal the given string.
type Literal string

func (Nested) node()  {}
func (Check) node()   {}
func (Literal) node() {}

// Is wraps c as a schema node.
func Is(c checker.Checker) Check {
	return Check{Checker: c}
}

// Pair is one flattened schema leaf.
type Pair struct {
	Path    document.Path
	Checker checker.Checker
}

// Flatten walks s depth-first and returns one Pair per leaf. Keys are visited
// in sorted order so the result is stable. Literal leaves become equality
// checkers.
//
// Flatten panics on a nil checker or an unknown node type; both are
// definition errors, not document errors.
func Flatten(s Schema) []Pair {
	var pairs []Pair
	flatten(map[string]Node(s), nil, &pairs)
	return pairs
}

// Paths returns the dotted path of every leaf in Flatten order.
func Paths(s Schema) []string {
	pairs := Flatten(s)
	paths := make([]string, len(pairs))
	for i, p := range pairs {
		paths[i] = p.Path.String()
	}
	return paths
}

func flatten(fields map[string]Node, prefix document.Path, out *[]Pair) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		path := prefix.Child(key)

		switch n := fields[key].(type) {
		case Nested:
			flatten(map[string]Node(n), path, out)
		case Check:
			if n.Checker == nil {
				panic(fmt.Sprintf("schema: nil checker at %s", path))
			}
			*out = append(*out, Pair{Path: path, Checker: n.Checker})
		case Literal:
			*out = append(*out, Pair{Path: path, Checker: checker.Equals(string(n))})
		default:
			panic(fmt.Sprintf("schema: unsupported node %T at %s", n, path))
		}
	}
}
