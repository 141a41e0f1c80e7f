// Package checker provides the leaf-level predicates used by lint schemas.
//
// A Checker classifies one scalar value as valid or invalid and returns a
// diagnostic message describing the failure. All checkers are pure except
// FileExists, which consults a FileSystem.
package checker

import (
	"fmt"
	"regexp"
	"strings"
)

// Patterns used by the numeric checkers.
var (
	NaturalPattern = regexp.MustCompile(`^\d+$`)
	IntegerPattern = regexp.MustCompile(`^[+-]?\d+$`)
	FloatPattern   = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)
)

// Checker validates a single value.
type Checker interface {
	// Name describes the check for listings (e.g. "natural number").
	Name() string
	// Check returns whether value passes and, if not, why.
	Check(value any) (bool, string)
}

// Func adapts a plain function to the Checker interface.
type Func struct {
	name string
	fn   func(value any) (bool, string)
}

// New creates a named Checker from fn.
func New(name string, fn func(value any) (bool, string)) *Func {
	return &Func{name: name, fn: fn}
}

// Name returns the checker description.
func (f *Func) Name() string { return f.name }

// Check runs the wrapped function.
func (f *Func) Check(value any) (bool, string) { return f.fn(value) }

// Built-in checkers.
var (
	IsString      Checker = New("string", isString)
	NaturalNumber Checker = Matches("natural number", NaturalPattern)
	Integer       Checker = Matches("integer", IntegerPattern)
	Float         Checker = Matches("float", FloatPattern)
)

const msgStringExpected = "string expected"

func isString(value any) (bool, string) {
	_, ok := value.(string)
	return ok, msgStringExpected
}

// Matches returns a Checker that passes when the value is a string matched
// by pattern.
func Matches(name string, pattern *regexp.Regexp) Checker {
	return New(name, func(value any) (bool, string) {
		s, ok := value.(string)
		if !ok {
			return false, msgStringExpected
		}
		if pattern.MatchString(s) {
			return true, ""
		}
		return false, fmt.Sprintf("field '%s' was not matched by %s", strings.TrimSpace(s), pattern.String())
	})
}

// OneOf returns a Checker that passes when the value is one of allowed.
// Duplicates in allowed are ignored; order is kept for the message.
func OneOf(allowed ...string) Checker {
	seen := make(map[string]bool, len(allowed))
	values := make([]string, 0, len(allowed))
	for _, a := range allowed {
		if !seen[a] {
			seen[a] = true
			values = append(values, a)
		}
	}

	name := fmt.Sprintf("one of [%s]", strings.Join(values, ", "))
	return New(name, func(value any) (bool, string) {
		s, ok := value.(string)
		if ok && seen[s] {
			return true, ""
		}

		msg := fmt.Sprintf("%v has to be in [%s]", value, strings.Join(values, ", "))
		if ok {
			if hint := SuggestValue(s, values); hint != "" {
				msg += ". " + hint
			}
		}
		return false, msg
	})
}

// Equals returns a Checker comparing the value with a literal.
func Equals(expected string) Checker {
	return New(fmt.Sprintf("equal to %q", expected), func(value any) (bool, string) {
		s, ok := value.(string)
		if ok && s == expected {
			return true, ""
		}
		return false, fmt.Sprintf("%s is not equal to %v", expected, value)
	})
}
