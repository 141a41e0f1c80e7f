// Package report holds the diagnostics produced by one validation run.
package report

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Level is the severity of an Entry.
type Level string

const (
	// Error marks a structural defect.
	Error Level = "E"
	// Warning marks a suspect but structurally valid modeling choice.
	Warning Level = "W"
	// Information is reserved for low-priority notices.
	Information Level = "I"
)

// Name returns the lower-case long name of the level.
func (l Level) Name() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Information:
		return "information"
	default:
		return string(l)
	}
}

// ParseLevel accepts either the one-letter code or the long name.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "e", "error":
		return Error, nil
	case "w", "warning", "warn":
		return Warning, nil
	case "i", "information", "info", "hint":
		return Information, nil
	default:
		return "", fmt.Errorf("unknown level %q", s)
	}
}

// Levels selects which severities are shown.
type Levels struct {
	Error       bool
	Warning     bool
	Information bool
}

// AllLevels enables every severity.
func AllLevels() Levels {
	return Levels{Error: true, Warning: true, Information: true}
}

// Includes reports whether l is enabled.
func (ls Levels) Includes(l Level) bool {
	switch l {
	case Error:
		return ls.Error
	case Warning:
		return ls.Warning
	case Information:
		return ls.Information
	default:
		return false
	}
}

// Entry is a single finding.
type Entry struct {
	Level   Level  `json:"level" yaml:"level"`
	Number  int    `json:"number" yaml:"number"`
	Message string `json:"message" yaml:"message"`
	Path    string `json:"path" yaml:"path"`
}

// String renders the entry as "E-3: message in path".
func (e Entry) String() string {
	return fmt.Sprintf("%s-%d: %s in %s", e.Level, e.Number, e.Message, e.Path)
}

// Report is the ordered list of entries of one run.
type Report struct {
	// ID identifies the run.
	ID string `json:"id" yaml:"id"`
	// Source names the validated document, if known.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	// Variant names the rule set that produced the report.
	Variant string  `json:"variant,omitempty" yaml:"variant,omitempty"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// New creates an empty report with a fresh run ID.
func New() *Report {
	return &Report{
		ID:      uuid.NewString(),
		Entries: make([]Entry, 0),
	}
}

// Add appends an entry.
func (r *Report) Add(e Entry) {
	r.Entries = append(r.Entries, e)
}

// Len returns the number of entries.
func (r *Report) Len() int {
	return len(r.Entries)
}

// Count returns the number of entries at level l.
func (r *Report) Count(l Level) int {
	n := 0
	for _, e := range r.Entries {
		if e.Level == l {
			n++
		}
	}
	return n
}

// HasErrors reports whether any Error entry is present.
func (r *Report) HasErrors() bool {
	return r.Count(Error) > 0
}

// Filter returns a copy holding only the entries whose level is enabled.
// Entry numbers are kept so filtered output still refers to the full run.
func (r *Report) Filter(levels Levels) *Report {
	out := &Report{
		ID:      r.ID,
		Source:  r.Source,
		Variant: r.Variant,
		Entries: make([]Entry, 0, len(r.Entries)),
	}
	for _, e := range r.Entries {
		if levels.Includes(e.Level) {
			out.Entries = append(out.Entries, e)
		}
	}
	return out
}

// Summary renders the per-level counts, e.g. "2 error(s), 1 warning(s), 0 information(s)".
func (r *Report) Summary() string {
	return fmt.Sprintf("%d error(s), %d warning(s), %d information(s)",
		r.Count(Error), r.Count(Warning), r.Count(Information))
}
