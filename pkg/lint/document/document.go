package document

import (
	"sort"
	"strings"
)

// Separator joins path segments in their string form.
const Separator = "."

// Document is one decoded configuration instance.
// Values are either string scalars or nested Documents.
type Document map[string]any

// Path is an ordered sequence of segments addressing a value in a Document.
type Path []string

// SplitPath splits a dotted path into its segments.
// Empty segments are kept, so "" and "a..b" address keys no document has.
func SplitPath(path string) Path {
	return Path(strings.Split(path, Separator))
}

// String returns the dotted form of the path.
func (p Path) String() string {
	return strings.Join(p, Separator)
}

// Child returns a new path with name appended.
func (p Path) Child(name string) Path {
	child := make(Path, len(p), len(p)+1)
	copy(child, p)
	return append(child, name)
}

// Get resolves a dotted path.
func (d Document) Get(path string) (any, bool) {
	return Resolve(d, SplitPath(path))
}

// Lookup resolves a segmented path.
func (d Document) Lookup(path Path) (any, bool) {
	return Resolve(d, path)
}

// Has reports whether the dotted path resolves to a value.
func (d Document) Has(path string) bool {
	_, ok := d.Get(path)
	return ok
}

// GetString resolves path and returns the value if it is a scalar.
func (d Document) GetString(path string) (string, bool) {
	v, ok := d.Get(path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetDocument resolves path and returns the value if it is a mapping.
func (d Document) GetDocument(path string) (Document, bool) {
	v, ok := d.Get(path)
	if !ok {
		return nil, false
	}
	return AsDocument(v)
}

// Keys returns the sorted top-level keys.
func (d Document) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Resolve walks path starting at value. It returns false as soon as the
// current value is not a mapping or lacks the next segment.
// An empty path resolves to value itself.
func Resolve(value any, path Path) (any, bool) {
	current := value
	for _, segment := range path {
		m, ok := AsDocument(current)
		if !ok {
			return nil, false
		}
		next, ok := m[segment]
		if !ok || next == nil {
			return nil, false
		}
		current = next
	}
	return current, true
}

// AsDocument converts a mapping value to a Document.
// Plain map[string]any values are accepted so that documents assembled by
// hand or decoded by other libraries resolve the same way.
func AsDocument(value any) (Document, bool) {
	switch m := value.(type) {
	case Document:
		return m, true
	case map[string]any:
		return Document(m), true
	default:
		return nil, false
	}
}
