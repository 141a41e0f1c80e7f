package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() Document {
	return Document{
		"Param": Document{
			"Mesh": Document{
				"Filename":        "mesh.inp",
				"InitialRefLevel": "3",
			},
			"QuadratureOrder": "2",
			"Plain":           map[string]any{"Leaf": "x"},
		},
	}
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		in   string
		want Path
	}{
		{"a.b.c", Path{"a", "b", "c"}},
		{"a", Path{"a"}},
		{"a.b.", Path{"a", "b", ""}},
		{"a..b", Path{"a", "", "b"}},
		{"", Path{""}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitPath(tt.in))
		})
	}
}

func TestPathString(t *testing.T) {
	assert.Equal(t, "Param.Mesh.Filename", Path{"Param", "Mesh", "Filename"}.String())
	assert.Equal(t, "", Path{}.String())
}

func TestPathChildDoesNotAlias(t *testing.T) {
	base := make(Path, 1, 4)
	base[0] = "Param"

	a := base.Child("A")
	b := base.Child("B")

	assert.Equal(t, Path{"Param", "A"}, a)
	assert.Equal(t, Path{"Param", "B"}, b)
}

func TestDocumentGet(t *testing.T) {
	doc := sampleDocument()

	tests := []struct {
		name   string
		path   string
		want   any
		wantOK bool
	}{
		{"leaf", "Param.Mesh.Filename", "mesh.inp", true},
		{"nested mapping", "Param.Mesh", doc["Param"].(Document)["Mesh"], true},
		{"missing leaf", "Param.Mesh.BCdataFilename", nil, false},
		{"missing intermediate", "Param.LinearSolver.SolverName", nil, false},
		{"descend into scalar", "Param.QuadratureOrder.Value", nil, false},
		{"plain map", "Param.Plain.Leaf", "x", true},
		{"missing root", "Other", nil, false},
		{"empty path", "", nil, false},
		{"empty segment", "Param..Mesh", nil, false},
		{"trailing separator", "Param.Mesh.", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := doc.Get(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocumentLookupMatchesGet(t *testing.T) {
	doc := sampleDocument()

	byString, ok1 := doc.Get("Param.Mesh.InitialRefLevel")
	bySegments, ok2 := doc.Lookup(Path{"Param", "Mesh", "InitialRefLevel"})

	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, byString, bySegments)
}

func TestResolveNonMappingRoot(t *testing.T) {
	_, ok := Resolve("scalar", Path{"a"})
	assert.False(t, ok)

	v, ok := Resolve("scalar", nil)
	assert.True(t, ok)
	assert.Equal(t, "scalar", v)
}

func TestTypedAccessors(t *testing.T) {
	doc := sampleDocument()

	s, ok := doc.GetString("Param.QuadratureOrder")
	assert.True(t, ok)
	assert.Equal(t, "2", s)

	_, ok = doc.GetString("Param.Mesh")
	assert.False(t, ok)

	mesh, ok := doc.GetDocument("Param.Mesh")
	require.True(t, ok)
	assert.Equal(t, []string{"Filename", "InitialRefLevel"}, mesh.Keys())

	_, ok = doc.GetDocument("Param.QuadratureOrder")
	assert.False(t, ok)

	assert.True(t, doc.Has("Param.Mesh.Filename"))
	assert.False(t, doc.Has("Param.Mesh.Nope"))
}
