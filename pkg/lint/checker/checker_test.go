package checker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsString(t *testing.T) {
	ok, _ := IsString.Check("out/prefix")
	assert.True(t, ok)

	ok, msg := IsString.Check(map[string]any{})
	assert.False(t, ok)
	assert.Equal(t, "string expected", msg)

	ok, _ = IsString.Check(nil)
	assert.False(t, ok)
}

func TestPatternCheckers(t *testing.T) {
	tests := []struct {
		name    string
		checker Checker
		value   string
		want    bool
	}{
		{"natural", NaturalNumber, "42", true},
		{"natural zero", NaturalNumber, "0", true},
		{"natural signed", NaturalNumber, "+4", false},
		{"natural empty", NaturalNumber, "", false},
		{"natural padded", NaturalNumber, " 4", false},
		{"integer plain", Integer, "17", true},
		{"integer negative", Integer, "-17", true},
		{"integer positive sign", Integer, "+17", true},
		{"integer decimal", Integer, "1.5", false},
		{"float integer", Float, "3", true},
		{"float decimal", Float, "3.25", true},
		{"float trailing dot", Float, "3.", true},
		{"float leading dot", Float, ".5", true},
		{"float exponent", Float, "-1.5e-10", true},
		{"float upper exponent", Float, "2E3", true},
		{"float bare dot", Float, ".", false},
		{"float text", Float, "abc", false},
		{"float empty", Float, "", false},
		{"float dangling exponent", Float, "1e", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := tt.checker.Check(tt.value)
			assert.Equal(t, tt.want, ok)
			if !tt.want {
				assert.Contains(t, msg, "was not matched by")
			}
		})
	}
}

func TestPatternMessage(t *testing.T) {
	ok, msg := NaturalNumber.Check(" x1 ")
	assert.False(t, ok)
	assert.Equal(t, `field 'x1' was not matched by ^\d+$`, msg)

	ok, msg = Float.Check(Float)
	assert.False(t, ok)
	assert.Equal(t, "string expected", msg)
}

func TestOneOf(t *testing.T) {
	c := OneOf("CG", "GMRES")

	ok, _ := c.Check("CG")
	assert.True(t, ok)

	ok, msg := c.Check("BICGSTAB")
	assert.False(t, ok)
	assert.Equal(t, "BICGSTAB has to be in [CG, GMRES]", msg)

	ok, msg = c.Check("GMRS")
	assert.False(t, ok)
	assert.Equal(t, "GMRS has to be in [CG, GMRES]. Did you mean 'GMRES'?", msg)

	ok, _ = c.Check(map[string]any{"CG": "x"})
	assert.False(t, ok)
}

func TestOneOfDeduplicates(t *testing.T) {
	c := OneOf("SOR", "ILU", "SOR")
	assert.Equal(t, "one of [SOR, ILU]", c.Name())
}

func TestEquals(t *testing.T) {
	c := Equals("2")

	ok, _ := c.Check("2")
	assert.True(t, ok)

	ok, msg := c.Check("3")
	assert.False(t, ok)
	assert.Equal(t, "2 is not equal to 3", msg)

	ok, _ = c.Check("2.0")
	assert.False(t, ok)
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mesh.inp"), []byte("mesh"), 0o644))

	c := FileExists(OSFileSystem{BaseDir: dir})

	ok, _ := c.Check("mesh.inp")
	assert.True(t, ok)

	ok, _ = c.Check(filepath.Join(dir, "mesh.inp"))
	assert.True(t, ok)

	ok, msg := c.Check("missing.inp")
	assert.False(t, ok)
	assert.Equal(t, "file "+filepath.Join(dir, "missing.inp")+" does not exist", msg)

	ok, _ = c.Check("")
	assert.False(t, ok)
}

func TestFileExistsReportsAbsolutePath(t *testing.T) {
	c := FileExists(nil)

	ok, msg := c.Check("definitely-not-here.vtu")
	assert.False(t, ok)

	path := strings.TrimSuffix(strings.TrimPrefix(msg, "file "), " does not exist")
	assert.True(t, filepath.IsAbs(path), "message should carry an absolute path: %s", msg)
}

type fakeFS map[string]bool

func (f fakeFS) Exists(path string) bool { return f[path] }
func (f fakeFS) Abs(path string) string  { return "/virtual/" + path }

func TestFileExistsUsesFileSystem(t *testing.T) {
	c := FileExists(fakeFS{"bc.xml": true})

	ok, _ := c.Check("bc.xml")
	assert.True(t, ok)

	_, msg := c.Check("mesh.inp")
	assert.Equal(t, "file /virtual/mesh.inp does not exist", msg)
}

func TestSuggestValue(t *testing.T) {
	assert.Equal(t, "Did you mean 'Newmark'?", SuggestValue("Newmrk", []string{"ImplicitEuler", "Newmark"}))
	assert.Equal(t, "", SuggestValue("Completely", []string{"CG", "GMRES"}))
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
	assert.Equal(t, 0, levenshteinDistance("CSR", "CSR"))
}
