package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadOne(t *testing.T, pattern string) *Package {
	t.Helper()

	pkgs, err := Load(pattern)
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	return pkgs[0]
}

func TestLoadIndexesStructs(t *testing.T) {
	pkg := loadOne(t, "derefgen/examples/box")

	assert.Equal(t, "box", pkg.Name)
	assert.Equal(t, "derefgen/examples/box", pkg.Path)
	assert.NotEmpty(t, pkg.Dir)
	assert.NotEmpty(t, pkg.Syntax)

	st := pkg.Struct("Box1")
	require.NotNil(t, st)

	field, ok := st.SoleField()
	require.True(t, ok)
	assert.Equal(t, "value", field.Name)
	assert.Equal(t, "string", field.Type)
}

func TestLoadIndexesUnexportedAndMultiFieldStructs(t *testing.T) {
	pkg := loadOne(t, "derefgen/examples/view")

	st := pkg.Struct("Raw")
	require.NotNil(t, st)
	require.Len(t, st.Fields, 2)

	_, ok := st.SoleField()
	assert.False(t, ok, "two-field struct must not resolve a sole field")

	assert.Equal(t, "buf", st.Fields[0].Name)
	assert.Equal(t, "[]byte", st.Fields[0].Type)
}

func TestLoadIndexesImports(t *testing.T) {
	// The committed generated file imports the capability package.
	pkg := loadOne(t, "derefgen/examples/box")

	path, ok := pkg.FindImport("derefgen")
	require.True(t, ok)
	assert.Equal(t, "derefgen", path)

	_, ok = pkg.FindImport("big")
	assert.False(t, ok)
}

func TestLoadReportsBrokenPatterns(t *testing.T) {
	_, err := Load("derefgen/does/not/exist")
	assert.Error(t, err)
}

func TestStructMissing(t *testing.T) {
	pkg := loadOne(t, "derefgen/examples/box")

	assert.Nil(t, pkg.Struct("Nope"))
}
