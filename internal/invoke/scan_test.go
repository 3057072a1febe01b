package invoke

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSrc(t *testing.T, src string) (*token.FileSet, *ast.File) {
	t.Helper()

	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, "demo.go", src, parser.ParseComments)
	require.NoError(t, err)

	return fset, file
}

func TestScanFileCollectsDirectives(t *testing.T) {
	fset, file := parseSrc(t, `package demo

//derefgen:deref-and-mut Box string
type Box struct{ value string }

// Holder forwards to its cell.
//derefgen:forward Holder int
type Holder struct{ cell Box }
`)

	invs, diags := ScanFile(fset, file)
	require.False(t, diags.HasErrors())
	require.Len(t, invs, 2)

	assert.Equal(t, ModeDerefAndMut, invs[0].Mode)
	assert.Equal(t, "Box", invs[0].Wrapper)
	assert.Equal(t, "demo.go:3:1", invs[0].Pos)

	assert.Equal(t, ModeForward, invs[1].Mode)
	assert.Equal(t, "Holder", invs[1].Wrapper)
}

func TestScanFileReportsMalformedDirectives(t *testing.T) {
	fset, file := parseSrc(t, `package demo

//derefgen:borrow Box string
type Box struct{ value string }
`)

	invs, diags := ScanFile(fset, file)
	assert.Empty(t, invs)

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, "bad-directive", diags.Errors[0].Code)
	assert.Equal(t, "demo.go:3:1", diags.Errors[0].Pos)
}

func TestScanFileIgnoresUnrelatedComments(t *testing.T) {
	fset, file := parseSrc(t, `package demo

//go:generate go tool stringer -type=Kind
// derefgen: not a directive, space after the slashes
type Kind int
`)

	invs, diags := ScanFile(fset, file)
	assert.Empty(t, invs)
	assert.True(t, diags.IsValid())
}
