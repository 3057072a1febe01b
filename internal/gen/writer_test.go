package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAndStale(t *testing.T) {
	dir := t.TempDir()
	file := &GeneratedFile{Filename: "deref_gen.go", Content: []byte("package demo\n")}

	stale, err := Stale(file, dir)
	require.NoError(t, err)
	assert.True(t, stale, "missing file is stale")

	require.NoError(t, WriteFile(file, dir))

	written, err := os.ReadFile(filepath.Join(dir, file.Filename))
	require.NoError(t, err)
	assert.Equal(t, file.Content, written)

	stale, err = Stale(file, dir)
	require.NoError(t, err)
	assert.False(t, stale)

	file.Content = []byte("package demo\n\nvar x int\n")

	stale, err = Stale(file, dir)
	require.NoError(t, err)
	assert.True(t, stale, "content drift is stale")
}
