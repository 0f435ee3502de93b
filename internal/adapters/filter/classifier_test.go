package filter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/scout/internal/ports"
)

func TestClassify_SourceAndPlainFiles(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(src, []byte("package main"), 0644))
	plain := filepath.Join(dir, "README")
	require.NoError(t, os.WriteFile(plain, []byte("hello"), 0644))

	c := New(nil)
	assert.Equal(t, ports.Source, c.Classify(src))
	assert.Equal(t, ports.File, c.Classify(plain))
	assert.Equal(t, ports.Directory, c.Classify(dir))
}

func TestClassify_SkipsVCSDirs(t *testing.T) {
	dir := t.TempDir()
	git := filepath.Join(dir, ".git")
	require.NoError(t, os.Mkdir(git, 0755))

	c := New(nil)
	assert.Equal(t, ports.Filtered, c.Classify(git))
}

func TestClassify_MissingPathIsFiltered(t *testing.T) {
	c := New(nil)
	assert.Equal(t, ports.Filtered, c.Classify(filepath.Join(t.TempDir(), "gone.c")))
	assert.Equal(t, ports.Filtered, c.Classify(""))
}

func TestClassify_ExcludePatterns(t *testing.T) {
	dir := t.TempDir()
	gen := filepath.Join(dir, "zz_generated.go")
	require.NoError(t, os.WriteFile(gen, []byte("x"), 0644))
	keep := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(keep, []byte("x"), 0644))

	c := New([]string{"zz_generated*"})
	assert.Equal(t, ports.Filtered, c.Classify(gen))
	assert.Equal(t, ports.Source, c.Classify(keep))
}

func TestClassify_EditorDroppings(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"foo.c~", ".#foo.c", "#foo.c#", ".DS_Store", "a.swp"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
		assert.Equal(t, ports.Filtered, New(nil).Classify(p), "name %q", name)
	}
}
