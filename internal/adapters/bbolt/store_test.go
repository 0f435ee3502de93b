package bbolt

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "scout.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	snap := map[string][]string{
		"/root":     {"a.c"},
		"/root/sub": {"b.c", "c.c"},
	}
	require.NoError(t, s.SaveSnapshot("proj", snap))

	got, err := s.LoadSnapshot("proj")
	require.NoError(t, err)
	assert.Equal(t, snap, got)

	ts, err := s.SavedAt("proj")
	require.NoError(t, err)
	assert.Greater(t, ts, int64(0))
}

func TestStore_LoadMissingProject(t *testing.T) {
	s := newTestStore(t)

	got, err := s.LoadSnapshot("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_SaveOverwrites(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveSnapshot("proj", map[string][]string{"/old": {"x.c"}}))
	require.NoError(t, s.SaveSnapshot("proj", map[string][]string{"/new": {"y.c"}}))

	got, err := s.LoadSnapshot("proj")
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"/new": {"y.c"}}, got)
}

func TestStore_DeleteProjectIdempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveSnapshot("proj", map[string][]string{"/d": {"a"}}))
	require.NoError(t, s.DeleteProject("proj"))

	got, err := s.LoadSnapshot("proj")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting again is not an error.
	assert.NoError(t, s.DeleteProject("proj"))
}

func TestStore_ProjectsAreIsolated(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveSnapshot("one", map[string][]string{"/a": {"1.c"}}))
	require.NoError(t, s.SaveSnapshot("two", map[string][]string{"/b": {"2.c"}}))
	require.NoError(t, s.DeleteProject("one"))

	got, err := s.LoadSnapshot("two")
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"/b": {"2.c"}}, got)
}
