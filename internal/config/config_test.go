package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, cfg.ExcludeFilters)
	assert.False(t, cfg.DisableWatch)
	assert.False(t, cfg.ForceSync)
}

func TestLoad_ParsesYAML(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, Dir), 0755))
	body := `
exclude_filters:
  - "*.tmp"
  - "gen/*"
disable_watch: true
force_sync: true
db_path: /tmp/custom.db
`
	require.NoError(t, os.WriteFile(filepath.Join(root, Dir, FileName), []byte(body), 0644))

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"*.tmp", "gen/*"}, cfg.ExcludeFilters)
	assert.True(t, cfg.DisableWatch)
	assert.True(t, cfg.ForceSync)
	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
}

func TestLoad_MalformedYAMLIsAnError(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, Dir), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, Dir, FileName), []byte("{notyaml"), 0644))

	_, err := Load(root)
	assert.Error(t, err)
}

func TestDatabasePath(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filepath.Join("/p", Dir, "scout.db"), cfg.DatabasePath("/p"))

	cfg.DBPath = "/elsewhere/x.db"
	assert.Equal(t, "/elsewhere/x.db", cfg.DatabasePath("/p"))
}
