// Package config loads scout's per-project runtime configuration from
// .scout/config.yml under the project root. A missing file yields defaults;
// a malformed file is an error the caller surfaces.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Dir is the project-local directory holding scout's config and database.
const Dir = ".scout"

// FileName is the config file name inside Dir.
const FileName = "config.yml"

// Config holds per-project runtime settings. All fields are read at reload
// time; editing the file takes effect on the next reload, not retroactively.
type Config struct {
	// ExcludeFilters are glob patterns for paths to exclude from the index.
	// Patterns without a path separator match base names.
	ExcludeFilters []string `yaml:"exclude_filters"`

	// DisableWatch turns off all watch registration. The index is then only
	// as fresh as the last reload.
	DisableWatch bool `yaml:"disable_watch"`

	// ForceSync makes explicit reloads synchronous regardless of the
	// requested mode. Used for deterministic test ordering.
	ForceSync bool `yaml:"force_sync"`

	// DBPath overrides the snapshot database location
	// (default: <root>/.scout/scout.db).
	DBPath string `yaml:"db_path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{}
}

// Load reads .scout/config.yml under root. A missing file is not an error.
func Load(root string) (*Config, error) {
	cfg := Default()
	path := filepath.Join(root, Dir, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// DatabasePath resolves the snapshot database location for a project root.
func (c *Config) DatabasePath(root string) string {
	if c.DBPath != "" {
		return c.DBPath
	}
	return filepath.Join(root, Dir, "scout.db")
}
