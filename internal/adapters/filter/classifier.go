// Package filter implements the default ports.Classifier. It combines a
// built-in skip list (VCS metadata, build output, editor droppings) with
// user-supplied exclude patterns from the project config.
package filter

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/corey/scout/internal/ports"
)

// skipDirs lists directory names excluded from indexing and watching.
var skipDirs = map[string]bool{
	".git":         true,
	".svn":         true,
	".cvs":         true,
	".hg":          true,
	"node_modules": true,
	".venv":        true,
	"__pycache__":  true,
	".idea":        true,
	".vscode":      true,
	".scout":       true,
	".next":        true,
	"target":       true,
}

// junkFiles lists file names/suffixes that never belong in the index.
var junkFiles = map[string]bool{
	".DS_Store": true,
	".swp":      true,
	".pyc":      true,
	".o":        true,
	".so":       true,
	".dylib":    true,
}

// sourceExtensions is the set of file extensions recognized as source code.
var sourceExtensions = map[string]bool{
	// Core languages
	".go": true, ".py": true, ".pyw": true,
	".js": true, ".jsx": true, ".mjs": true, ".cjs": true,
	".ts": true, ".mts": true, ".tsx": true,
	".rs": true, ".java": true,
	".c": true, ".h": true, ".cpp": true, ".hpp": true, ".cc": true, ".cxx": true, ".hxx": true,
	".cs": true, ".rb": true, ".php": true, ".swift": true,
	".kt": true, ".kts": true, ".scala": true, ".sc": true,
	// Scripting
	".sh": true, ".bash": true, ".zsh": true, ".lua": true,
	".pl": true, ".pm": true, ".r": true, ".jl": true,
	".ex": true, ".exs": true, ".erl": true, ".hrl": true,
	// Functional
	".hs": true, ".ml": true, ".mli": true, ".elm": true,
	".clj": true, ".cljs": true, ".cljc": true,
	// Systems
	".zig": true, ".d": true, ".cu": true, ".cuh": true,
	".odin": true, ".v": true, ".nim": true,
	".m": true, ".mm": true,
	// Web
	".html": true, ".htm": true, ".css": true, ".scss": true, ".less": true,
	".vue": true, ".svelte": true, ".dart": true,
}

// Classifier implements ports.Classifier.
type Classifier struct {
	exclude []string
}

// New creates a classifier with the given exclude patterns. Patterns without a
// path separator match the base name (filepath.Match syntax); patterns with a
// separator match the full path.
func New(exclude []string) *Classifier {
	return &Classifier{exclude: exclude}
}

// Classify categorizes a path. Entries that cannot be stat'd are Filtered:
// a vanished or unreadable entry is skipped, never an error.
func (c *Classifier) Classify(path string) ports.Class {
	if path == "" {
		return ports.Filtered
	}
	base := filepath.Base(path)

	if c.excluded(path, base) {
		return ports.Filtered
	}

	info, err := os.Lstat(path)
	if err != nil {
		return ports.Filtered
	}

	if info.IsDir() {
		if skipDirs[base] {
			return ports.Filtered
		}
		return ports.Directory
	}

	if junk(base) {
		return ports.Filtered
	}
	if sourceExtensions[strings.ToLower(filepath.Ext(base))] {
		return ports.Source
	}
	return ports.File
}

// excluded reports whether path matches a user-supplied exclude pattern.
func (c *Classifier) excluded(path, base string) bool {
	for _, pat := range c.exclude {
		target := base
		if strings.ContainsRune(pat, filepath.Separator) {
			target = path
		}
		if ok, err := filepath.Match(pat, target); err == nil && ok {
			return true
		}
	}
	return false
}

// junk reports whether a file name is an editor or build dropping.
func junk(base string) bool {
	if junkFiles[base] {
		return true
	}
	for suffix := range junkFiles {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}
	// Emacs lock/backup files.
	if strings.HasSuffix(base, "~") || strings.HasPrefix(base, ".#") {
		return true
	}
	return strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#")
}
