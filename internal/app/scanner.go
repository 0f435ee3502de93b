package app

import (
	"os"
	"path/filepath"

	"github.com/corey/scout/internal/ports"
)

// IgnoreMarker is the per-directory stop file. A directory containing it is
// indexed up to that point but never descended into.
const IgnoreMarker = ".scout-ignore"

// walkAction is the continuation a visit function returns for each entry.
type walkAction int

const (
	// walkContinue moves on to the next sibling.
	walkContinue walkAction = iota
	// walkRecurse descends into the visited directory.
	walkRecurse
	// walkSkip drops the entry and, for directories, its whole subtree.
	walkSkip
)

// walk visits every entry under dir in pre-order. Unreadable directories are
// skipped: a scan is best-effort and never fails as a whole.
func walk(dir string, visit func(path string) walkAction) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if visit(path) == walkRecurse {
			walk(path, visit)
		}
	}
}

// Scan traverses root and returns the absolute paths of every file the
// classifier accepts. The result is a complete snapshot for one merge; order
// is unspecified. Runs on the caller's goroutine; asynchronous reloads call
// it from a worker.
func Scan(root string, classify ports.Classifier) []string {
	var paths []string
	walk(root, func(path string) walkAction {
		switch classify.Classify(path) {
		case ports.Filtered:
			return walkSkip
		case ports.Directory:
			if _, err := os.Stat(filepath.Join(path, IgnoreMarker)); err == nil {
				return walkContinue
			}
			return walkRecurse
		default: // File, Source
			paths = append(paths, path)
			return walkContinue
		}
	})
	return paths
}
