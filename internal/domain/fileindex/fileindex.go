// Package fileindex holds the directory→filenames mapping at the heart of
// scout. It is a pure data structure: no locking, no I/O. The app layer owns
// synchronization and decides when entries are added or dropped.
//
// Two invariants hold after every operation: no entry is keyed by an empty
// directory path, and no entry maps to an empty name set (a set that empties
// is removed together with its key).
package fileindex

import "sort"

// Index maps an absolute directory path to the set of bare file names that
// directly reside in it.
type Index struct {
	dirs map[string]map[string]struct{}
}

// New creates an empty index.
func New() *Index {
	return &Index{dirs: make(map[string]map[string]struct{})}
}

// Insert records name under dir. Entries with an empty directory or an empty
// name are rejected; the caller logs and skips those. Returns true if the
// entry was accepted (including when it was already present).
func (ix *Index) Insert(dir, name string) bool {
	if dir == "" || name == "" {
		return false
	}
	set, ok := ix.dirs[dir]
	if !ok {
		set = make(map[string]struct{})
		ix.dirs[dir] = set
	}
	set[name] = struct{}{}
	return true
}

// Remove drops name from dir's set. Returns emptied=true when the removal
// left the set empty, in which case the dir key is removed as well. Removing
// an unknown dir or name is a no-op.
func (ix *Index) Remove(dir, name string) (emptied bool) {
	set, ok := ix.dirs[dir]
	if !ok {
		return false
	}
	delete(set, name)
	if len(set) == 0 {
		delete(ix.dirs, dir)
		return true
	}
	return false
}

// RemoveDir drops a directory entry and all its names.
func (ix *Index) RemoveDir(dir string) {
	delete(ix.dirs, dir)
}

// Clear removes every entry.
func (ix *Index) Clear() {
	ix.dirs = make(map[string]map[string]struct{})
}

// HasDir reports whether dir is a tracked directory key.
func (ix *Index) HasDir(dir string) bool {
	_, ok := ix.dirs[dir]
	return ok
}

// Has reports whether name is recorded under dir.
func (ix *Index) Has(dir, name string) bool {
	_, ok := ix.dirs[dir][name]
	return ok
}

// Names returns the sorted file names recorded under dir, or nil.
func (ix *Index) Names(dir string) []string {
	set, ok := ix.dirs[dir]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dirs returns the sorted directory keys.
func (ix *Index) Dirs() []string {
	dirs := make([]string, 0, len(ix.dirs))
	for dir := range ix.dirs {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}

// Len returns the number of directory entries.
func (ix *Index) Len() int {
	return len(ix.dirs)
}

// FileCount returns the total number of recorded file names.
func (ix *Index) FileCount() int {
	n := 0
	for _, set := range ix.dirs {
		n += len(set)
	}
	return n
}

// Snapshot returns a serializable copy of the index as dir→sorted names.
func (ix *Index) Snapshot() map[string][]string {
	out := make(map[string][]string, len(ix.dirs))
	for dir := range ix.dirs {
		out[dir] = ix.Names(dir)
	}
	return out
}

// Restore replaces the index contents from a snapshot. Entries with an empty
// directory key or no names are dropped so the invariants hold even when the
// snapshot comes from an untrusted store.
func (ix *Index) Restore(snap map[string][]string) {
	ix.Clear()
	for dir, names := range snap {
		for _, name := range names {
			ix.Insert(dir, name)
		}
	}
}
