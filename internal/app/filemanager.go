package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/corey/scout/internal/config"
	"github.com/corey/scout/internal/domain/fileindex"
	"github.com/corey/scout/internal/ports"
)

// ReloadMode selects how a reload runs.
type ReloadMode int

const (
	// Synchronous scans on the caller's goroutine and merges before returning.
	Synchronous ReloadMode = iota
	// Asynchronous returns immediately; a detached worker scans and the
	// merge arrives later through the task queue.
	Asynchronous
)

// State is the lifecycle phase of a FileManager.
type State int

const (
	// Uninitialized: created, no scan has completed. A warm-start snapshot
	// may already be answering queries.
	Uninitialized State = iota
	// Populating: a scan is in flight.
	Populating
	// Synchronized: watch-driven steady state.
	Synchronized
	// Destroyed: torn down. Terminal.
	Destroyed
)

// String returns a human-readable phase name.
func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Populating:
		return "populating"
	case Synchronized:
		return "synchronized"
	case Destroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Stats is a point-in-time summary of a FileManager.
type Stats struct {
	State       State
	Directories int
	Files       int
	Watched     int
	LastReload  time.Time
}

// FileManager owns the directory→filenames index for one project and keeps
// it correct against scan results and watch events. All mutation of the
// index and the watch set happens under one mutex: the task queue serializes
// scan completions, but watch events arrive on the adapter's goroutine and
// bypass it, so the queue alone is not enough.
type FileManager struct {
	mu sync.Mutex

	root      string
	projectID string
	cfg       *config.Config

	index      *fileindex.Index
	watcher    ports.Watcher
	queue      ports.TaskQueue
	store      ports.SnapshotStore // may be nil (no persistence)
	classifier ports.Classifier

	// newClassifier rebuilds the classifier from the exclude filters at
	// each reload, so config edits take effect on the next scan.
	newClassifier func(exclude []string) ports.Classifier

	handle     *Handle
	state      State
	lastReload time.Time
}

// NewFileManager wires a FileManager. root must be absolute. store may be
// nil. newClassifier must not be nil.
func NewFileManager(root, projectID string, cfg *config.Config, watcher ports.Watcher, queue ports.TaskQueue, store ports.SnapshotStore, newClassifier func(exclude []string) ports.Classifier) *FileManager {
	if cfg == nil {
		cfg = config.Default()
	}
	fm := &FileManager{
		root:          root,
		projectID:     projectID,
		cfg:           cfg,
		index:         fileindex.New(),
		watcher:       watcher,
		queue:         queue,
		store:         store,
		newClassifier: newClassifier,
		classifier:    newClassifier(cfg.ExcludeFilters),
	}
	fm.handle = newHandle(fm)
	return fm
}

// WarmStart restores a persisted snapshot for immediate queries. Only valid
// before the first reload; once a scan has run the snapshot is stale by
// definition and the call is ignored. No watches are registered: the
// directories may no longer exist, and the next merge rebuilds everything.
func (fm *FileManager) WarmStart(snap map[string][]string) {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	if fm.state != Uninitialized {
		return
	}
	fm.index.Restore(snap)
}

// Reload rebuilds the index from a full scan. The force-sync config
// overrides the requested mode for deterministic ordering under test.
func (fm *FileManager) Reload(mode ReloadMode) {
	fm.mu.Lock()
	if fm.state == Destroyed {
		fm.mu.Unlock()
		return
	}
	if fm.cfg.ForceSync {
		mode = Synchronous
	}
	if mode == Asynchronous {
		fm.scheduleReloadLocked()
		fm.mu.Unlock()
		return
	}

	fm.lastReload = time.Now()
	fm.state = Populating
	fm.classifier = fm.newClassifier(fm.cfg.ExcludeFilters)
	classify := fm.classifier
	root := fm.root
	fm.mu.Unlock()

	fm.merge(Scan(root, classify))
}

// scheduleReloadLocked spawns a one-shot scan worker. Must be called with
// fm.mu held. Always asynchronous, even under force-sync: callers here hold
// the lock (watch-event handlers), and an in-line merge would self-deadlock.
// The worker holds only the Handle; if the manager is destroyed before the
// scan completes, the posted merge is a no-op.
//
// Overlapping reloads are not sequenced: whichever merge runs last wins,
// even if its scan started earlier. See DESIGN.md.
func (fm *FileManager) scheduleReloadLocked() {
	fm.lastReload = time.Now()
	fm.state = Populating
	fm.classifier = fm.newClassifier(fm.cfg.ExcludeFilters)

	classify := fm.classifier
	root := fm.root
	h := fm.handle
	queue := fm.queue

	go func() {
		paths := Scan(root, classify)
		queue.Post(func() {
			if m, ok := h.Acquire(); ok {
				m.merge(paths)
			}
		})
	}()
}

// merge replaces the entire index and watch set from one complete scan
// result. Entries whose parent directory cannot be determined are logged and
// skipped; the merge itself never aborts.
func (fm *FileManager) merge(paths []string) {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	if fm.state == Destroyed {
		return
	}

	fm.index.Clear()
	_ = fm.watcher.Clear()

	for _, path := range paths {
		parent := parentDir(path)
		if parent == "" {
			fmt.Fprintf(os.Stderr, "[warn] no parent directory for %s, skipped\n", path)
			continue
		}
		fm.index.Insert(parent, filepath.Base(path))
		fm.watchLocked(parent)
	}

	fm.state = Synchronized
	fm.saveSnapshotLocked()
}

// OnFileAdded handles an added-path watch event. Registered as the watcher's
// onAdded callback; runs on the watcher's goroutine.
func (fm *FileManager) OnFileAdded(path string) {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	if fm.state == Destroyed || path == "" {
		return
	}

	switch fm.classifier.Classify(path) {
	case ports.Directory:
		// A flat add event cannot describe what the new directory holds;
		// watch it and rebuild the whole index.
		fm.watchLocked(path)
		fm.scheduleReloadLocked()
		return
	case ports.Filtered:
		return
	}

	parent := parentDir(path)
	if parent == "" {
		fmt.Fprintf(os.Stderr, "[warn] no parent directory for %s, reloading\n", path)
		fm.scheduleReloadLocked()
		return
	}
	fm.index.Insert(parent, filepath.Base(path))
	fm.watchLocked(parent)
}

// OnFileRemoved handles a removed-path watch event. Registered as the
// watcher's onRemoved callback; runs on the watcher's goroutine.
func (fm *FileManager) OnFileRemoved(path string) {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	if fm.state == Destroyed || path == "" {
		return
	}

	// A vanished tracked directory cannot be reconstructed locally.
	if fm.index.HasDir(path) {
		fm.scheduleReloadLocked()
		return
	}

	parent := parentDir(path)
	if parent == "" || !fm.index.HasDir(parent) {
		return
	}
	if emptied := fm.index.Remove(parent, filepath.Base(path)); emptied {
		// The set emptied and the key is gone; the watch goes with it.
		_ = fm.watcher.Unwatch(parent)
	}
}

// Contains reports whether path lies under the project root, either
// textually or after resolving symlinks. A cheap ownership check: true does
// not mean the file is indexed.
func (fm *FileManager) Contains(path string) bool {
	fm.mu.Lock()
	root := fm.root
	destroyed := fm.state == Destroyed
	fm.mu.Unlock()
	if destroyed || path == "" {
		return false
	}

	if underRoot(path, root) {
		return true
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil && resolved != path && underRoot(resolved, root) {
		return true
	}
	return false
}

// Lookup returns the sorted file names indexed under dir, or nil.
func (fm *FileManager) Lookup(dir string) []string {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	return fm.index.Names(dir)
}

// Snapshot returns a copy of the current dir→names mapping.
func (fm *FileManager) Snapshot() map[string][]string {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	return fm.index.Snapshot()
}

// Stats returns a point-in-time summary.
func (fm *FileManager) Stats() Stats {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	return Stats{
		State:       fm.state,
		Directories: fm.index.Len(),
		Files:       fm.index.FileCount(),
		Watched:     fm.watcher.Watched(),
		LastReload:  fm.lastReload,
	}
}

// Close tears the manager down: the handle is severed first so an in-flight
// scan completion becomes a no-op, then the index and watch set are dropped.
// Terminal; safe to call multiple times.
func (fm *FileManager) Close() {
	fm.handle.invalidate()

	fm.mu.Lock()
	defer fm.mu.Unlock()
	if fm.state == Destroyed {
		return
	}
	fm.state = Destroyed
	fm.index.Clear()
	_ = fm.watcher.Clear()
}

// watchLocked subscribes a directory, applying the exclusion policy: no
// watches at all when disabled by config, and never inside version-control
// metadata trees. Must be called with fm.mu held.
func (fm *FileManager) watchLocked(dir string) {
	if fm.cfg.DisableWatch || underVCSMetadata(dir) {
		return
	}
	if err := fm.watcher.Watch(dir); err != nil {
		fmt.Fprintf(os.Stderr, "[warn] watch %s: %v\n", dir, err)
	}
}

// parentDir returns the directory containing path, or "" when no parent can
// be determined (bare names, the filesystem root).
func parentDir(path string) string {
	dir := filepath.Dir(path)
	if dir == "." || dir == path {
		return ""
	}
	return dir
}

// underRoot reports whether path is textually the root or inside it.
func underRoot(path, root string) bool {
	if root == "" {
		return false
	}
	return path == root || strings.HasPrefix(path, root+string(filepath.Separator))
}

// vcsDirs are directory names whose subtrees are never watched.
var vcsDirs = map[string]bool{".git": true, ".svn": true, ".cvs": true}

// underVCSMetadata reports whether any element of dir is a VCS metadata
// directory.
func underVCSMetadata(dir string) bool {
	for _, part := range strings.Split(dir, string(filepath.Separator)) {
		if vcsDirs[part] {
			return true
		}
	}
	return false
}

// saveSnapshotLocked persists the current index, best effort. Must be called
// with fm.mu held.
func (fm *FileManager) saveSnapshotLocked() {
	if fm.store == nil {
		return
	}
	if err := fm.store.SaveSnapshot(fm.projectID, fm.index.Snapshot()); err != nil {
		fmt.Fprintf(os.Stderr, "[warn] save snapshot: %v\n", err)
	}
}
