// Package app wires together all adapters and the file index core. It
// provides lifecycle management for the scout daemon: create, start, stop.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/corey/scout/internal/adapters/bbolt"
	"github.com/corey/scout/internal/adapters/filter"
	fsw "github.com/corey/scout/internal/adapters/fsnotify"
	"github.com/corey/scout/internal/config"
	"github.com/corey/scout/internal/ports"
)

// App is the top-level container wiring all components together.
type App struct {
	ProjectRoot string
	ProjectID   string

	Store   *bbolt.Store
	Watcher *fsw.Watcher
	Queue   *TaskQueue
	Files   *FileManager

	runtime *config.Config
}

// Config holds initialization parameters for the App.
type Config struct {
	ProjectRoot string
	ProjectID   string         // default: base name of the root
	Runtime     *config.Config // default: loaded from .scout/config.yml
}

// New creates an App with all dependencies wired. Does not start services.
func New(cfg Config) (*App, error) {
	if cfg.ProjectRoot == "" {
		return nil, fmt.Errorf("project root required")
	}
	root, err := filepath.Abs(cfg.ProjectRoot)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}
	if cfg.ProjectID == "" {
		cfg.ProjectID = filepath.Base(root)
	}

	rc := cfg.Runtime
	if rc == nil {
		rc, err = config.Load(root)
		if err != nil {
			return nil, err
		}
	}

	dbPath := rc.DatabasePath(root)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create %s: %w", filepath.Dir(dbPath), err)
	}
	store, err := bbolt.NewStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	watcher, err := fsw.NewWatcher()
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	queue := NewTaskQueue()
	files := NewFileManager(root, cfg.ProjectID, rc, watcher, queue, store,
		func(exclude []string) ports.Classifier { return filter.New(exclude) })

	return &App{
		ProjectRoot: root,
		ProjectID:   cfg.ProjectID,
		Store:       store,
		Watcher:     watcher,
		Queue:       queue,
		Files:       files,
		runtime:     rc,
	}, nil
}

// Start restores the last snapshot for immediate queries, begins watch event
// delivery, and kicks off the initial reload. A watcher failure is non-fatal:
// the daemon degrades to scan-only freshness.
func (a *App) Start() error {
	if snap, err := a.Store.LoadSnapshot(a.ProjectID); err == nil && snap != nil {
		a.Files.WarmStart(snap)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "[warn] load snapshot: %v\n", err)
	}

	if err := a.Watcher.Start(a.Files.OnFileAdded, a.Files.OnFileRemoved); err != nil {
		fmt.Fprintf(os.Stderr, "[warn] file watcher unavailable: %v\n", err)
	}

	a.Files.Reload(Asynchronous)
	return nil
}

// Stop gracefully shuts everything down. The manager is closed first so an
// in-flight scan cannot mutate anything; the queue is then drained before
// the store goes away.
func (a *App) Stop() error {
	a.Files.Close()
	a.Queue.Close()
	a.Watcher.Close()
	return a.Store.Close()
}
