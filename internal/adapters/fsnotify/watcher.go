// Package fsnotify implements the ports.Watcher interface using
// github.com/fsnotify/fsnotify. Watches are per-directory and non-recursive:
// the owner subscribes exactly the directories it tracks and receives
// added/removed notifications for their direct children.
package fsnotify

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher implements ports.Watcher.
type Watcher struct {
	fw      *fsnotify.Watcher
	done    chan struct{}
	mu      sync.Mutex
	watched map[string]bool
	started bool
	stopped bool
}

// NewWatcher creates a file system watch subscription with no directories
// subscribed.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify: %w", err)
	}
	return &Watcher{
		fw:      fw,
		done:    make(chan struct{}),
		watched: make(map[string]bool),
	}, nil
}

// Start begins event delivery on the adapter's goroutine. Create events map
// to onAdded, Remove and Rename to onRemoved. Write and Chmod events carry no
// existence change and are dropped.
func (w *Watcher) Start(onAdded, onRemoved func(path string)) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return fmt.Errorf("watcher closed")
	}
	if w.started {
		return fmt.Errorf("watcher already started")
	}
	w.started = true

	go func() {
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				switch {
				case event.Has(fsnotify.Create):
					onAdded(event.Name)
				case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
					onRemoved(event.Name)
				}

			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// fsnotify recovers on its own; a missed event is healed
				// by the next full reload.

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// Watch subscribes a directory. Already-watched directories are a no-op.
func (w *Watcher) Watch(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return fmt.Errorf("watcher closed")
	}
	if w.watched[dir] {
		return nil
	}
	if err := w.fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.watched[dir] = true
	return nil
}

// Unwatch removes a directory subscription. Unknown directories are a no-op.
func (w *Watcher) Unwatch(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped || !w.watched[dir] {
		return nil
	}
	delete(w.watched, dir)
	// Remove fails when the kernel already dropped the watch (deleted dir);
	// the subscription is gone either way.
	_ = w.fw.Remove(dir)
	return nil
}

// Clear drops every subscription without stopping event delivery.
func (w *Watcher) Clear() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return nil
	}
	for dir := range w.watched {
		_ = w.fw.Remove(dir)
		delete(w.watched, dir)
	}
	return nil
}

// Watched reports the number of active subscriptions.
func (w *Watcher) Watched() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.watched)
}

// Close stops event delivery and releases all resources.
// Safe to call multiple times.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}
