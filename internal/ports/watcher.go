package ports

// Watcher is a per-directory file system watch subscription. Unlike a
// recursive watcher it only reports events for directories explicitly added
// with Watch; the owner keeps the watch set in lock-step with its index.
//
// Callbacks may be invoked from the adapter's own goroutine at any time
// between Start and Close. The owner must do its own locking.
type Watcher interface {
	// Start begins event delivery. onAdded is invoked with the absolute path
	// of each file or directory created under a watched directory, onRemoved
	// with each one deleted or renamed away. Start may be called once.
	Start(onAdded, onRemoved func(path string)) error

	// Watch subscribes a directory. Watching an already-watched directory
	// is a no-op. Returns an error if the directory cannot be watched.
	Watch(dir string) error

	// Unwatch removes a directory subscription. Unwatching a directory that
	// is not watched is a no-op.
	Unwatch(dir string) error

	// Clear drops every subscription without stopping event delivery.
	Clear() error

	// Watched reports the number of active subscriptions.
	Watched() int

	// Close stops event delivery and releases all resources. After Close
	// returns no further callbacks fire. Safe to call multiple times.
	Close() error
}
