package app

import "sync"

// Handle is a non-owning reference from a detached scan worker back to its
// FileManager. The worker never keeps the owner alive and never touches a
// destroyed one: once the owner invalidates the handle, Acquire fails and
// the worker's completion becomes a silent no-op.
type Handle struct {
	mu sync.Mutex
	fm *FileManager
}

func newHandle(fm *FileManager) *Handle {
	return &Handle{fm: fm}
}

// Acquire returns the owner if it is still alive.
func (h *Handle) Acquire() (*FileManager, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.fm == nil {
		return nil, false
	}
	return h.fm, true
}

// invalidate severs the reference. Called once, from the owner's Close.
func (h *Handle) invalidate() {
	h.mu.Lock()
	h.fm = nil
	h.mu.Unlock()
}
