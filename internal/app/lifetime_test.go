package app

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/scout/internal/adapters/filter"
	"github.com/corey/scout/internal/ports"
)

// gatedClassifier blocks the first Classify call until released, so a test
// can hold a scan in flight at a known point.
type gatedClassifier struct {
	inner   ports.Classifier
	entered chan struct{}
	gate    chan struct{}
	once    sync.Once
}

func (g *gatedClassifier) Classify(path string) ports.Class {
	g.once.Do(func() { close(g.entered) })
	<-g.gate
	return g.inner.Classify(path)
}

// countingQueue wraps a TaskQueue and counts executed tasks.
type countingQueue struct {
	inner    *TaskQueue
	mu       sync.Mutex
	executed int
}

func (q *countingQueue) Post(task func()) bool {
	return q.inner.Post(func() {
		task()
		q.mu.Lock()
		q.executed++
		q.mu.Unlock()
	})
}

func (q *countingQueue) Close() { q.inner.Close() }

func (q *countingQueue) count() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.executed
}

func TestClose_MidScanCompletionIsNoop(t *testing.T) {
	root, err := filepath.EvalSymlinks(writeTree(t))
	require.NoError(t, err)

	g := &gatedClassifier{
		inner:   filter.New(nil),
		entered: make(chan struct{}),
		gate:    make(chan struct{}),
	}
	w := newFakeWatcher()
	q := &countingQueue{inner: NewTaskQueue()}
	t.Cleanup(q.inner.Close)

	fm := NewFileManager(root, "test", nil, w, q, nil,
		func([]string) ports.Classifier { return g })

	fm.Reload(Asynchronous)

	// Wait until the worker is inside the scan, then destroy the owner.
	select {
	case <-g.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("scan never started")
	}
	fm.Close()
	close(g.gate)

	// The completion callback must run (and be a no-op).
	require.Eventually(t, func() bool { return q.count() >= 1 },
		2*time.Second, 10*time.Millisecond, "scan completion never delivered")

	assert.Equal(t, Destroyed, fm.Stats().State)
	assert.Empty(t, fm.Snapshot(), "destroyed manager must not be mutated")
	assert.Equal(t, 0, w.Watched())
}

func TestHandle_AcquireFailsAfterInvalidate(t *testing.T) {
	fm, _, _ := testManager(t, nil)

	got, ok := fm.handle.Acquire()
	require.True(t, ok)
	assert.Same(t, fm, got)

	fm.Close()

	_, ok = fm.handle.Acquire()
	assert.False(t, ok)
}

func TestClose_Idempotent(t *testing.T) {
	fm, _, _ := testManager(t, nil)
	fm.Reload(Synchronous)

	fm.Close()
	fm.Close()

	assert.Equal(t, Destroyed, fm.Stats().State)

	// Events and reloads after teardown are silently dropped.
	fm.OnFileAdded("/anything")
	fm.OnFileRemoved("/anything")
	fm.Reload(Synchronous)
	assert.Empty(t, fm.Snapshot())
}
