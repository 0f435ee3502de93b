package app

import "sync"

// TaskQueue implements ports.TaskQueue: a single consumer goroutine runs
// posted tasks one at a time, in post order. Background scan results are
// delivered through it so that completions never race each other.
type TaskQueue struct {
	mu     sync.Mutex
	tasks  chan func()
	done   chan struct{}
	closed bool
}

// queueDepth bounds pending tasks. Posting blocks once the queue is this far
// behind, which only happens if a callback wedges.
const queueDepth = 128

// NewTaskQueue creates a running queue.
func NewTaskQueue() *TaskQueue {
	q := &TaskQueue{
		tasks: make(chan func(), queueDepth),
		done:  make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *TaskQueue) run() {
	for task := range q.tasks {
		task()
	}
	close(q.done)
}

// Post enqueues a task. Returns false if the queue is closed, in which case
// the task will never run.
func (q *TaskQueue) Post(task func()) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.tasks <- task
	q.mu.Unlock()
	return true
}

// Close stops the queue after already-posted tasks have run. Blocks until
// the consumer drains. Must not be called from a posted task.
// Safe to call multiple times.
func (q *TaskQueue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		<-q.done
		return
	}
	q.closed = true
	close(q.tasks)
	q.mu.Unlock()
	<-q.done
}
