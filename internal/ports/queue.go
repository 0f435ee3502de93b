package ports

// TaskQueue is a serialized single-consumer callback queue. Posted tasks run
// one at a time, in post order, on a goroutine owned by the queue. It is the
// safe way to deliver results from detached workers into owner-held state:
// at most one posted task executes at any moment.
type TaskQueue interface {
	// Post enqueues a task. Returns false if the queue is closed, in which
	// case the task will never run.
	Post(task func()) bool

	// Close stops the queue after the tasks already posted have run.
	// Safe to call multiple times.
	Close()
}
