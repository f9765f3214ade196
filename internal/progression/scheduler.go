package progression

import "time"

// Scheduler runs deferred callbacks. The returned cancel function prevents
// f from running if it has not run yet.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (cancel func())
}

// TaskID identifies a task queued on a TaskQueue.
type TaskID uint64

// Task is a queued callback awaiting its delay.
type Task struct {
	ID    TaskID
	Delay time.Duration
}

// TaskQueue is a single-threaded Scheduler. It never starts timers itself:
// the owner drains newly scheduled tasks, waits out their delay on its own
// event loop, and fires them by ID. Cancelled tasks are dropped and firing
// them is a no-op.
type TaskQueue struct {
	next  TaskID
	tasks map[TaskID]func()
	fresh []Task
}

var _ Scheduler = (*TaskQueue)(nil)

// NewTaskQueue creates an empty queue.
func NewTaskQueue() *TaskQueue {
	return &TaskQueue{tasks: make(map[TaskID]func())}
}

// AfterFunc queues f to run after d.
func (q *TaskQueue) AfterFunc(d time.Duration, f func()) func() {
	q.next++
	id := q.next
	q.tasks[id] = f
	q.fresh = append(q.fresh, Task{ID: id, Delay: d})
	return func() { delete(q.tasks, id) }
}

// Drain returns the tasks scheduled since the last call.
func (q *TaskQueue) Drain() []Task {
	fresh := q.fresh
	q.fresh = nil
	return fresh
}

// Fire runs the task with the given ID if it is still pending.
func (q *TaskQueue) Fire(id TaskID) bool {
	f, ok := q.tasks[id]
	if !ok {
		return false
	}
	delete(q.tasks, id)
	f()
	return true
}

// Pending returns the number of tasks that have neither run nor been cancelled.
func (q *TaskQueue) Pending() int {
	return len(q.tasks)
}

// CancelAll drops every pending task.
func (q *TaskQueue) CancelAll() {
	clear(q.tasks)
	q.fresh = nil
}
