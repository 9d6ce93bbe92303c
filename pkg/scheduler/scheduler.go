package scheduler

import (
	"sync"

	"go.uber.org/zap"

	"github.com/KevinThierauf/TaskManager/internal/fifo"
	"github.com/KevinThierauf/TaskManager/pkg/task"
)

// TaskQueue is the FIFO scheduler: a thread-safe queue of task.Runnable
// consumed by one or more workers via StartScheduledWork.
type TaskQueue struct {
	mu        sync.Mutex
	cond      *sync.Cond
	pending   fifo.Queue[task.Runnable]
	open      bool
	working   int
	completed bool
}

// NewTaskQueue returns an open, empty TaskQueue.
func NewTaskQueue() *TaskQueue {
	q := &TaskQueue{open: true}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Submit packages fn as a Task, enqueues it, and returns a Future to its
// outcome. Submit is a package-level function (not a method) because Go
// generics cannot parameterize a method independently of its receiver.
func Submit[T any](q *TaskQueue, fn func() (T, error)) task.Future[T] {
	t, fut := task.Create(fn)
	q.AddTask(t)
	return fut
}

// AddTask enqueues a pre-constructed task.Runnable. If the queue is closed,
// t is cancelled instead of admitted — its Future observes Cancelled. A
// task submitted exactly as Close races either runs normally or observes
// Cancelled; it is never silently dropped.
func (q *TaskQueue) AddTask(t task.Runnable) {
	q.mu.Lock()
	if !q.open {
		q.mu.Unlock()
		t.Cancel()
		return
	}
	q.pending.Push(t)
	q.mu.Unlock()
	q.cond.Signal()
}

// Close latches the queue shut: no further AddTask call will admit work.
// Tasks already queued or executing are unaffected. Idempotent.
func (q *TaskQueue) Close() {
	q.mu.Lock()
	wasOpen := q.open
	q.open = false
	becameCompleted := q.evaluateCompletionLocked()
	q.mu.Unlock()
	q.cond.Broadcast()
	if wasOpen {
		zap.S().Named("scheduler").Debugw("task queue closed", "completed", becameCompleted)
	}
}

// Cancel drops every currently pending task — each publishes Cancelled
// through its own Cancel — without affecting the open flag or any task
// already executing.
func (q *TaskQueue) Cancel() {
	q.mu.Lock()
	var dropped []task.Runnable
	for q.pending.Len() > 0 {
		dropped = append(dropped, q.pending.Pop())
	}
	q.evaluateCompletionLocked()
	q.mu.Unlock()

	for _, t := range dropped {
		t.Cancel()
	}
	q.cond.Broadcast()

	if len(dropped) > 0 {
		zap.S().Named("scheduler").Infow("task queue cancelled pending work", "count", len(dropped))
	}
}

// IsOpen reports whether the queue currently admits new tasks.
func (q *TaskQueue) IsOpen() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.open
}

// IsClosed is the complement of IsOpen.
func (q *TaskQueue) IsClosed() bool {
	return !q.IsOpen()
}

// IsCompleted implements Scheduler.
func (q *TaskQueue) IsCompleted() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.completed
}

// WaitUntilCompleted implements Scheduler.
func (q *TaskQueue) WaitUntilCompleted() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for !q.completed {
		q.cond.Wait()
	}
}

// StartScheduledWork implements Scheduler; see doc.go for the protocol.
func (q *TaskQueue) StartScheduledWork(predicate Predicate) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for {
		if q.completed {
			return
		}
		workAvailable := q.pending.Len() > 0
		if !predicate(workAvailable) {
			return
		}
		if !workAvailable {
			q.cond.Wait()
			continue
		}

		t := q.pending.Pop()
		q.working++
		q.mu.Unlock()
		t.Launch()
		q.mu.Lock()
		q.working--

		if q.evaluateCompletionLocked() {
			q.cond.Broadcast()
		}
	}
}

// CheckWaitingPredicates implements Scheduler.
func (q *TaskQueue) CheckWaitingPredicates() {
	q.cond.Broadcast()
}

// evaluateCompletionLocked re-derives the latched completed flag. Callers
// must hold q.mu. Returns true the instant completed transitions to true.
func (q *TaskQueue) evaluateCompletionLocked() bool {
	if q.completed {
		return false
	}
	if !q.open && q.pending.Len() == 0 && q.working == 0 {
		q.completed = true
		return true
	}
	return false
}
