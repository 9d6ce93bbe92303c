package task

import (
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
)

// ErrCancelled is the dedicated cancellation signal a callable raises to
// voluntarily abort: return it (or wrap it, matched with errors.Is) instead
// of a normal failure and Launch publishes Cancelled rather than Failed.
var ErrCancelled = errors.New("task: cancelled")

// Runnable is the capability a Scheduler needs to drive a Task without
// knowing its result type T. Every *Task[T] satisfies it.
type Runnable interface {
	Launch()
	Cancel()
}

// Task is a single-use package of a callable plus its producer-side
// outcome slot. Ownership is by convention, not compiler-enforced: whoever
// currently holds a *Task[T] is responsible for calling Launch or letting it
// be collected (in which case the finalizer cancels it).
type Task[T any] struct {
	fn      func() (T, error)
	future  Future[T]
	started atomic.Bool
	ended   atomic.Bool
}

// Create packages fn with a fresh outcome slot and returns the owned Task
// alongside a Future handle to its eventual outcome. Bound arguments are
// expected to already be captured in fn's closure.
func Create[T any](fn func() (T, error)) (*Task[T], Future[T]) {
	fut := Future[T]{s: newSlot[T]()}
	t := &Task[T]{fn: fn, future: fut}
	runtime.SetFinalizer(t, (*Task[T]).finalize)
	return t, fut
}

// Future returns the Future handle to t's outcome. Safe to call any number
// of times; every returned value observes the same outcome.
func (t *Task[T]) Future() Future[T] {
	return t.future
}

// Launch executes the callable and publishes its outcome. A no-op if the
// Task was already launched or cancelled.
func (t *Task[T]) Launch() {
	if !t.started.CompareAndSwap(false, true) {
		return
	}
	defer runtime.SetFinalizer(t, nil)
	defer t.ended.Store(true)

	v, err := t.invoke()
	switch {
	case errors.Is(err, ErrCancelled):
		t.future.s.publish(Outcome[T]{Kind: KindCancelled})
	case err != nil:
		t.future.s.publish(Outcome[T]{Kind: KindFailed, Err: err})
	default:
		t.future.s.publish(Outcome[T]{Kind: KindValue, Value: v})
	}
}

// invoke recovers a panicking callable into a Failed outcome rather than
// crashing the caller.
func (t *Task[T]) invoke() (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	return t.fn()
}

// Cancel publishes Cancelled if the Task has not yet started; a no-op
// otherwise. Safe to call concurrently with Launch and with any Future
// accessor.
func (t *Task[T]) Cancel() {
	if !t.started.CompareAndSwap(false, true) {
		return
	}
	runtime.SetFinalizer(t, nil)
	t.future.s.publish(Outcome[T]{Kind: KindCancelled})
}

// finalize is the GC backstop for "destroying a Task cancels it": it runs
// only if neither Launch nor Cancel cleared the finalizer first, i.e. the
// Task was dropped while still unlaunched.
func (t *Task[T]) finalize() {
	if t.started.Load() {
		if !t.ended.Load() {
			// Unreachable in practice: a Task is reachable for as long as
			// a goroutine is executing Launch on it, so the GC cannot
			// collect it mid-flight. Kept as a contract assertion mirroring
			// the original design's debug-build check.
			panic("task: destroyed after launch before completion")
		}
		return
	}
	t.Cancel()
}
