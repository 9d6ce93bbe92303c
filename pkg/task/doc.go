// Package task implements the movable, single-use unit of deferred work at
// the bottom of the TaskManager concurrency substrate: a Task pairs a
// callable with its producer-side outcome slot, and a Future is the
// cloneable, multi-observer handle submitters use to read that outcome back.
//
// # Outcome Taxonomy
//
//	┌─────────────────────────────────────────────────────────────────────┐
//	│                          Task.Launch()                              │
//	│                                                                     │
//	│   callable returns (v, nil)        ───────────►  Value(v)           │
//	│   callable returns (_, ErrCancelled) ─────────►  Cancelled          │
//	│   callable returns (_, err)         ───────────►  Failed(err)       │
//	│   callable panics                   ───────────►  Failed(recovered) │
//	└─────────────────────────────────────────────────────────────────────┘
//
// Task.Cancel() (called directly, or by the finalizer when a Task is
// dropped before Launch) publishes Cancelled without ever invoking the
// callable.
//
// # Future Sharing
//
// A Future[T] wraps a pointer to a one-shot slot. Cloning a Future (plain
// struct copy — it's a small value type) shares the slot rather than
// duplicating it: every clone observes the exact same outcome once the
// producer (the owning Task) publishes it. The slot is backed by a closed
// channel rather than a polled flag, so Wait, blocking accessors, and
// concurrent observers all park on the same receive.
//
// # Type Erasure
//
// Future[T].Untyped() returns an Untyped view that exposes Value() as `any`
// (the Void{} unit marker for no-result tasks) while preserving Success,
// Cancellation, Failure, and FailureMessage — for callers that only know
// about a Task after it has already been type-erased by whatever submitted
// it (e.g. a scheduler.TaskQueue, which stores heterogeneous task.Runnable
// values and never sees T).
//
// # Drop Cancels
//
// Task.Create registers a runtime.SetFinalizer that cancels the Task if it
// is garbage collected before Launch or Cancel ran. This is the Go
// replacement for the original design's destructor-cancels-unlaunched-work
// guarantee; because Cancel is cheap and never blocks, running it from the
// finalizer goroutine is safe (contrast pkg/worker, where starting a worker
// can block or spawn a goroutine and is therefore never finalizer-driven).
package task
