// Package scheduler implements the thread-safe work source Workers pull
// from: the Scheduler contract and its one concrete form in scope, the FIFO
// TaskQueue.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────────┐
//	│                           TaskQueue                                 │
//	│                                                                     │
//	│   AddTask(t) ──► pending FIFO ──► StartScheduledWork(predicate)     │
//	│                       ▲                     │                      │
//	│                       │                     ▼                      │
//	│                  Cancel() drains      pop front, working++,        │
//	│                  (each dropped        release lock, t.Launch(),    │
//	│                  task cancels         reacquire lock, working--    │
//	│                  itself)                                           │
//	│                                                                     │
//	│   open:      admission gate, latched false by Close()               │
//	│   working:   count of in-flight Launch() calls                      │
//	│   completed: latched true when !open && pending empty && working=0  │
//	└─────────────────────────────────────────────────────────────────────┘
//
// # The Predicate Protocol
//
// StartScheduledWork is the only way a Worker pulls work. It takes a
// Predicate — a function of "is work available right now?" to "should I
// keep going?" — invoked under the scheduler's own lock so a worker can
// atomically decide to take work, keep waiting, or leave without racing a
// concurrent AddTask or a concurrent state change on its own side:
//
//  1. under lock: workAvailable = len(pending) > 0
//  2. if completed: return
//  3. if !predicate(workAvailable): return
//  4. if workAvailable: pop, working++, unlock, t.Launch(), lock,
//     working--, re-evaluate completion, loop to 1
//  5. else: block on the condition until woken by AddTask, Close, Cancel,
//     completion, or CheckWaitingPredicates; loop to 1
//
// The predicate is called with this scheduler's lock held, so it must never
// take that lock itself; a worker's predicate takes only the worker's own
// lock, briefly, and releases it before returning (see pkg/worker).
//
// CheckWaitingPredicates wakes every worker parked in step 5 so it
// re-evaluates its predicate — used whenever state the predicate depends on
// changes out from under a waiting worker (typically: a worker's own
// requested state changed).
//
// # Completion Latch
//
// completed is evaluated after every Launch, Close, and Cancel, and once
// true never reverts: `completed == !open && pending empty && working == 0`.
// Reaching completed wakes every blocked StartScheduledWork call and every
// WaitUntilCompleted call.
package scheduler
