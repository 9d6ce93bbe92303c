// Package worker implements the Scheduler-consuming half of the TaskManager
// concurrency substrate: a controlled WAIT/WORK/TERMINATE state machine
// shared by a synchronous worker (borrows the caller's goroutine) and an
// asynchronous worker (owns a private goroutine), plus DelayedStart, a
// single-slot coordinator that defers when a worker actually starts.
//
// # State Machine
//
//	┌──────────┐  requested=WORK (initial / RequestState)  ┌──────────┐
//	│   WAIT   │ ───────────────────────────────────────►  │   WORK   │
//	│          │ ◄───────────────────────────────────────  │          │
//	└────┬─────┘        RequestState(WAIT)                 └────┬─────┘
//	     │                                                       │
//	     │  RequestState(TERMINATE), or                          │
//	     │  scheduler.IsCompleted() observed while WAITing        │
//	     ▼                                                       ▼
//	              ┌────────────────────────────────┐
//	              │           TERMINATE             │ (terminal — reached
//	              └────────────────────────────────┘  exactly once)
//
// current is the observed status; requested is the command a caller sets
// with RequestState. Once requested reaches TERMINATE it can never change
// again, and current reaches TERMINATE exactly once, only as the run loop's
// final transition.
//
// # Main Loop
//
// Each worker runs (on its own goroutine if async, on the caller's if sync):
//
//	loop {
//	    current = requested
//	    if requested == TERMINATE: break
//	    while requested == WAIT {
//	        if scheduler.IsCompleted(): break loop
//	        release worker lock, block on worker condition, reacquire
//	    }
//	    if requested == WORK {
//	        if scheduler.IsCompleted(): break loop
//	        release worker lock
//	        scheduler.StartScheduledWork(predicate)  // predicate: lock,
//	                                                  // read requested==WORK,
//	                                                  // unlock
//	        reacquire worker lock
//	    }
//	}
//	current = TERMINATE; broadcast worker condition
//
// # Dual-Lock Discipline
//
// The main loop releases the worker's own lock before calling
// StartScheduledWork, and never holds it across a task. The predicate it
// hands to the scheduler runs with the scheduler's lock held and takes the
// worker's lock on top of it, for exactly as long as it takes to read
// requested. The main loop does take the scheduler's lock (via IsCompleted)
// while holding its own; both of these nestings happen only on the worker's
// own goroutine, so they never run concurrently with each other.
//
// # RequestState Wake Fan-Out
//
// Transitioning away from WAIT wakes the worker's own condition (unparking
// the inner WAIT loop above). Every accepted transition — regardless of
// origin state — also calls scheduler.CheckWaitingPredicates(), because a
// worker can equally be parked inside the scheduler's own "no work
// available" wait (StartScheduledWork step 5) when its requested state
// changes, and that wait is only woken by the scheduler's own condition.
//
// # DelayedStart
//
// DelayedStart holds at most one not-yet-started worker. Handing it a new
// worker (Sync or Async with a non-nil delay) starts whatever worker it was
// already holding (if any) and takes custody of the new one; Start starts
// the held worker and empties the slot; Close does the same, standing in
// for the deterministic destructor the original design relies on (see
// DESIGN.md).
package worker
