package scheduler

// Predicate decides, while holding the Scheduler's own lock, whether a
// worker willing to execute tasks should proceed. workAvailable reports
// whether the Scheduler currently has a pending Task; the predicate's job
// is to additionally veto based on state the Scheduler knows nothing about
// (a worker's own requested run state) without racing a concurrent
// admission or a concurrent state change.
type Predicate func(workAvailable bool) bool

// Scheduler is the pull-side contract a Worker consumes. TaskQueue is the
// one concrete implementation in scope.
type Scheduler interface {
	// StartScheduledWork runs predicate under the scheduler's lock and, for
	// as long as predicate keeps returning true, pulls and executes tasks
	// (or waits for one to arrive). It returns once predicate returns false
	// or the scheduler reaches its completed state.
	StartScheduledWork(predicate Predicate)

	// CheckWaitingPredicates wakes every goroutine currently blocked inside
	// StartScheduledWork's wait-for-work step so each re-evaluates its
	// predicate. It does not affect a goroutine currently inside a task.
	CheckWaitingPredicates()

	// IsCompleted reports the latched completion flag.
	IsCompleted() bool

	// WaitUntilCompleted blocks until IsCompleted would return true.
	WaitUntilCompleted()
}
