package worker

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/KevinThierauf/TaskManager/pkg/scheduler"
)

// core is the state machine shared by the synchronous and asynchronous
// worker variants; Worker embeds it and adds only the start-mechanics
// difference between the two.
type core struct {
	id        uuid.UUID
	scheduler scheduler.Scheduler

	mu        sync.Mutex
	cond      *sync.Cond
	current   State
	requested State
}

func newCore(sched scheduler.Scheduler) *core {
	c := &core{
		id:        uuid.New(),
		scheduler: sched,
		current:   StateWait,
		requested: StateWork,
	}
	c.cond = sync.NewCond(&c.mu)
	return c
}

func (c *core) logger() *zap.SugaredLogger {
	return zap.S().Named("worker").With("worker_id", c.id)
}

// run is the main loop from doc.go, executed on whichever goroutine owns
// this worker (the caller's, for a synchronous worker; a dedicated one, for
// an asynchronous worker).
func (c *core) run() {
	c.mu.Lock()
outer:
	for {
		c.current = c.requested
		if c.requested == StateTerminate {
			break outer
		}

		for c.requested == StateWait {
			if c.scheduler.IsCompleted() {
				break outer
			}
			c.cond.Wait()
		}

		if c.requested != StateWork {
			// requested moved straight to TERMINATE while we were parked;
			// let the top of the loop handle it.
			continue outer
		}

		if c.scheduler.IsCompleted() {
			break outer
		}

		c.mu.Unlock()
		c.scheduler.StartScheduledWork(c.predicate)
		c.mu.Lock()
	}

	c.current = StateTerminate
	c.mu.Unlock()
	c.cond.Broadcast()
	c.logger().Debug("worker terminated")
}

// predicate is handed to the scheduler as the scheduler.Predicate argument
// to StartScheduledWork. It takes only c.mu, never the scheduler's lock,
// and releases it before returning, per the dual-lock discipline in doc.go.
func (c *core) predicate(workAvailable bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.requested == StateWork
}

// RequestState issues s as the worker's new requested state.
//
// TERMINATE is a one-way transition; requesting anything else afterward is
// a programming error and panics.
func (c *core) RequestState(s State) {
	c.mu.Lock()
	if c.requested == StateTerminate {
		c.mu.Unlock()
		if s != StateTerminate {
			panic("worker: cannot request a state once TERMINATE has been requested")
		}
		return
	}
	if c.requested == s {
		c.mu.Unlock()
		return
	}

	wasWait := c.requested == StateWait
	c.requested = s
	c.mu.Unlock()

	c.logger().Debugw("requested state changed", "requested", s)
	if wasWait {
		c.cond.Broadcast()
	}
	// Always poke the scheduler: the worker may be parked inside
	// StartScheduledWork's own wait-for-work step rather than the inner
	// WAIT loop above, and only the scheduler's own condition wakes that.
	c.scheduler.CheckWaitingPredicates()
}

// GetState returns the worker's current observed status.
func (c *core) GetState() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// GetRequestedState returns the worker's last requested status.
func (c *core) GetRequestedState() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.requested
}

// waitTerminated blocks until current reaches TERMINATE. It first waits for
// the scheduler itself to complete (so a WAITing worker observes completion
// and exits) before parking on the worker's own condition — waiting on the
// worker condition first would deadlock a worker currently parked inside
// the scheduler.
func (c *core) waitTerminated() {
	c.scheduler.WaitUntilCompleted()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cond.Broadcast()
	for c.current != StateTerminate {
		c.cond.Wait()
	}
}
