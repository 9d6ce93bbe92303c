package worker

import (
	"sync"

	"github.com/KevinThierauf/TaskManager/pkg/scheduler"
)

// Worker drives a Scheduler under the WAIT/WORK/TERMINATE state machine
// documented in doc.go. Obtain one with Sync or Async.
type Worker struct {
	*core
	async bool
	wg    sync.WaitGroup
}

// Sync returns a worker whose main loop runs on the calling goroutine: the
// call to Sync itself does not return until the worker terminates, unless
// delay is non-nil, in which case delay takes custody and whichever
// goroutine eventually starts it is the one that gets borrowed.
func Sync(sched scheduler.Scheduler, delay *DelayedStart) *Worker {
	return newWorker(sched, delay, false)
}

// Async returns a worker whose main loop runs on a dedicated goroutine; the
// call returns immediately once that goroutine is launched (or once delay
// takes custody, if delay is non-nil).
func Async(sched scheduler.Scheduler, delay *DelayedStart) *Worker {
	return newWorker(sched, delay, true)
}

func newWorker(sched scheduler.Scheduler, delay *DelayedStart, async bool) *Worker {
	w := &Worker{core: newCore(sched), async: async}
	if delay != nil {
		delay.accept(w)
	} else {
		w.startNow()
	}
	return w
}

// startNow is the starter capability DelayedStart uses. For an async
// worker it spawns the dedicated goroutine and returns immediately; for a
// sync worker it runs the main loop inline and only returns once the
// worker has terminated.
func (w *Worker) startNow() {
	if w.async {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			w.run()
		}()
		return
	}
	w.run()
}

// Wait blocks until the worker reaches TERMINATE and then, if it is
// asynchronous, joins its dedicated goroutine.
func (w *Worker) Wait() {
	w.waitTerminated()
	if w.async {
		w.wg.Wait()
	}
}
