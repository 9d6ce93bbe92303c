package worker_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/KevinThierauf/TaskManager/pkg/scheduler"
	"github.com/KevinThierauf/TaskManager/pkg/worker"
)

func TestWorker(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "worker Suite")
}

var _ = Describe("Worker", func() {
	Describe("a single async worker draining three tasks", func() {
		It("runs all three to Value and reaches completion", func() {
			q := scheduler.NewTaskQueue()
			w := worker.Async(q, nil)

			f1 := scheduler.Submit(q, func() (int, error) { return 1, nil })
			f2 := scheduler.Submit(q, func() (int, error) { return 2, nil })
			f3 := scheduler.Submit(q, func() (int, error) { return 3, nil })

			q.Close()
			w.Wait()

			v1, _ := f1.Value()
			v2, _ := f2.Value()
			v3, _ := f3.Value()
			Expect([]int{v1, v2, v3}).To(Equal([]int{1, 2, 3}))
			Expect(q.IsCompleted()).To(BeTrue())
		})
	})

	Describe("state machine", func() {
		It("starts in WORK, parks on WAIT, and resumes on WORK", func() {
			q := scheduler.NewTaskQueue()
			w := worker.Async(q, nil)

			w.RequestState(worker.StateWait)
			Eventually(w.GetState, time.Second).Should(Equal(worker.StateWait))

			executed := make(chan struct{}, 1)
			scheduler.Submit(q, func() (int, error) {
				executed <- struct{}{}
				return 0, nil
			})

			Consistently(executed, 200*time.Millisecond).ShouldNot(Receive())

			w.RequestState(worker.StateWork)
			Eventually(executed, time.Second).Should(Receive())

			q.Close()
			w.Wait()
			Expect(w.GetState()).To(Equal(worker.StateTerminate))
		})

		It("request_state(current) is a no-op", func() {
			q := scheduler.NewTaskQueue()
			w := worker.Async(q, nil)
			Eventually(w.GetRequestedState, time.Second).Should(Equal(worker.StateWork))

			w.RequestState(worker.StateWork)
			Expect(w.GetRequestedState()).To(Equal(worker.StateWork))

			q.Close()
			w.Wait()
		})

		It("rejects leaving TERMINATE once requested", func() {
			q := scheduler.NewTaskQueue()
			w := worker.Async(q, nil)
			q.Close()
			w.Wait()
			w.RequestState(worker.StateTerminate)

			Expect(func() { w.RequestState(worker.StateWork) }).To(Panic())
		})

		It("Wait returns promptly once already terminated", func() {
			q := scheduler.NewTaskQueue()
			w := worker.Async(q, nil)
			q.Close()
			w.Wait()

			done := make(chan struct{})
			go func() {
				w.Wait()
				close(done)
			}()
			Eventually(done, time.Second).Should(BeClosed())
		})
	})

	Describe("sync worker", func() {
		It("borrows the calling goroutine and returns once terminated", func() {
			q := scheduler.NewTaskQueue()
			fut := scheduler.Submit(q, func() (int, error) { return 5, nil })
			q.Close()

			w := worker.Sync(q, nil)

			Expect(w.GetState()).To(Equal(worker.StateTerminate))
			v, ok := fut.Value()
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal(5))
		})
	})
})
