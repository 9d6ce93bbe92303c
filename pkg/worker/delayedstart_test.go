package worker_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/KevinThierauf/TaskManager/pkg/scheduler"
	"github.com/KevinThierauf/TaskManager/pkg/worker"
)

var _ = Describe("DelayedStart", func() {
	It("defers the first worker, then starts it on handoff to a second", func() {
		q := scheduler.NewTaskQueue()
		d := worker.NewDelayedStart()

		w1 := worker.Async(q, d)
		Expect(d.IsEmpty()).To(BeFalse())
		Expect(w1.GetState()).To(Equal(worker.StateWait)) // not started yet

		w2 := worker.Async(q, d)
		Expect(d.IsEmpty()).To(BeFalse())
		Eventually(w1.GetState, time.Second).Should(Equal(worker.StateWork))

		d.Close()
		Eventually(w2.GetState, time.Second).Should(Equal(worker.StateWork))
		Expect(d.IsEmpty()).To(BeTrue())

		q.Close()
		w1.Wait()
		w2.Wait()
	})

	It("Start on an empty slot is a no-op", func() {
		d := worker.NewDelayedStart()
		Expect(func() { d.Start() }).NotTo(Panic())
		Expect(d.IsEmpty()).To(BeTrue())
	})

	It("Close starts the held worker", func() {
		q := scheduler.NewTaskQueue()
		d := worker.NewDelayedStart()
		w := worker.Async(q, d)
		Expect(d.IsEmpty()).To(BeFalse())

		d.Close()
		Eventually(w.GetState, time.Second).Should(Equal(worker.StateWork))

		q.Close()
		w.Wait()
	})
})
