package sched_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sanketxmishra/folio/internal/sched"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

var _ = Describe("Queue", func() {
	var q *sched.Queue

	BeforeEach(func() {
		q = sched.NewQueue(epoch)
	})

	Describe("After", func() {
		It("fires once when its deadline passes", func() {
			calls := 0
			q.After(100*time.Millisecond, func() { calls++ })

			Expect(q.Advance(99 * time.Millisecond)).To(Equal(0))
			Expect(calls).To(Equal(0))

			Expect(q.Advance(time.Millisecond)).To(Equal(1))
			Expect(calls).To(Equal(1))

			q.Advance(time.Second)
			Expect(calls).To(Equal(1))
			Expect(q.Pending()).To(BeZero())
		})

		It("sets the clock to the deadline while the callback runs", func() {
			var seen time.Time
			q.After(30*time.Millisecond, func() { seen = q.Now() })
			q.Advance(time.Second)
			Expect(seen).To(Equal(epoch.Add(30 * time.Millisecond)))
			Expect(q.Now()).To(Equal(epoch.Add(time.Second)))
		})

		It("fires timers in deadline order, ties in registration order", func() {
			var order []string
			q.After(20*time.Millisecond, func() { order = append(order, "b") })
			q.After(10*time.Millisecond, func() { order = append(order, "a") })
			q.After(20*time.Millisecond, func() { order = append(order, "c") })
			q.Advance(time.Second)
			Expect(order).To(Equal([]string{"a", "b", "c"}))
		})
	})

	Describe("Every", func() {
		It("repeats until cancelled", func() {
			calls := 0
			t := q.Every(70*time.Millisecond, func() { calls++ })

			q.Advance(210 * time.Millisecond)
			Expect(calls).To(Equal(3))

			Expect(t.Cancel()).To(BeTrue())
			q.Advance(time.Second)
			Expect(calls).To(Equal(3))
			Expect(t.Pending()).To(BeFalse())
		})

		It("can cancel itself from inside its callback", func() {
			calls := 0
			var t *sched.Timer
			t = q.Every(10*time.Millisecond, func() {
				calls++
				if calls == 2 {
					t.Cancel()
				}
			})
			q.Advance(time.Second)
			Expect(calls).To(Equal(2))
			Expect(q.Pending()).To(BeZero())
		})

		It("rejects a non-positive interval", func() {
			Expect(func() { q.Every(0, func() {}) }).To(Panic())
		})
	})

	Describe("Frame", func() {
		It("runs only on RunFrame and defers re-requests to the next frame", func() {
			frames := 0
			var draw func()
			draw = func() {
				frames++
				q.Frame(draw)
			}
			q.Frame(draw)

			q.Advance(time.Second)
			Expect(frames).To(BeZero())

			Expect(q.RunFrame()).To(Equal(1))
			Expect(q.RunFrame()).To(Equal(1))
			Expect(frames).To(Equal(2))
			Expect(q.Pending()).To(Equal(1))
		})

		It("skips a frame cancelled earlier in the same batch", func() {
			ran := false
			var second *sched.Timer
			q.Frame(func() { second.Cancel() })
			second = q.Frame(func() { ran = true })

			Expect(q.RunFrame()).To(Equal(1))
			Expect(ran).To(BeFalse())
		})
	})

	Describe("Cancel", func() {
		It("reports false for timers that already fired or were cancelled", func() {
			t := q.After(time.Millisecond, func() {})
			q.Advance(time.Millisecond)
			Expect(t.Cancel()).To(BeFalse())

			u := q.After(time.Second, func() {})
			Expect(u.Cancel()).To(BeTrue())
			Expect(u.Cancel()).To(BeFalse())
		})

		It("is safe on a nil timer", func() {
			var t *sched.Timer
			Expect(t.Cancel()).To(BeFalse())
			Expect(t.Pending()).To(BeFalse())
		})

		It("counts cancellations in the stats", func() {
			a := q.After(time.Second, func() {})
			b := q.Every(time.Second, func() {})
			c := q.Frame(func() {})
			a.Cancel()
			b.Cancel()
			c.Cancel()

			st := q.Stats()
			Expect(st.Scheduled).To(Equal(uint64(3)))
			Expect(st.Cancelled).To(Equal(uint64(3)))
			Expect(q.Pending()).To(BeZero())
		})
	})

	Describe("Pump", func() {
		It("advances timers before running the frame", func() {
			var order []string
			q.After(5*time.Millisecond, func() { order = append(order, "timer") })
			q.Frame(func() { order = append(order, "frame") })

			Expect(q.Pump(epoch.Add(16 * time.Millisecond))).To(Equal(2))
			Expect(order).To(Equal([]string{"timer", "frame"}))
		})

		It("never moves the clock backwards", func() {
			q.Advance(time.Second)
			q.Pump(epoch)
			Expect(q.Now()).To(Equal(epoch.Add(time.Second)))
		})
	})
})

var _ = Describe("Handle", func() {
	It("stops at most once", func() {
		stops := 0
		h := sched.NewHandle(func() { stops++ })
		h.Stop()
		h.Stop()
		Expect(stops).To(Equal(1))
	})

	It("StopAll skips nil handles", func() {
		stops := 0
		sched.StopAll(nil, sched.NewHandle(func() { stops++ }), sched.Noop)
		Expect(stops).To(Equal(1))
	})
})

var _ = Describe("Loop", func() {
	It("pumps frames and runs posted work on its goroutine", func() {
		q := sched.NewQueue(time.Now())
		loop := sched.NewLoop(q, 120)

		frames := 0
		var draw func()
		draw = func() {
			frames++
			q.Frame(draw)
		}
		q.Frame(draw)

		posted := false
		ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
		defer cancel()
		Expect(loop.Post(ctx, func() { posted = true })).To(Succeed())

		err := loop.Run(ctx)
		Expect(err).To(MatchError(context.DeadlineExceeded))
		Expect(posted).To(BeTrue())
		Expect(frames).To(BeNumerically(">", 0))
		Expect(q.Now().After(time.Now().Add(-time.Minute))).To(BeTrue())
	})
})
