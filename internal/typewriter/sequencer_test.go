package typewriter_test

import (
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sanketxmishra/folio/internal/sched"
	"github.com/sanketxmishra/folio/internal/typewriter"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

var _ = Describe("Sequencer", func() {
	var q *sched.Queue

	BeforeEach(func() {
		q = sched.NewQueue(epoch)
	})

	newSeq := func(roles ...string) *typewriter.Sequencer {
		s, err := typewriter.New(typewriter.Config{
			Roles: roles,
			Tick:  70 * time.Millisecond,
			Hold:  1200 * time.Millisecond,
		}, q)
		Expect(err).NotTo(HaveOccurred())
		return s
	}

	It("types, holds and advances through a short role list", func() {
		s := newSeq("A", "AI")
		s.Start()
		Expect(s.State()).To(Equal(typewriter.State{Index: 0, Role: "A", Text: "", Phase: typewriter.Typing}))

		q.Advance(70 * time.Millisecond)
		Expect(s.Text()).To(Equal("A"))
		Expect(s.Phase()).To(Equal(typewriter.Holding))

		q.Advance(1199 * time.Millisecond)
		Expect(s.Index()).To(Equal(0))
		Expect(s.Text()).To(Equal("A"))

		q.Advance(time.Millisecond)
		Expect(s.Index()).To(Equal(1))
		Expect(s.Text()).To(Equal(""))
		Expect(s.Phase()).To(Equal(typewriter.Typing))

		q.Advance(70 * time.Millisecond)
		Expect(s.Text()).To(Equal("A"))
		q.Advance(70 * time.Millisecond)
		Expect(s.Text()).To(Equal("AI"))
		Expect(s.Phase()).To(Equal(typewriter.Holding))
	})

	It("wraps from the last role back to the first", func() {
		s := newSeq("ab", "c", "def")
		s.Start()

		var seen []int
		last := -1
		for i := 0; i < 2000; i++ {
			q.Advance(10 * time.Millisecond)
			if s.Index() != last {
				seen = append(seen, s.Index())
				last = s.Index()
			}
		}
		Expect(len(seen)).To(BeNumerically(">", 6))
		for i, idx := range seen {
			Expect(idx).To(Equal(i % 3))
		}
	})

	It("always shows a growing prefix of the current role", func() {
		s := newSeq("Machine Learning Engineer", "Ingénieur IA", "数据科学家")
		s.Start()

		index, length := s.Index(), 0
		for i := 0; i < 5000; i++ {
			q.Advance(7 * time.Millisecond)
			Expect(strings.HasPrefix(s.Role(), s.Text())).To(BeTrue())

			n := len([]rune(s.Text()))
			if s.Index() != index {
				Expect(s.Index()).To(Equal((index + 1) % s.Len()))
				index = s.Index()
			} else {
				Expect(n).To(BeNumerically(">=", length))
			}
			length = n
		}
	})

	It("keeps exactly one timer armed while running", func() {
		s := newSeq("xyz", "w")
		s.Start()
		for i := 0; i < 500; i++ {
			Expect(q.Pending()).To(Equal(1))
			q.Advance(13 * time.Millisecond)
		}
	})

	It("holds immediately on an empty role", func() {
		s := newSeq("", "b")
		s.Start()
		Expect(s.Phase()).To(Equal(typewriter.Holding))
		q.Advance(1200 * time.Millisecond)
		Expect(s.Index()).To(Equal(1))
	})

	Describe("Stop", func() {
		It("cancels both timers and freezes the state", func() {
			s := newSeq("hello", "world")
			h := s.Start()
			q.Advance(140 * time.Millisecond)
			Expect(s.Text()).To(Equal("he"))

			before := q.Stats()
			h.Stop()
			h.Stop()

			Expect(s.Running()).To(BeFalse())
			Expect(q.Pending()).To(BeZero())
			Expect(q.Stats().Cancelled).To(Equal(before.Cancelled + 1))

			q.Advance(time.Minute)
			Expect(q.Stats().Fired).To(Equal(before.Fired))
			Expect(s.State()).To(Equal(typewriter.State{Index: 0, Role: "hello", Text: "he", Phase: typewriter.Typing}))
		})

		It("cancels a pending hold", func() {
			s := newSeq("a", "b")
			h := s.Start()
			q.Advance(70 * time.Millisecond)
			Expect(s.Phase()).To(Equal(typewriter.Holding))

			h.Stop()
			q.Advance(time.Minute)
			Expect(s.Index()).To(Equal(0))
			Expect(q.Pending()).To(BeZero())
		})
	})

	It("returns the running handle from a second Start", func() {
		s := newSeq("a")
		h := s.Start()
		Expect(s.Start()).To(BeIdenticalTo(h))
		Expect(q.Pending()).To(Equal(1))
	})

	Describe("New", func() {
		It("rejects an empty role list", func() {
			_, err := typewriter.New(typewriter.Config{Tick: time.Millisecond, Hold: time.Millisecond}, q)
			Expect(err).To(MatchError(typewriter.ErrNoRoles))
		})

		It("rejects non-positive durations", func() {
			_, err := typewriter.New(typewriter.Config{Roles: []string{"a"}, Hold: time.Second}, q)
			Expect(err).To(MatchError(typewriter.ErrInvalidConfig))
		})
	})

	It("names its phases", func() {
		Expect(typewriter.Typing.String()).To(Equal("typing"))
		Expect(typewriter.Holding.String()).To(Equal("holding"))
	})
})
