package sched

import (
	"container/heap"
	"sync"
	"time"
)

// Scheduler registers callbacks against a clock.
type Scheduler interface {
	Now() time.Time
	After(d time.Duration, fn func()) *Timer
	Every(d time.Duration, fn func()) *Timer
	Frame(fn func()) *Timer
}

type timerKind int

const (
	oneShot timerKind = iota
	repeating
	frame
)

// Timer is a pending callback registration.
type Timer struct {
	q         *Queue
	kind      timerKind
	due       time.Time
	period    time.Duration
	fn        func()
	seq       uint64
	index     int
	cancelled bool
	done      bool
}

// Cancel prevents any further invocation of the callback. It reports whether
// the timer was still pending.
func (t *Timer) Cancel() bool {
	if t == nil {
		return false
	}
	return t.q.cancel(t)
}

// Pending reports whether the callback may still run.
func (t *Timer) Pending() bool {
	if t == nil {
		return false
	}
	t.q.mu.Lock()
	defer t.q.mu.Unlock()
	return !t.cancelled && !t.done
}

// Stats counts queue activity since creation.
type Stats struct {
	Scheduled uint64
	Fired     uint64
	Cancelled uint64
	Frames    uint64
}

// Queue is a cooperative virtual-clock scheduler.
type Queue struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers timerHeap
	frames []*Timer
	stats  Stats
}

var _ Scheduler = (*Queue)(nil)

// NewQueue returns an empty queue whose clock starts at start.
func NewQueue(start time.Time) *Queue {
	return &Queue{now: start}
}

func (q *Queue) Now() time.Time {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.now
}

// After runs fn once, d after the current queue time.
func (q *Queue) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	return q.schedule(oneShot, d, fn)
}

// Every runs fn each period d until cancelled. d must be positive.
func (q *Queue) Every(d time.Duration, fn func()) *Timer {
	if d <= 0 {
		panic("sched: non-positive interval for Every")
	}
	return q.schedule(repeating, d, fn)
}

// Frame runs fn on the next call to RunFrame.
func (q *Queue) Frame(fn func()) *Timer {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.seq++
	t := &Timer{q: q, kind: frame, fn: fn, seq: q.seq, index: -1}
	q.frames = append(q.frames, t)
	q.stats.Scheduled++
	return t
}

func (q *Queue) schedule(kind timerKind, d time.Duration, fn func()) *Timer {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.seq++
	t := &Timer{
		q:      q,
		kind:   kind,
		due:    q.now.Add(d),
		period: d,
		fn:     fn,
		seq:    q.seq,
		index:  -1,
	}
	heap.Push(&q.timers, t)
	q.stats.Scheduled++
	return t
}

func (q *Queue) cancel(t *Timer) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if t.cancelled || t.done {
		return false
	}
	t.cancelled = true
	if t.index >= 0 {
		heap.Remove(&q.timers, t.index)
	}
	if t.kind == frame {
		for i, f := range q.frames {
			if f == t {
				q.frames = append(q.frames[:i], q.frames[i+1:]...)
				break
			}
		}
	}
	q.stats.Cancelled++
	return true
}

// Advance moves the clock forward by d, firing due timers in deadline order.
// It returns the number of callbacks run.
func (q *Queue) Advance(d time.Duration) int {
	return q.AdvanceTo(q.Now().Add(d))
}

// AdvanceTo moves the clock to target, firing due timers in deadline order.
// The clock never moves backwards.
func (q *Queue) AdvanceTo(target time.Time) int {
	fired := 0
	for {
		q.mu.Lock()
		if len(q.timers) == 0 || q.timers[0].due.After(target) {
			if target.After(q.now) {
				q.now = target
			}
			q.mu.Unlock()
			return fired
		}
		t := heap.Pop(&q.timers).(*Timer)
		if t.due.After(q.now) {
			q.now = t.due
		}
		if t.kind == repeating {
			t.due = t.due.Add(t.period)
			heap.Push(&q.timers, t)
		} else {
			t.done = true
		}
		q.stats.Fired++
		fn := t.fn
		q.mu.Unlock()

		fn()
		fired++
	}
}

// RunFrame runs every frame callback registered before the call. Callbacks
// that request another frame are deferred to the next RunFrame.
func (q *Queue) RunFrame() int {
	q.mu.Lock()
	batch := q.frames
	q.frames = nil
	q.stats.Frames++
	q.mu.Unlock()

	fired := 0
	for _, t := range batch {
		q.mu.Lock()
		if t.cancelled {
			q.mu.Unlock()
			continue
		}
		t.done = true
		q.stats.Fired++
		q.mu.Unlock()

		t.fn()
		fired++
	}
	return fired
}

// Pump advances the clock to now and then runs one frame.
func (q *Queue) Pump(now time.Time) int {
	return q.AdvanceTo(now) + q.RunFrame()
}

// Pending returns the number of callbacks that may still run.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.timers) + len(q.frames)
}

func (q *Queue) Stats() Stats {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.stats
}

type timerHeap []*Timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].due.Equal(h[j].due) {
		return h[i].seq < h[j].seq
	}
	return h[i].due.Before(h[j].due)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*Timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
