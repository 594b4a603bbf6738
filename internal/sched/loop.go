package sched

import (
	"context"
	"time"
)

const DefaultFPS = 60

// Loop pumps a Queue in real time on a single goroutine. Work from other
// goroutines is handed over with Post so that it runs between frames.
type Loop struct {
	q     *Queue
	fps   int
	posts chan func()
}

// NewLoop returns a loop that pumps q fps times per second.
func NewLoop(q *Queue, fps int) *Loop {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Loop{
		q:     q,
		fps:   fps,
		posts: make(chan func(), 16),
	}
}

func (l *Loop) Queue() *Queue { return l.q }

// Post schedules fn to run on the loop goroutine. It blocks while the post
// buffer is full and gives up when ctx is done.
func (l *Loop) Post(ctx context.Context, fn func()) error {
	select {
	case l.posts <- fn:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run pumps the queue until ctx is done. Queue time advances by the wall time
// elapsed since Run was called.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(l.fps))
	defer ticker.Stop()

	origin := time.Now()
	base := l.q.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.posts:
			fn()
		case now := <-ticker.C:
			l.q.Pump(base.Add(now.Sub(origin)))
		}
	}
}
