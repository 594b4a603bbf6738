package sched

import "sync"

// Handle stops a running subsystem. Stop is idempotent and, once it returns,
// none of the subsystem's callbacks run again.
type Handle interface {
	Stop()
}

type handle struct {
	once sync.Once
	stop func()
}

// NewHandle wraps stop so that it runs at most once.
func NewHandle(stop func()) Handle {
	return &handle{stop: stop}
}

func (h *handle) Stop() {
	h.once.Do(h.stop)
}

// Noop is returned by subsystems that never started.
var Noop Handle = noop{}

type noop struct{}

func (noop) Stop() {}

// StopAll stops every handle in order.
func StopAll(hs ...Handle) {
	for _, h := range hs {
		if h != nil {
			h.Stop()
		}
	}
}
