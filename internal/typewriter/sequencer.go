// Package typewriter reveals a cycling list of role titles one rune at a
// time.
package typewriter

import (
	"errors"
	"fmt"
	"time"

	"github.com/sanketxmishra/folio/internal/sched"
)

var (
	// ErrNoRoles indicates an empty role list.
	ErrNoRoles = errors.New("typewriter: no roles")

	// ErrInvalidConfig indicates a non-positive tick or hold duration.
	ErrInvalidConfig = errors.New("typewriter: invalid config")
)

type Phase int

const (
	Typing Phase = iota
	Holding
)

func (p Phase) String() string {
	switch p {
	case Typing:
		return "typing"
	case Holding:
		return "holding"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

const (
	DefaultTick = 70 * time.Millisecond
	DefaultHold = 1200 * time.Millisecond
)

// DefaultRoles is the role list shown when a profile does not provide one.
var DefaultRoles = []string{
	"Machine Learning Engineer",
	"AI Engineer",
	"Data Scientist",
	"Web Developer",
}

type Config struct {
	Roles []string
	Tick  time.Duration
	Hold  time.Duration
}

// State is a point-in-time view of a sequencer.
type State struct {
	Index int
	Role  string
	Text  string
	Phase Phase
}

// Sequencer is the typewriter state machine. All methods must be called from
// the goroutine that pumps its scheduler.
type Sequencer struct {
	roles [][]rune
	tick  time.Duration
	hold  time.Duration
	sched sched.Scheduler

	index int
	shown int
	phase Phase

	ticker  *sched.Timer
	holder  *sched.Timer
	handle  sched.Handle
	running bool
}

func New(cfg Config, s sched.Scheduler) (*Sequencer, error) {
	if len(cfg.Roles) == 0 {
		return nil, ErrNoRoles
	}
	if cfg.Tick <= 0 || cfg.Hold <= 0 {
		return nil, fmt.Errorf("%w: tick %v, hold %v", ErrInvalidConfig, cfg.Tick, cfg.Hold)
	}

	roles := make([][]rune, len(cfg.Roles))
	for i, r := range cfg.Roles {
		roles[i] = []rune(r)
	}
	return &Sequencer{
		roles: roles,
		tick:  cfg.Tick,
		hold:  cfg.Hold,
		sched: s,
	}, nil
}

// Start begins typing the current role. Calling Start on a running
// sequencer returns its existing handle.
func (s *Sequencer) Start() sched.Handle {
	if s.running {
		return s.handle
	}
	s.running = true
	s.handle = sched.NewHandle(s.stop)
	s.begin()
	return s.handle
}

func (s *Sequencer) stop() {
	s.running = false
	s.cancelTimers()
}

func (s *Sequencer) cancelTimers() {
	s.ticker.Cancel()
	s.holder.Cancel()
	s.ticker, s.holder = nil, nil
}

func (s *Sequencer) begin() {
	s.cancelTimers()
	s.shown = 0
	s.phase = Typing
	if len(s.roles[s.index]) == 0 {
		s.finish()
		return
	}
	s.ticker = s.sched.Every(s.tick, s.reveal)
}

func (s *Sequencer) reveal() {
	if !s.running || s.phase != Typing {
		return
	}
	s.shown++
	if s.shown >= len(s.roles[s.index]) {
		s.finish()
	}
}

func (s *Sequencer) finish() {
	s.ticker.Cancel()
	s.ticker = nil
	s.phase = Holding
	s.holder = s.sched.After(s.hold, s.advance)
}

func (s *Sequencer) advance() {
	if !s.running {
		return
	}
	s.holder = nil
	s.index = (s.index + 1) % len(s.roles)
	s.begin()
}

func (s *Sequencer) Text() string { return string(s.roles[s.index][:s.shown]) }

func (s *Sequencer) Role() string { return string(s.roles[s.index]) }

func (s *Sequencer) Index() int { return s.index }

func (s *Sequencer) Phase() Phase { return s.phase }

func (s *Sequencer) Running() bool { return s.running }

func (s *Sequencer) Len() int { return len(s.roles) }

func (s *Sequencer) State() State {
	return State{
		Index: s.index,
		Role:  s.Role(),
		Text:  s.Text(),
		Phase: s.phase,
	}
}
