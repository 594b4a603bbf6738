package starfield

import (
	"math/rand"
	"time"

	"github.com/sanketxmishra/folio/internal/sched"
	"github.com/sanketxmishra/folio/internal/screen"
)

// Field animates ambient points and streaks onto a Surface, one step per
// frame requested from its scheduler.
type Field struct {
	surface Surface
	cfg     Config
	rng     *rand.Rand
	sched   sched.Scheduler

	width, height float64
	points        []Point
	streaks       []Streak
	lastSpawn     time.Time

	frame       *sched.Timer
	unsubscribe func()
	handle      sched.Handle
	running     bool
	stats       Stats
}

// New returns an unstarted field. A nil surface yields a field whose Start
// does nothing.
func New(surface Surface, cfg Config, rng *rand.Rand, s sched.Scheduler) *Field {
	return &Field{
		surface: surface,
		cfg:     cfg,
		rng:     rng,
		sched:   s,
	}
}

// Start sizes the surface to win, seeds the ambient points and begins the
// frame loop. Calling Start on a running field returns its existing handle.
func (f *Field) Start(win *screen.Window) sched.Handle {
	if f.surface == nil {
		return sched.Noop
	}
	if f.running {
		return f.handle
	}

	w, h := win.Size()
	f.Resize(w, h)

	f.points = make([]Point, f.cfg.Stars)
	for i := range f.points {
		f.points[i] = Point{
			X:      f.rng.Float64() * f.width,
			Y:      f.rng.Float64() * f.height,
			Radius: f.cfg.StarRadius.Sample(f.rng),
			Speed:  f.cfg.StarSpeed.Sample(f.rng),
		}
	}
	f.streaks = f.streaks[:0]
	f.lastSpawn = f.sched.Now()
	f.unsubscribe = win.OnResize(f.Resize)
	f.running = true
	f.handle = sched.NewHandle(f.stop)

	f.animate()
	return f.handle
}

func (f *Field) stop() {
	f.running = false
	f.frame.Cancel()
	f.frame = nil
	if f.unsubscribe != nil {
		f.unsubscribe()
		f.unsubscribe = nil
	}
}

func (f *Field) animate() {
	if !f.running {
		return
	}
	f.Step()
	f.frame = f.sched.Frame(f.animate)
}

// Step draws the current frame and advances every particle once.
func (f *Field) Step() {
	f.surface.Clear()

	for i := range f.points {
		p := &f.points[i]
		f.surface.FillCircle(p.X, p.Y, p.Radius, f.cfg.Opacity)
		p.Y -= p.Speed
		if p.Y < 0 {
			p.X = f.rng.Float64() * f.width
			p.Y = f.height
		}
	}

	now := f.sched.Now()
	if now.Sub(f.lastSpawn) > f.cfg.SpawnInterval {
		f.spawn()
		f.lastSpawn = now
	}

	for i := len(f.streaks) - 1; i >= 0; i-- {
		s := &f.streaks[i]
		hx, hy := s.Head()
		f.surface.StrokeLine(s.X, s.Y, hx, hy, s.Trail, f.cfg.Glow)
		s.X += s.Speed
		s.Y += s.Speed / 2
		if s.X > f.width || s.Y > f.height {
			f.streaks = append(f.streaks[:i], f.streaks[i+1:]...)
			f.stats.Retired++
		}
	}

	f.stats.Frames++
}

func (f *Field) spawn() {
	f.streaks = append(f.streaks, Streak{
		X:      f.rng.Float64() * f.width,
		Y:      f.cfg.StartY,
		Length: f.cfg.StreakLength.Sample(f.rng),
		Speed:  f.cfg.StreakSpeed.Sample(f.rng),
		Trail:  f.cfg.StreakTrail.Sample(f.rng),
	})
	f.stats.Spawned++
}

// Resize changes the surface dimensions. Particles keep their positions and
// settle back through the wrap and removal rules.
func (f *Field) Resize(w, h int) {
	f.width, f.height = float64(w), float64(h)
	if f.surface != nil {
		f.surface.Resize(w, h)
	}
}

func (f *Field) Size() (float64, float64) { return f.width, f.height }

func (f *Field) Running() bool { return f.running }

// Points returns a copy of the ambient points.
func (f *Field) Points() []Point {
	out := make([]Point, len(f.points))
	copy(out, f.points)
	return out
}

// Streaks returns a copy of the active streaks.
func (f *Field) Streaks() []Streak {
	out := make([]Streak, len(f.streaks))
	copy(out, f.streaks)
	return out
}

func (f *Field) Stats() Stats {
	st := f.stats
	st.Active = len(f.streaks)
	return st
}
