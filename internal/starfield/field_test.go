package starfield_test

import (
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sanketxmishra/folio/internal/sched"
	"github.com/sanketxmishra/folio/internal/screen"
	"github.com/sanketxmishra/folio/internal/starfield"
)

type line struct{ x0, y0, x1, y1, width, blur float64 }

type recorder struct {
	w, h    int
	resizes int
	clears  int
	circles int
	alpha   float64
	lines   []line
}

func (r *recorder) Resize(w, h int) {
	r.w, r.h = w, h
	r.resizes++
}

func (r *recorder) Clear() { r.clears++ }

func (r *recorder) FillCircle(x, y, radius, alpha float64) {
	r.circles++
	r.alpha = alpha
}

func (r *recorder) StrokeLine(x0, y0, x1, y1, width, blur float64) {
	r.lines = append(r.lines, line{x0, y0, x1, y1, width, blur})
}

func (r *recorder) draws() int { return r.clears + r.circles + len(r.lines) }

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

var _ = Describe("Field", func() {
	var (
		q     *sched.Queue
		win   *screen.Window
		surf  *recorder
		cfg   starfield.Config
		field *starfield.Field
	)

	frames := func(n int) {
		for i := 0; i < n; i++ {
			q.Advance(16 * time.Millisecond)
			q.RunFrame()
		}
	}

	BeforeEach(func() {
		q = sched.NewQueue(epoch)
		win = screen.NewWindow(800, 600)
		surf = &recorder{}
		cfg = starfield.DefaultConfig()
		field = starfield.New(surf, cfg, rand.New(rand.NewSource(42)), q)
	})

	Describe("Start", func() {
		It("does nothing without a surface", func() {
			f := starfield.New(nil, cfg, rand.New(rand.NewSource(1)), q)
			h := f.Start(win)

			Expect(h).To(Equal(sched.Noop))
			Expect(f.Running()).To(BeFalse())
			Expect(q.Pending()).To(BeZero())
			Expect(win.Listeners()).To(BeZero())
			h.Stop()
		})

		It("sizes the surface, seeds the points and draws the first frame", func() {
			field.Start(win)

			Expect(surf.w).To(Equal(800))
			Expect(surf.h).To(Equal(600))
			Expect(surf.clears).To(Equal(1))
			Expect(surf.circles).To(Equal(cfg.Stars))
			Expect(surf.alpha).To(BeNumerically("~", 0.8))
			Expect(field.Points()).To(HaveLen(cfg.Stars))
			Expect(field.Streaks()).To(BeEmpty())
			Expect(q.Pending()).To(Equal(1))
			Expect(win.Listeners()).To(Equal(1))
		})

		It("returns the same handle when already running", func() {
			h1 := field.Start(win)
			h2 := field.Start(win)
			Expect(h2).To(BeIdenticalTo(h1))
			Expect(q.Pending()).To(Equal(1))
		})

		It("samples attributes within the configured ranges", func() {
			field.Start(win)
			for _, p := range field.Points() {
				Expect(p.Radius).To(BeNumerically(">=", cfg.StarRadius.Min))
				Expect(p.Radius).To(BeNumerically("<", cfg.StarRadius.Max))
				Expect(p.Speed).To(BeNumerically(">=", cfg.StarSpeed.Min))
				Expect(p.Speed).To(BeNumerically("<", cfg.StarSpeed.Max))
			}
		})

		It("is deterministic for a given seed", func() {
			other := starfield.New(&recorder{}, cfg, rand.New(rand.NewSource(42)), sched.NewQueue(epoch))
			field.Start(win)
			other.Start(screen.NewWindow(800, 600))
			Expect(other.Points()).To(Equal(field.Points()))
		})
	})

	Describe("ambient points", func() {
		It("stay within [0, height] on every frame", func() {
			field.Start(win)
			for i := 0; i < 1500; i++ {
				frames(1)
				for _, p := range field.Points() {
					Expect(p.Y).To(BeNumerically(">=", 0))
					Expect(p.Y).To(BeNumerically("<=", 600))
				}
			}
		})

		It("wrap to the bottom edge once they pass the top", func() {
			cfg.Stars = 1
			cfg.StarSpeed = starfield.Range{Min: 7, Max: 7}
			f := starfield.New(surf, cfg, rand.New(rand.NewSource(3)), q)
			f.Start(screen.NewWindow(50, 10))

			wrapped := false
			prev := f.Points()[0].Y
			for i := 0; i < 10; i++ {
				frames(1)
				y := f.Points()[0].Y
				if y > prev {
					Expect(y).To(Equal(10.0))
					wrapped = true
				}
				prev = y
			}
			Expect(wrapped).To(BeTrue())
		})
	})

	Describe("streaks", func() {
		It("spawn only after the interval has elapsed", func() {
			field.Start(win)

			q.Advance(cfg.SpawnInterval)
			q.RunFrame()
			Expect(field.Stats().Spawned).To(BeZero())

			q.Advance(time.Millisecond)
			q.RunFrame()
			Expect(field.Stats().Spawned).To(Equal(1))

			// a streak spawned at the right edge may already be gone
			s := field.Streaks()
			Expect(len(s) + field.Stats().Retired).To(Equal(1))
			if len(s) == 1 {
				Expect(s[0].Y).To(BeNumerically("~", cfg.StartY+s[0].Speed/2))
			}

			q.RunFrame()
			Expect(field.Stats().Spawned).To(Equal(1))
		})

		It("travel and draw on a 2:1 diagonal", func() {
			field.Start(screen.NewWindow(100000, 100000))
			frames(400)

			Expect(surf.lines).NotTo(BeEmpty())
			for _, l := range surf.lines {
				Expect(l.x1 - l.x0).To(BeNumerically("~", 2*(l.y1-l.y0), 1e-9))
				Expect(l.blur).To(Equal(cfg.Glow))
			}

			q.Advance(2 * time.Second)
			q.RunFrame()
			before := field.Streaks()
			Expect(before).NotTo(BeEmpty())
			q.RunFrame()
			after := field.Streaks()
			for i := range after {
				dx := after[i].X - before[i].X
				dy := after[i].Y - before[i].Y
				Expect(dx).To(BeNumerically("~", 2*dy, 1e-9))
				Expect(dy).To(BeNumerically(">", 0))
			}
		})

		It("are never retained past the surface bounds", func() {
			field.Start(win)
			for i := 0; i < 2000; i++ {
				frames(1)
				for _, s := range field.Streaks() {
					Expect(s.X).To(BeNumerically("<=", 800))
					Expect(s.Y).To(BeNumerically("<=", 600))
				}
			}
			st := field.Stats()
			Expect(st.Spawned).To(BeNumerically(">", 10))
			Expect(st.Retired).To(BeNumerically(">", 0))
			Expect(st.Spawned - st.Retired).To(Equal(st.Active))
		})
	})

	Describe("resize", func() {
		It("updates the surface without touching particles", func() {
			field.Start(win)
			frames(200)
			points := field.Points()
			streaks := field.Streaks()

			win.Set(400, 300)

			Expect(surf.w).To(Equal(400))
			Expect(surf.h).To(Equal(300))
			w, h := field.Size()
			Expect(w).To(Equal(400.0))
			Expect(h).To(Equal(300.0))
			Expect(field.Points()).To(Equal(points))
			Expect(field.Streaks()).To(Equal(streaks))

			Expect(func() { frames(2000) }).NotTo(Panic())
			for _, p := range field.Points() {
				Expect(p.Y).To(BeNumerically("<=", 300))
			}
			for _, s := range field.Streaks() {
				Expect(s.X).To(BeNumerically("<=", 400))
				Expect(s.Y).To(BeNumerically("<=", 300))
			}
		})
	})

	Describe("Stop", func() {
		It("cancels the pending frame and the resize listener", func() {
			h := field.Start(win)
			frames(50)
			before := q.Stats().Cancelled

			h.Stop()
			h.Stop()

			Expect(field.Running()).To(BeFalse())
			Expect(q.Pending()).To(BeZero())
			Expect(win.Listeners()).To(BeZero())
			Expect(q.Stats().Cancelled).To(Equal(before + 1))

			draws, resizes := surf.draws(), surf.resizes
			frames(100)
			win.Set(100, 100)
			Expect(surf.draws()).To(Equal(draws))
			Expect(surf.resizes).To(Equal(resizes))
		})
	})
})

var _ = Describe("Config", func() {
	DescribeTable("Validate",
		func(mutate func(*starfield.Config), ok bool) {
			cfg := starfield.DefaultConfig()
			mutate(&cfg)
			err := cfg.Validate()
			if ok {
				Expect(err).NotTo(HaveOccurred())
			} else {
				Expect(err).To(MatchError(starfield.ErrInvalidConfig))
			}
		},
		Entry("defaults", func(*starfield.Config) {}, true),
		Entry("no stars", func(c *starfield.Config) { c.Stars = 0 }, true),
		Entry("negative stars", func(c *starfield.Config) { c.Stars = -1 }, false),
		Entry("inverted radius", func(c *starfield.Config) { c.StarRadius = starfield.Range{Min: 2, Max: 1} }, false),
		Entry("zero speed", func(c *starfield.Config) { c.StarSpeed = starfield.Range{} }, false),
		Entry("opacity above one", func(c *starfield.Config) { c.Opacity = 1.5 }, false),
		Entry("zero interval", func(c *starfield.Config) { c.SpawnInterval = 0 }, false),
		Entry("negative glow", func(c *starfield.Config) { c.Glow = -1 }, false),
	)

	It("samples a degenerate range at its bound", func() {
		r := starfield.Range{Min: 2, Max: 2}
		Expect(r.Sample(rand.New(rand.NewSource(1)))).To(Equal(2.0))
	})
})
