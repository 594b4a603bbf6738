package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/sanketxmishra/folio/internal/canvas"
	"github.com/sanketxmishra/folio/internal/content"
	"github.com/sanketxmishra/folio/internal/sched"
	"github.com/sanketxmishra/folio/internal/screen"
	"github.com/sanketxmishra/folio/internal/starfield"
	"github.com/sanketxmishra/folio/internal/theme"
	"github.com/sanketxmishra/folio/internal/typewriter"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer draws the hero straight to a writer in real time, without
// the interactive page around it.
type LiveRenderer struct {
	out     io.Writer
	loop    *sched.Loop
	window  *screen.Window
	canvas  *canvas.Canvas
	field   *starfield.Field
	writer  *typewriter.Sequencer
	profile *content.Profile
	theme   theme.Theme
	styles  theme.Styles
	cols    int
	rows    int

	frame   *sched.Timer
	running bool
	frames  int
}

// NewLiveRenderer sizes the hero to cols x rows terminal cells.
func NewLiveRenderer(out io.Writer, opts Options, cols, rows int) (*LiveRenderer, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("tui: invalid live size %dx%d", cols, rows)
	}
	p := opts.Profile
	if p == nil {
		p = content.Default()
	}
	if opts.Theme.Name == "" {
		opts.Theme = theme.Default
	}
	if opts.Start.IsZero() {
		opts.Start = time.Now()
	}
	if err := opts.Starfield.Validate(); err != nil {
		return nil, err
	}
	tw := opts.Typewriter
	if len(tw.Roles) == 0 {
		tw.Roles = p.Roles
	}

	q := sched.NewQueue(opts.Start)
	writer, err := typewriter.New(tw, q)
	if err != nil {
		return nil, err
	}
	cv := canvas.New(cols*2, rows*4)

	return &LiveRenderer{
		out:     out,
		loop:    sched.NewLoop(q, opts.FPS),
		window:  screen.NewWindow(cols*2, rows*4),
		canvas:  cv,
		field:   starfield.New(cv, opts.Starfield, rand.New(rand.NewSource(opts.Seed)), q),
		writer:  writer,
		profile: p,
		theme:   opts.Theme,
		styles:  opts.Theme.Styles(),
		cols:    cols,
		rows:    rows,
	}, nil
}

// Run animates until ctx is done. Cancellation and deadline expiry are a
// normal end and return nil.
func (r *LiveRenderer) Run(ctx context.Context) error {
	fmt.Fprint(r.out, hideCursor)
	defer fmt.Fprint(r.out, showCursor)

	r.running = true
	handles := []sched.Handle{
		r.field.Start(r.window),
		r.writer.Start(),
		sched.NewHandle(r.stop),
	}
	defer sched.StopAll(handles...)

	r.frame = r.loop.Queue().Frame(r.draw)

	err := r.loop.Run(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// Resize changes the hero size. It must be called on the loop goroutine,
// typically through Post. Non-positive sizes are ignored.
func (r *LiveRenderer) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	r.cols, r.rows = cols, rows
	r.window.Set(cols*2, rows*4)
}

// Post hands fn to the render loop.
func (r *LiveRenderer) Post(ctx context.Context, fn func()) error {
	return r.loop.Post(ctx, fn)
}

// SizeFunc reports the hero size in terminal cells.
type SizeFunc func() (cols, rows int, err error)

// FollowSize polls size every interval and posts a Resize whenever the
// reported size changes. It returns when ctx is done.
func (r *LiveRenderer) FollowSize(ctx context.Context, size SizeFunc, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	var lastCols, lastRows int
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		cols, rows, err := size()
		if err != nil || (cols == lastCols && rows == lastRows) {
			continue
		}
		lastCols, lastRows = cols, rows
		if err := r.Post(ctx, func() { r.Resize(cols, rows) }); err != nil {
			return
		}
		log.Printf("tui: live resize %dx%d", cols, rows)
	}
}

func (r *LiveRenderer) stop() {
	r.running = false
	r.frame.Cancel()
	r.frame = nil
}

func (r *LiveRenderer) draw() {
	if !r.running {
		return
	}
	r.render()
	r.frames++
	r.frame = r.loop.Queue().Frame(r.draw)
}

func (r *LiveRenderer) render() {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(renderHero(r.canvas, r.theme, r.styles, r.profile, r.writer, r.cols, r.rows))
	b.WriteString("\n")
	b.WriteString(r.theme.Separator(r.cols))
	b.WriteString("\n")

	st := r.field.Stats()
	b.WriteString(r.styles.Subtle.Render(fmt.Sprintf("  frame=%d streaks=%d spawned=%d role=%d/%d %s",
		st.Frames, st.Active, st.Spawned, r.writer.Index()+1, r.writer.Len(), r.writer.Phase())))
	b.WriteString("\n")

	fmt.Fprint(r.out, b.String())
}

// Frames returns the number of frames written so far.
func (r *LiveRenderer) Frames() int { return r.frames }
