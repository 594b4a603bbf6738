package export

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sanketxmishra/folio/internal/sched"
	"github.com/sanketxmishra/folio/internal/screen"
	"github.com/sanketxmishra/folio/internal/starfield"
)

// FrameInterval is the virtual time between simulated frames.
const FrameInterval = time.Second / 60

// Simulate runs a field on a virtual clock for the given number of frames
// and leaves surf holding the last one. observe, if non-nil, is called after
// every frame. ctx is checked between frames.
func Simulate(ctx context.Context, surf starfield.Surface, cfg starfield.Config, seed int64, w, h, frames int, observe func(*starfield.Field)) (*starfield.Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("export: invalid size %dx%d", w, h)
	}

	q := sched.NewQueue(time.Unix(0, 0))
	field := starfield.New(surf, cfg, rand.New(rand.NewSource(seed)), q)
	handle := field.Start(screen.NewWindow(w, h))
	defer handle.Stop()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if observe != nil {
		observe(field)
	}
	for i := 1; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		q.Advance(FrameInterval)
		q.RunFrame()
		if observe != nil {
			observe(field)
		}
	}
	return field, nil
}
