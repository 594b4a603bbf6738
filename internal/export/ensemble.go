package export

import (
	"context"
	"sync"

	"github.com/sanketxmishra/folio/internal/canvas"
	"github.com/sanketxmishra/folio/internal/starfield"
)

// Run is the outcome of one seeded simulation.
type Run struct {
	Seed   int64           `json:"seed"`
	Stats  starfield.Stats `json:"stats"`
	Active []float64       `json:"active"`
}

// Ensemble simulates the same configuration under consecutive seeds.
type Ensemble struct {
	cfg       starfield.Config
	width     int
	height    int
	numRuns   int
	seedStart int64
}

func NewEnsemble(cfg starfield.Config, w, h, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{cfg: cfg, width: w, height: h, numRuns: numRuns, seedStart: seedStart}
}

// Run simulates every seed concurrently. Each run owns its own clock and
// surface. Results are ordered by seed. Cancelling ctx stops every run at
// its next frame.
func (e *Ensemble) Run(ctx context.Context, frames int) ([]Run, error) {
	runs := make([]Run, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			seed := e.seedStart + int64(idx)
			active := make([]float64, 0, frames)
			field, err := Simulate(ctx, canvas.New(e.width, e.height), e.cfg, seed, e.width, e.height, frames, func(f *starfield.Field) {
				active = append(active, float64(f.Stats().Active))
			})
			if err != nil {
				errs[idx] = err
				return
			}
			runs[idx] = Run{Seed: seed, Stats: field.Stats(), Active: active}
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return runs, nil
}
