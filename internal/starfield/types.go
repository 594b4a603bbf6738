package starfield

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrInvalidConfig indicates a configuration that cannot produce a field.
var ErrInvalidConfig = errors.New("starfield: invalid config")

// Surface is a 2D drawing target measured in surface pixels.
type Surface interface {
	Resize(w, h int)
	Clear()
	FillCircle(x, y, r, alpha float64)
	StrokeLine(x0, y0, x1, y1, width, blur float64)
}

// Point is an ambient star drifting upwards.
type Point struct {
	X, Y   float64
	Radius float64
	Speed  float64
}

// Streak is a falling star. It travels two units right for every unit down.
type Streak struct {
	X, Y   float64
	Length float64
	Speed  float64
	Trail  float64
}

// Head returns the far end of the streak's line segment.
func (s Streak) Head() (float64, float64) {
	return s.X + s.Length, s.Y + s.Length/2
}

// Range is a half-open interval [Min, Max).
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Sample draws a uniform value from the range.
func (r Range) Sample(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

func (r Range) valid() bool {
	return r.Min > 0 && r.Max >= r.Min
}

type Config struct {
	Stars         int
	StarRadius    Range
	StarSpeed     Range
	Opacity       float64
	SpawnInterval time.Duration
	StartY        float64
	StreakLength  Range
	StreakSpeed   Range
	StreakTrail   Range
	Glow          float64
}

func DefaultConfig() Config {
	return Config{
		Stars:         120,
		StarRadius:    Range{Min: 0.5, Max: 1.7},
		StarSpeed:     Range{Min: 0.2, Max: 0.7},
		Opacity:       0.8,
		SpawnInterval: 1800 * time.Millisecond,
		StartY:        -20,
		StreakLength:  Range{Min: 60, Max: 160},
		StreakSpeed:   Range{Min: 2, Max: 5},
		StreakTrail:   Range{Min: 1, Max: 3},
		Glow:          24,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Stars < 0:
		return fmt.Errorf("%w: negative star count %d", ErrInvalidConfig, c.Stars)
	case !c.StarRadius.valid():
		return fmt.Errorf("%w: star radius %v", ErrInvalidConfig, c.StarRadius)
	case !c.StarSpeed.valid():
		return fmt.Errorf("%w: star speed %v", ErrInvalidConfig, c.StarSpeed)
	case c.Opacity < 0 || c.Opacity > 1:
		return fmt.Errorf("%w: opacity %.2f outside [0,1]", ErrInvalidConfig, c.Opacity)
	case c.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawn interval %v", ErrInvalidConfig, c.SpawnInterval)
	case !c.StreakLength.valid():
		return fmt.Errorf("%w: streak length %v", ErrInvalidConfig, c.StreakLength)
	case !c.StreakSpeed.valid():
		return fmt.Errorf("%w: streak speed %v", ErrInvalidConfig, c.StreakSpeed)
	case !c.StreakTrail.valid():
		return fmt.Errorf("%w: streak trail %v", ErrInvalidConfig, c.StreakTrail)
	case c.Glow < 0:
		return fmt.Errorf("%w: negative glow %.2f", ErrInvalidConfig, c.Glow)
	}
	return nil
}

// Stats summarises a field's lifetime activity.
type Stats struct {
	Frames  int
	Spawned int
	Retired int
	Active  int
}
