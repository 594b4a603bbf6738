package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sanketxmishra/folio/internal/sched"
	"github.com/sanketxmishra/folio/internal/starfield"
	"github.com/sanketxmishra/folio/internal/theme"
	"github.com/sanketxmishra/folio/internal/typewriter"
)

// ErrInvalid indicates a configuration value outside its valid range.
var ErrInvalid = errors.New("config: invalid value")

const (
	DefaultFPS    = sched.DefaultFPS
	DefaultAddr   = ":8080"
	DefaultTickMs = 70
	DefaultHoldMs = 1200
	MaxFPS        = 240
)

type Config struct {
	Theme      string           `yaml:"theme"`
	FPS        int              `yaml:"fps"`
	Seed       int64            `yaml:"seed"`
	Profile    string           `yaml:"profile"`
	Resume     string           `yaml:"resume"`
	Addr       string           `yaml:"addr"`
	Starfield  StarfieldConfig  `yaml:"starfield"`
	Typewriter TypewriterConfig `yaml:"typewriter"`
}

type StarfieldConfig struct {
	Stars        int             `yaml:"stars"`
	StarRadius   starfield.Range `yaml:"star_radius"`
	StarSpeed    starfield.Range `yaml:"star_speed"`
	Opacity      float64         `yaml:"opacity"`
	SpawnMs      int             `yaml:"spawn_ms"`
	StartY       float64         `yaml:"start_y"`
	StreakLength starfield.Range `yaml:"streak_length"`
	StreakSpeed  starfield.Range `yaml:"streak_speed"`
	StreakTrail  starfield.Range `yaml:"streak_trail"`
	Glow         float64         `yaml:"glow"`
}

type TypewriterConfig struct {
	TickMs int `yaml:"tick_ms"`
	HoldMs int `yaml:"hold_ms"`
}

func DefaultConfig() *Config {
	sf := starfield.DefaultConfig()
	return &Config{
		Theme: theme.Default.Name,
		FPS:   DefaultFPS,
		Addr:  DefaultAddr,
		Starfield: StarfieldConfig{
			Stars:        sf.Stars,
			StarRadius:   sf.StarRadius,
			StarSpeed:    sf.StarSpeed,
			Opacity:      sf.Opacity,
			SpawnMs:      int(sf.SpawnInterval / time.Millisecond),
			StartY:       sf.StartY,
			StreakLength: sf.StreakLength,
			StreakSpeed:  sf.StreakSpeed,
			StreakTrail:  sf.StreakTrail,
			Glow:         sf.Glow,
		},
		Typewriter: TypewriterConfig{
			TickMs: DefaultTickMs,
			HoldMs: DefaultHoldMs,
		},
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.Merge(path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Merge decodes a YAML file over c. Keys absent from the file keep their
// current values.
func (c *Config) Merge(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.FPS <= 0 || c.FPS > MaxFPS {
		return fmt.Errorf("%w: fps %d outside 1..%d", ErrInvalid, c.FPS, MaxFPS)
	}
	if _, ok := theme.Get(c.Theme); !ok {
		return fmt.Errorf("%w: unknown theme %q (available: %v)", ErrInvalid, c.Theme, theme.Names())
	}
	if c.Typewriter.TickMs <= 0 || c.Typewriter.HoldMs <= 0 {
		return fmt.Errorf("%w: typewriter tick %dms, hold %dms", ErrInvalid, c.Typewriter.TickMs, c.Typewriter.HoldMs)
	}
	if err := c.StarfieldConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// StarfieldConfig converts the file representation into a starfield.Config.
func (c *Config) StarfieldConfig() starfield.Config {
	s := c.Starfield
	return starfield.Config{
		Stars:         s.Stars,
		StarRadius:    s.StarRadius,
		StarSpeed:     s.StarSpeed,
		Opacity:       s.Opacity,
		SpawnInterval: time.Duration(s.SpawnMs) * time.Millisecond,
		StartY:        s.StartY,
		StreakLength:  s.StreakLength,
		StreakSpeed:   s.StreakSpeed,
		StreakTrail:   s.StreakTrail,
		Glow:          s.Glow,
	}
}

// TypewriterConfig builds a typewriter.Config for roles.
func (c *Config) TypewriterConfig(roles []string) typewriter.Config {
	return typewriter.Config{
		Roles: roles,
		Tick:  time.Duration(c.Typewriter.TickMs) * time.Millisecond,
		Hold:  time.Duration(c.Typewriter.HoldMs) * time.Millisecond,
	}
}

func (c *Config) ThemeValue() theme.Theme {
	t, _ := theme.Get(c.Theme)
	return t
}
