package config

import (
	"sort"

	"github.com/sanketxmishra/folio/internal/starfield"
)

// Presets tune the animation; fields left zero keep the defaults.
var Presets = map[string]func(*Config){
	"classic": func(c *Config) {},
	"calm": func(c *Config) {
		c.Starfield.Stars = 80
		c.Starfield.StarSpeed = starfield.Range{Min: 0.1, Max: 0.3}
		c.Starfield.SpawnMs = 4000
		c.Starfield.StreakSpeed = starfield.Range{Min: 1.5, Max: 3}
		c.Typewriter.HoldMs = 1500
	},
	"meteor-shower": func(c *Config) {
		c.Starfield.Stars = 150
		c.Starfield.SpawnMs = 250
		c.Starfield.StreakSpeed = starfield.Range{Min: 4, Max: 8}
		c.Starfield.StreakLength = starfield.Range{Min: 40, Max: 120}
		c.Typewriter.TickMs = 50
	},
	"sparse": func(c *Config) {
		c.Starfield.Stars = 40
		c.Starfield.StarRadius = starfield.Range{Min: 0.5, Max: 1.0}
		c.Starfield.SpawnMs = 2000
		c.Typewriter.TickMs = 80
	},
}

// GetPreset returns the defaults with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
