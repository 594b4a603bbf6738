// Package theme holds the colour schemes and lipgloss helpers used by the
// terminal portfolio.
package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour scheme for the portfolio.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Star       lipgloss.Color
	Glow       lipgloss.Color
}

var (
	Night = Theme{
		Name:       "night",
		Primary:    lipgloss.Color("#8ec6ff"),
		Secondary:  lipgloss.Color("#c084fc"),
		Accent:     lipgloss.Color("#ffffff"),
		Background: lipgloss.Color("#05060f"),
		Text:       lipgloss.Color("#e6edf7"),
		Muted:      lipgloss.Color("#6b7394"),
		Star:       lipgloss.Color("#cfd8ff"),
		Glow:       lipgloss.Color("#9fd3ff"),
	}

	Cyberpunk = Theme{
		Name:       "cyberpunk",
		Primary:    lipgloss.Color("#ff00ff"), // Magenta
		Secondary:  lipgloss.Color("#00ffff"), // Cyan
		Accent:     lipgloss.Color("#ffff00"), // Yellow
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Star:       lipgloss.Color("#ff88ff"),
		Glow:       lipgloss.Color("#00ffff"),
	}

	RetroGreen = Theme{
		Name:       "retro",
		Primary:    lipgloss.Color("#00ff00"), // Green phosphor
		Secondary:  lipgloss.Color("#00cc00"),
		Accent:     lipgloss.Color("#88ff88"),
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Star:       lipgloss.Color("#00aa00"),
		Glow:       lipgloss.Color("#ccffcc"),
	}

	Minimal = Theme{
		Name:       "minimal",
		Primary:    lipgloss.Color("#ffffff"),
		Secondary:  lipgloss.Color("#cccccc"),
		Accent:     lipgloss.Color("#0088ff"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Star:       lipgloss.Color("#aaaaaa"),
		Glow:       lipgloss.Color("#ffffff"),
	}

	Ocean = Theme{
		Name:       "ocean",
		Primary:    lipgloss.Color("#0077be"), // Ocean blue
		Secondary:  lipgloss.Color("#00a8cc"),
		Accent:     lipgloss.Color("#ffd700"),
		Background: lipgloss.Color("#001a33"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Star:       lipgloss.Color("#a0d8ff"),
		Glow:       lipgloss.Color("#ffd700"),
	}

	Sunset = Theme{
		Name:       "sunset",
		Primary:    lipgloss.Color("#ff6b6b"), // Coral
		Secondary:  lipgloss.Color("#feca57"),
		Accent:     lipgloss.Color("#ff9ff3"),
		Background: lipgloss.Color("#2d1b2e"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Star:       lipgloss.Color("#ffd6a5"),
		Glow:       lipgloss.Color("#ff9ff3"),
	}

	Default = Night

	all = []Theme{Night, Cyberpunk, RetroGreen, Minimal, Ocean, Sunset}
)

// Get returns a theme by name.
func Get(name string) (Theme, bool) {
	for _, t := range all {
		if t.Name == name {
			return t, true
		}
	}
	return Default, false
}

// Names returns the available theme names, sorted.
func Names() []string {
	names := make([]string, len(all))
	for i, t := range all {
		names[i] = t.Name
	}
	sort.Strings(names)
	return names
}
