package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/sanketxmishra/folio/internal/content"
)

type keyMap struct {
	Sections []key.Binding
	Up       key.Binding
	Down     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	km := keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "pgup"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "pgdown"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
	for _, s := range content.Sections() {
		km.Sections = append(km.Sections, key.NewBinding(
			key.WithKeys(s.Key),
			key.WithHelp(s.Key, s.ID),
		))
	}
	return km
}

func (k keyMap) ShortHelp() []key.Binding {
	return append(append([]key.Binding{}, k.Sections...), k.Quit)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.Sections, {k.Up, k.Down, k.Quit}}
}
