package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sanketxmishra/folio/internal/canvas"
	"github.com/sanketxmishra/folio/internal/content"
	"github.com/sanketxmishra/folio/internal/theme"
	"github.com/sanketxmishra/folio/internal/typewriter"
)

const cursorGlyph = "▌"

// renderHero draws the starfield rows with the name, the typed role and the
// hero links centred over the middle rows.
func renderHero(cv *canvas.Canvas, th theme.Theme, st theme.Styles, p *content.Profile, w *typewriter.Sequencer, width, rows int) string {
	lines := cv.Lines(st)
	for len(lines) < rows {
		lines = append(lines, "")
	}
	mid := len(lines) / 2

	role := st.Role.Render(w.Text())
	if w.Phase() == typewriter.Typing {
		role += st.Cursor.Render(cursorGlyph)
	}
	overlay := map[int]string{
		mid - 2: theme.GradientText(p.Name, th.Primary, th.Secondary),
		mid:     role,
	}
	if len(p.Links) > 0 {
		labels := make([]string, len(p.Links))
		for i, l := range p.Links {
			labels[i] = st.Link.Render(l.Label)
		}
		overlay[mid+2] = strings.Join(labels, "   ")
	}
	for row, text := range overlay {
		if row >= 0 && row < len(lines) {
			lines[row] = lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
		}
	}
	return strings.Join(lines, "\n")
}
