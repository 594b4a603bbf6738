// Package export renders the starfield to SVG.
package export

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sanketxmishra/folio/internal/canvas"
	"github.com/sanketxmishra/folio/internal/starfield"
	"github.com/sanketxmishra/folio/internal/theme"
)

var _ starfield.Surface = (*SVG)(nil)

// SVG is a starfield surface that records drawing operations as SVG
// elements. Streak glow becomes a gaussian blur filter per blur radius.
type SVG struct {
	Width, Height int

	background string
	star       string
	streak     string
	glow       string
	elems      []string
	filters    map[float64]string
}

func NewSVG(w, h int, th theme.Theme) *SVG {
	return &SVG{
		Width:      w,
		Height:     h,
		background: string(th.Background),
		star:       string(th.Star),
		streak:     string(th.Accent),
		glow:       string(th.Glow),
		filters:    make(map[float64]string),
	}
}

func (s *SVG) Resize(w, h int) {
	s.Width, s.Height = w, h
}

func (s *SVG) Clear() {
	s.elems = s.elems[:0]
}

func (s *SVG) FillCircle(x, y, r, alpha float64) {
	s.elems = append(s.elems, fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.2f" fill="%s" fill-opacity="%.2f"/>`,
		x, y, r, s.star, alpha))
}

func (s *SVG) StrokeLine(x0, y0, x1, y1, width, blur float64) {
	filter := ""
	if blur > 0 {
		id, ok := s.filters[blur]
		if !ok {
			id = fmt.Sprintf("glow%d", len(s.filters))
			s.filters[blur] = id
		}
		filter = fmt.Sprintf(` filter="url(#%s)"`, id)
	}
	s.elems = append(s.elems, fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.2f" stroke-linecap="round"%s/>`,
		x0, y0, x1, y1, s.streak, width, filter))
}

// Elements returns the number of recorded drawing elements.
func (s *SVG) Elements() int { return len(s.elems) }

func (s *SVG) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
`, s.Width, s.Height, s.Width, s.Height))

	if len(s.filters) > 0 {
		blurs := make([]float64, 0, len(s.filters))
		for b := range s.filters {
			blurs = append(blurs, b)
		}
		sort.Float64s(blurs)

		sb.WriteString("<defs>\n")
		for _, b := range blurs {
			// canvas shadowBlur is roughly twice the gaussian deviation
			sb.WriteString(fmt.Sprintf(`<filter id="%s" x="-50%%" y="-50%%" width="200%%" height="200%%">
<feDropShadow dx="0" dy="0" stdDeviation="%.1f" flood-color="%s"/>
</filter>
`, s.filters[b], b/2, s.glow))
		}
		sb.WriteString("</defs>\n")
	}

	sb.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" fill="%s"/>
`, s.background))
	for _, e := range s.elems {
		sb.WriteString(e)
		sb.WriteByte('\n')
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

// CanvasToSVG converts a braille canvas to SVG, one circle per lit dot.
func CanvasToSVG(c *canvas.Canvas, scale float64, th theme.Theme) string {
	if c == nil {
		return ""
	}

	width := float64(c.Cols) * scale * 2  // 2 sub-pixels per char
	height := float64(c.Rows) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, th.Background, th.Star))

	dotRadius := scale * 0.4

	for y := 0; y < c.Rows*4; y++ {
		for x := 0; x < c.Cols*2; x++ {
			if !c.Lit(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}
