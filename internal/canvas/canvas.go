// Package canvas is a braille-dot terminal surface. Each terminal cell holds
// a 2x4 grid of dots, so a canvas of Cols x Rows cells is a surface of
// (Cols*2) x (Rows*4) pixels.
package canvas

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sanketxmishra/folio/internal/starfield"
	"github.com/sanketxmishra/folio/internal/theme"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Cell intensity levels. Stars write their alpha (at most 1).
const (
	levelHalo   = 1.5
	levelStreak = 2.0
)

var _ starfield.Surface = (*Canvas)(nil)

type Canvas struct {
	Cols, Rows int
	Grid       [][]rune
	Level      [][]float64
}

// New returns a canvas covering a w x h pixel surface.
func New(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates the grid for a w x h pixel surface. Contents are
// discarded; the next frame redraws everything.
func (c *Canvas) Resize(w, h int) {
	cols := (max(w, 0) + 1) / 2
	rows := (max(h, 0) + 3) / 4
	c.Cols, c.Rows = cols, rows
	c.Grid = make([][]rune, rows)
	c.Level = make([][]float64, rows)
	for i := range c.Grid {
		c.Grid[i] = make([]rune, cols)
		c.Level[i] = make([]float64, cols)
	}
	c.Clear()
}

// Clear resets the canvas.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Level[i][j] = 0
		}
	}
}

// Set lights the dot at pixel (x, y). Out-of-range pixels are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Cols || row >= c.Rows {
		return
	}
	c.Grid[row][col] |= pixelMap[y%4][x%2]
}

// Lit reports whether the dot at (x, y) is set.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col, row := x/2, y/4
	if col >= c.Cols || row >= c.Rows {
		return false
	}
	return c.Grid[row][col]&pixelMap[y%4][x%2] != 0
}

func (c *Canvas) raise(x, y int, level float64) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Cols || row >= c.Rows {
		return
	}
	if level > c.Level[row][col] {
		c.Level[row][col] = level
	}
}

// FillCircle lights every dot within r of (x, y). Dots smaller than one
// pixel still light their centre.
func (c *Canvas) FillCircle(x, y, r, alpha float64) {
	cx, cy := int(math.Round(x)), int(math.Round(y))
	c.Set(cx, cy)
	c.raise(cx, cy, alpha)

	reach := int(math.Floor(r))
	for dy := -reach; dy <= reach; dy++ {
		for dx := -reach; dx <= reach; dx++ {
			if float64(dx*dx+dy*dy) <= r*r {
				c.Set(cx+dx, cy+dy)
				c.raise(cx+dx, cy+dy, alpha)
			}
		}
	}
}

// StrokeLine draws a line width pixels thick. blur spreads a halo over
// neighbouring cells, one cell per 12 pixels of blur.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width, blur float64) {
	thick := max(int(math.Round(width)), 1)
	halo := int(blur / 12)

	c.DrawLine(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)), func(x, y int) {
		for k := 0; k < thick; k++ {
			c.Set(x, y+k)
			c.raise(x, y+k, levelStreak)
		}
		for dy := -halo; dy <= halo; dy++ {
			for dx := -halo; dx <= halo; dx++ {
				if dx != 0 || dy != 0 {
					c.raise(x+dx*2, y+dy*4, levelHalo)
				}
			}
		}
	})
}

// DrawLine walks a line using Bresenham's algorithm, calling plot for each
// pixel. A nil plot lights the pixels.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	if plot == nil {
		plot = c.Set
	}
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Lines renders each row with the canvas styles of s. Runs of cells sharing
// a style are rendered together.
func (c *Canvas) Lines(s theme.Styles) []string {
	out := make([]string, c.Rows)
	for i, row := range c.Grid {
		var b strings.Builder
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && classOf(row[j], c.Level[i][j]) == classOf(row[start], c.Level[i][start]) {
				continue
			}
			seg := string(row[start:j])
			if st, ok := styleFor(s, classOf(row[start], c.Level[i][start])); ok {
				seg = st.Render(seg)
			}
			b.WriteString(seg)
			start = j
		}
		out[i] = b.String()
	}
	return out
}

type cellClass int

const (
	classBlank cellClass = iota
	classDim
	classBright
	classHalo
	classStreak
)

// classOf picks the style class of a cell. Halo cells are usually blank
// glyphs, so they are classed by level alone and drawn as a background tint.
func classOf(r rune, level float64) cellClass {
	switch {
	case level >= levelStreak:
		return classStreak
	case level >= levelHalo:
		return classHalo
	case r == blank:
		return classBlank
	case level >= 0.5:
		return classBright
	default:
		return classDim
	}
}

func styleFor(s theme.Styles, class cellClass) (lipgloss.Style, bool) {
	switch class {
	case classDim:
		return s.StarDim, true
	case classBright:
		return s.StarBright, true
	case classHalo:
		return s.Halo, true
	case classStreak:
		return s.Streak, true
	}
	return lipgloss.Style{}, false
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
