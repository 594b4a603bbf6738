package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Styles are the lipgloss styles derived from a theme.
type Styles struct {
	Nav        lipgloss.Style
	NavKey     lipgloss.Style
	Title      lipgloss.Style
	Role       lipgloss.Style
	Cursor     lipgloss.Style
	Heading    lipgloss.Style
	Body       lipgloss.Style
	Subtle     lipgloss.Style
	Link       lipgloss.Style
	Card       lipgloss.Style
	StarDim    lipgloss.Style
	StarBright lipgloss.Style
	Halo       lipgloss.Style
	Streak     lipgloss.Style
}

func (t Theme) Styles() Styles {
	return Styles{
		Nav:    lipgloss.NewStyle().Foreground(t.Muted),
		NavKey: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Role:   lipgloss.NewStyle().Foreground(t.Text),
		Cursor: lipgloss.NewStyle().Foreground(t.Primary).Blink(true),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Muted),
		Body:   lipgloss.NewStyle().Foreground(t.Text),
		Subtle: lipgloss.NewStyle().Foreground(t.Muted),
		Link:   lipgloss.NewStyle().Foreground(t.Secondary).Underline(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Secondary).
			Padding(0, 1),
		StarDim:    lipgloss.NewStyle().Foreground(t.Muted),
		StarBright: lipgloss.NewStyle().Foreground(t.Star),
		Halo:       lipgloss.NewStyle().Foreground(t.Glow).Background(t.GlowTint()),
		Streak:     lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
	}
}

// GlowTint is the background behind streak halos: the theme background
// pulled a third of the way towards Glow.
func (t Theme) GlowTint() lipgloss.Color {
	bg, err := colorful.Hex(string(t.Background))
	if err != nil {
		return t.Glow
	}
	glow, err := colorful.Hex(string(t.Glow))
	if err != nil {
		return t.Background
	}
	return lipgloss.Color(bg.BlendLab(glow, 0.35).Clamped().Hex())
}

// GradientText colours each rune of text along a blend from start to end.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	from, err := colorful.Hex(string(start))
	if err != nil {
		from = colorful.Color{R: 1, G: 1, B: 1}
	}
	to, err := colorful.Hex(string(end))
	if err != nil {
		to = from
	}

	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := from.BlendLab(to, t).Clamped()
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return b.String()
}

// ProgressBar renders a bar filled to percent (0..1) of width cells.
func (t Theme) ProgressBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(percent*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	fill := GradientText(strings.Repeat("█", filled), t.Primary, t.Secondary)
	rest := lipgloss.NewStyle().Foreground(t.Muted).Render(strings.Repeat("░", width-filled))
	return fill + rest
}

// Separator renders a decorative rule of the given width.
func (t Theme) Separator(width int) string {
	if width < 8 {
		return strings.Repeat("─", max(width, 0))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-2)
	right := strings.Repeat("─", width-mid-1)
	return lipgloss.NewStyle().Foreground(t.Muted).Render(left + " ◆ " + right)
}

// SectionTitle renders a gradient heading followed by a rule filling width.
func (t Theme) SectionTitle(title string, width int) string {
	label := GradientText(strings.ToUpper(title), t.Primary, t.Accent)
	rest := width - len([]rune(title)) - 1
	if rest <= 0 {
		return label
	}
	return label + " " + lipgloss.NewStyle().Foreground(t.Muted).Render(strings.Repeat("─", rest))
}
