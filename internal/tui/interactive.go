package tui

import (
	"log"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/sanketxmishra/folio/internal/canvas"
	"github.com/sanketxmishra/folio/internal/content"
	"github.com/sanketxmishra/folio/internal/sched"
	"github.com/sanketxmishra/folio/internal/screen"
	"github.com/sanketxmishra/folio/internal/starfield"
	"github.com/sanketxmishra/folio/internal/theme"
	"github.com/sanketxmishra/folio/internal/typewriter"
)

const (
	minHeroRows = 7
	maxHeroRows = 14
	chromeRows  = 2 // nav bar and help line
)

type frameMsg time.Time

// Options configures the interactive portfolio.
type Options struct {
	Profile    *content.Profile
	Theme      theme.Theme
	Starfield  starfield.Config
	Typewriter typewriter.Config
	Seed       int64
	FPS        int
	// Start is the scheduler origin. Zero means time.Now().
	Start time.Time
}

// Model is the terminal portfolio: a starfield hero with the typed role line
// above a scrollable page of sections.
type Model struct {
	profile *content.Profile
	theme   theme.Theme
	styles  theme.Styles
	keys    keyMap
	help    help.Model
	vp      viewport.Model

	queue   *sched.Queue
	window  *screen.Window
	canvas  *canvas.Canvas
	field   *starfield.Field
	writer  *typewriter.Sequencer
	handles []sched.Handle

	spring       harmonica.Spring
	scrollPos    float64
	scrollVel    float64
	scrollTarget float64
	scrolling    bool
	anchors      map[string]int

	width, height int
	heroRows      int
	fps           int
	ready         bool
	mounted       bool
	quitting      bool
}

func New(opts Options) (Model, error) {
	p := opts.Profile
	if p == nil {
		p = content.Default()
	}
	if opts.Theme.Name == "" {
		opts.Theme = theme.Default
	}
	if opts.FPS <= 0 {
		opts.FPS = sched.DefaultFPS
	}
	if opts.Start.IsZero() {
		opts.Start = time.Now()
	}
	if err := opts.Starfield.Validate(); err != nil {
		return Model{}, err
	}
	tw := opts.Typewriter
	if len(tw.Roles) == 0 {
		tw.Roles = p.Roles
	}

	q := sched.NewQueue(opts.Start)
	writer, err := typewriter.New(tw, q)
	if err != nil {
		return Model{}, err
	}
	cv := canvas.New(0, 0)

	return Model{
		profile: p,
		theme:   opts.Theme,
		styles:  opts.Theme.Styles(),
		keys:    newKeyMap(),
		help:    help.New(),
		queue:   q,
		window:  screen.NewWindow(0, 0),
		canvas:  cv,
		field:   starfield.New(cv, opts.Starfield, rand.New(rand.NewSource(opts.Seed)), q),
		writer:  writer,
		spring:  harmonica.NewSpring(harmonica.FPS(opts.FPS), 6.0, 1.0),
		anchors: make(map[string]int),
		fps:     opts.FPS,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.stop()
			return m, tea.Quit
		}
		if sec, ok := content.SectionByKey(msg.String()); ok {
			m.scrollTo(sec.ID)
			return m, nil
		}
		if !m.ready {
			return m, nil
		}
		m.scrolling = false
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		if m.quitting {
			return m, nil
		}
		m.queue.Pump(time.Time(msg))
		m.stepScroll()
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.heroRows = min(max(h/3, minHeroRows), maxHeroRows)
	m.window.Set(w*2, m.heroRows*4)

	vpHeight := max(h-m.heroRows-chromeRows, 1)
	if !m.ready {
		m.vp = viewport.New(w, vpHeight)
		m.ready = true
	} else {
		m.vp.Width, m.vp.Height = w, vpHeight
	}
	m.help.Width = w

	body, anchors := renderSections(m.profile, m.theme, m.styles, w)
	m.vp.SetContent(body)
	m.anchors = anchors
	log.Printf("tui: resize %dx%d hero=%d viewport=%d", w, h, m.heroRows, vpHeight)

	if !m.mounted {
		m.mount()
	}
}

// mount starts the animation subsystems once the terminal size is known.
func (m *Model) mount() {
	m.mounted = true
	m.handles = append(m.handles, m.field.Start(m.window), m.writer.Start())
	log.Printf("tui: mounted at %s", m.queue.Now().Format(time.RFC3339Nano))
}

func (m *Model) stop() {
	m.quitting = true
	sched.StopAll(m.handles...)
	m.handles = nil
	st := m.queue.Stats()
	log.Printf("tui: stopped (scheduled=%d fired=%d cancelled=%d pending=%d)",
		st.Scheduled, st.Fired, st.Cancelled, m.queue.Pending())
}

func (m *Model) scrollTo(id string) {
	offset, ok := m.anchors[id]
	if !ok || !m.ready {
		return
	}
	limit := max(m.vp.TotalLineCount()-m.vp.Height, 0)
	m.scrollTarget = float64(min(offset, limit))
	m.scrollPos = float64(m.vp.YOffset)
	m.scrolling = true
}

func (m *Model) stepScroll() {
	if !m.scrolling {
		return
	}
	m.scrollPos, m.scrollVel = m.spring.Update(m.scrollPos, m.scrollVel, m.scrollTarget)
	if math.Abs(m.scrollPos-m.scrollTarget) < 0.5 && math.Abs(m.scrollVel) < 0.5 {
		m.scrollPos, m.scrollVel = m.scrollTarget, 0
		m.scrolling = false
	}
	m.vp.SetYOffset(int(math.Round(m.scrollPos)))
}

func (m Model) View() string {
	if !m.ready {
		return "\n  loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.navBar(),
		m.hero(),
		m.vp.View(),
		m.help.View(m.keys),
	)
}

func (m Model) navBar() string {
	items := []string{m.styles.Title.Render(m.profile.Name)}
	for _, s := range content.Sections() {
		items = append(items, m.styles.NavKey.Render(s.Key)+" "+m.styles.Nav.Render(s.Title))
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(strings.Join(items, "   "))
}

func (m Model) hero() string {
	return renderHero(m.canvas, m.theme, m.styles, m.profile, m.writer, m.width, m.heroRows)
}

// Run starts the interactive portfolio on the terminal.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && !fm.quitting {
		fm.stop()
	}
	return nil
}
