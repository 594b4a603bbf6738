package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/sanketxmishra/folio/internal/canvas"
	"github.com/sanketxmishra/folio/internal/config"
	"github.com/sanketxmishra/folio/internal/content"
	"github.com/sanketxmishra/folio/internal/export"
	"github.com/sanketxmishra/folio/internal/sched"
	"github.com/sanketxmishra/folio/internal/tui"
	"github.com/sanketxmishra/folio/internal/typewriter"
	"github.com/sanketxmishra/folio/internal/web"
)

// loadConfig layers defaults, preset, config file, environment and changed
// flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, *content.Profile, error) {
	if err := config.LoadEnv(); err != nil {
		return nil, nil, err
	}

	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		if err := cfg.Merge(configFile); err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = themeName
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("profile") {
		cfg.Profile = profilePath
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	prof := content.Default()
	if cfg.Profile != "" {
		p, err := content.Load(cfg.Profile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load profile: %w", err)
		}
		prof = p
	}
	return cfg, prof, nil
}

// setupLogging sends std log output to folio.log when FOLIO_DEBUG is set and
// discards it otherwise, since the terminal belongs to the renderer.
func setupLogging() (func(), error) {
	if !config.Debug() {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile("folio.log", "folio")
	if err != nil {
		return nil, err
	}
	return func() { f.Close() }, nil
}

func liveSeed(s int64) int64 {
	if s == 0 {
		return time.Now().UnixNano()
	}
	return s
}

func tuiOptions(cfg *config.Config, prof *content.Profile) tui.Options {
	return tui.Options{
		Profile:    prof,
		Theme:      cfg.ThemeValue(),
		Starfield:  cfg.StarfieldConfig(),
		Typewriter: cfg.TypewriterConfig(prof.Roles),
		Seed:       liveSeed(cfg.Seed),
		FPS:        cfg.FPS,
	}
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, prof, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	return tui.Run(tuiOptions(cfg, prof))
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, prof, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	// Without explicit --cols/--rows the hero tracks the terminal size.
	follow := !cmd.Flags().Changed("cols") && !cmd.Flags().Changed("rows") && term.IsTerminal(os.Stdout.Fd())
	if follow {
		if c, r, err := terminalHero(); err == nil {
			cols, rows = c, r
		}
	}

	r, err := tui.NewLiveRenderer(os.Stdout, tuiOptions(cfg, prof), cols, rows)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, time.Duration(duration*float64(time.Second)))
	defer cancel()

	if follow {
		go r.FollowSize(ctx, terminalHero, liveResizePoll)
	}

	if err := r.Run(ctx); err != nil {
		return err
	}
	fmt.Printf("rendered %d frames\n", r.Frames())
	return nil
}

const liveResizePoll = 250 * time.Millisecond

// terminalHero sizes the live hero to the terminal, leaving room for the
// separator and status lines.
func terminalHero() (int, int, error) {
	w, h, err := term.GetSize(os.Stdout.Fd())
	if err != nil {
		return 0, 0, err
	}
	return w, max(h-3, 1), nil
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, prof, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if runs < 1 {
		return fmt.Errorf("runs must be positive, got %d", runs)
	}

	n := int(duration * float64(time.Second) / float64(export.FrameInterval))
	if n < 1 {
		return fmt.Errorf("duration too short: %.3fs", duration)
	}

	start := time.Now()
	results, err := export.NewEnsemble(cfg.StarfieldConfig(), width, height, runs, cfg.Seed).Run(cmd.Context(), n)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	cycles, state, err := simulateTypewriter(cfg.TypewriterConfig(prof.Roles), n)
	if err != nil {
		return err
	}

	if jsonOut != "" {
		return export.NewReport(width, height, n, results).WriteJSON(jsonOut)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "SURFACE\t%dx%d\n", width, height)
	fmt.Fprintf(w, "SIMULATED\t%.2fs (%d frames)\n", duration, n)
	fmt.Fprintf(w, "ROLE CHANGES\t%d\n", cycles)
	fmt.Fprintf(w, "CURRENT ROLE\t%q (%s)\n", state.Text, state.Phase)
	fmt.Fprintf(w, "WALL TIME\t%v\n", elapsed)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "SEED\tSPAWNED\tRETIRED\tACTIVE\tPEAK")
	for _, r := range results {
		peak := 0.0
		for _, a := range r.Active {
			peak = max(peak, a)
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%.0f\n", r.Seed, r.Stats.Spawned, r.Stats.Retired, r.Stats.Active, peak)
	}
	w.Flush()

	fmt.Println()
	graph := asciigraph.Plot(results[0].Active,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("active streaks per frame (seed %d)", results[0].Seed)),
	)
	fmt.Println(graph)
	return nil
}

// simulateTypewriter steps a sequencer through n frames on a virtual clock
// and reports how many times the role changed.
func simulateTypewriter(cfg typewriter.Config, n int) (int, typewriter.State, error) {
	q := sched.NewQueue(time.Unix(0, 0))
	writer, err := typewriter.New(cfg, q)
	if err != nil {
		return 0, typewriter.State{}, err
	}
	handle := writer.Start()
	defer handle.Stop()

	cycles := 0
	last := writer.Index()
	for i := 0; i < n; i++ {
		q.Advance(export.FrameInterval)
		if idx := writer.Index(); idx != last {
			cycles++
			last = idx
		}
	}
	return cycles, writer.State(), nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	th := cfg.ThemeValue()

	var svg string
	if braille {
		cv := canvas.New(width, height)
		if _, err := export.Simulate(cmd.Context(), cv, cfg.StarfieldConfig(), cfg.Seed, width, height, frames, nil); err != nil {
			return err
		}
		svg = export.CanvasToSVG(cv, scale, th)
	} else {
		s := export.NewSVG(width, height, th)
		if _, err := export.Simulate(cmd.Context(), s, cfg.StarfieldConfig(), cfg.Seed, width, height, frames, nil); err != nil {
			return err
		}
		svg = s.String()
	}

	if outFile == "-" {
		_, err := io.WriteString(os.Stdout, svg)
		return err
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%dx%d, %d frames)\n", outFile, width, height, frames)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, prof, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Addr = addr
	}
	if cmd.Flags().Changed("resume") {
		cfg.Resume = resumePath
	}

	r, err := web.NewRouter(web.Options{
		Profile:    prof,
		Theme:      cfg.ThemeValue(),
		Starfield:  cfg.StarfieldConfig(),
		Typewriter: cfg.TypewriterConfig(prof.Roles),
		Seed:       cfg.Seed,
		Resume:     cfg.Resume,
	})
	if err != nil {
		return err
	}

	fmt.Printf("serving %s on %s\n", prof.Name, cfg.Addr)
	return r.Run(cfg.Addr)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tSTARS\tSPAWN\tTICK\tHOLD")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%dms\t%dms\t%dms\n",
			name, p.Starfield.Stars, p.Starfield.SpawnMs, p.Typewriter.TickMs, p.Typewriter.HoldMs)
	}
	return w.Flush()
}
