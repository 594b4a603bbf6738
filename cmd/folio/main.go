package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile  string
	preset      string
	profilePath string
	themeName   string
	seed        int64
	fps         int

	duration   float64
	cols       int
	rows       int
	width      int
	height     int
	frames     int
	outFile    string
	braille    bool
	scale      float64
	addr       string
	resumePath string
	runs       int
	jsonOut    string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers the folio commands. With no subcommand the root opens
// the interactive terminal portfolio.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "folio",
		Short:        "terminal portfolio with a starfield hero",
		SilenceUsage: true,
		RunE:         runInteractive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&profilePath, "profile", "", "profile file path (yaml)")
	pf.StringVar(&themeName, "theme", "", "colour theme")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock for live views)")
	pf.IntVar(&fps, "fps", 0, "frames per second")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "render the hero animation to the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&duration, "time", 10.0, "duration in seconds")
	liveCmd.Flags().IntVar(&cols, "cols", 80, "hero width in cells")
	liveCmd.Flags().IntVar(&rows, "rows", 12, "hero height in cells")

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "run the animation on a virtual clock and report",
		RunE:  runSimulate,
	}
	simulateCmd.Flags().Float64Var(&duration, "time", 10.0, "simulated seconds")
	simulateCmd.Flags().IntVar(&width, "width", 800, "surface width in pixels")
	simulateCmd.Flags().IntVar(&height, "height", 400, "surface height in pixels")
	simulateCmd.Flags().IntVar(&runs, "runs", 1, "number of seeds to simulate in parallel")
	simulateCmd.Flags().StringVar(&jsonOut, "json", "", "write a json report to this file (- for stdout)")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "write an SVG snapshot of the starfield",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().StringVarP(&outFile, "out", "o", "starfield.svg", "output file (- for stdout)")
	snapshotCmd.Flags().IntVar(&frames, "frames", 120, "frames to simulate")
	snapshotCmd.Flags().IntVar(&width, "width", 800, "surface width in pixels")
	snapshotCmd.Flags().IntVar(&height, "height", 400, "surface height in pixels")
	snapshotCmd.Flags().BoolVar(&braille, "braille", false, "render through the braille canvas")
	snapshotCmd.Flags().Float64Var(&scale, "scale", 4.0, "braille dot spacing in svg units")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the portfolio page over http",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080 or $PORT)")
	serveCmd.Flags().StringVar(&resumePath, "resume", "", "resume pdf served at /resume.pdf")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list animation presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(liveCmd, simulateCmd, snapshotCmd, serveCmd, presetsCmd)
	return rootCmd
}
