package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/joshvictor1024/mandelbrot-explorer/pkg/fractal"
	"github.com/spf13/cobra"
)

const windowTitle = "Mandelbrot set"

func init() {
	// SDL and ebiten both need the main goroutine on the main OS thread.
	runtime.LockOSThread()
}

type options struct {
	cfg     fractal.Config
	backend string
	palette string
	verbose bool
}

func mainCmd() *cobra.Command {
	opts := &options{cfg: fractal.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "mandelbrot",
		Short: "Explore the Mandelbrot set with the keyboard",
		Long: `Opens a window showing the Mandelbrot set, refined progressively while idle.

Keys: arrows/WASD pan, = and - zoom in and out, E and Q raise and lower the
iteration ceiling, R resets the view, Esc quits.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.cfg.Width, "width", opts.cfg.Width, "window width in pixels")
	flags.IntVar(&opts.cfg.Height, "height", opts.cfg.Height, "window height in pixels")
	flags.IntVar(&opts.cfg.MaxIterations, "max-iter", opts.cfg.MaxIterations, "initial iteration ceiling")
	flags.StringVar(&opts.cfg.Region, "region", opts.cfg.Region,
		"start and reset view: "+strings.Join(fractal.RegionNames(), ", "))
	flags.StringVar(&opts.palette, "palette", "gradient", "coloring: gradient or gray")
	flags.StringVar(&opts.backend, "backend", "sdl", "window backend: sdl or ebiten")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every computation pass")

	return cmd
}

func runCmd(cmd *cobra.Command, opts *options) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	palette, err := fractal.PaletteByName(opts.palette)
	if err != nil {
		return err
	}
	opts.cfg.Palette = palette
	if err := opts.cfg.Validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	sim := fractal.NewSimulation(opts.cfg)
	logger.Info("starting",
		"backend", opts.backend,
		"size", fmt.Sprintf("%dx%d", opts.cfg.Width, opts.cfg.Height),
		"region", opts.cfg.Region,
		"maxIter", opts.cfg.MaxIterations)

	switch opts.backend {
	case "sdl":
		err = runSDL(ctx, sim, logger)
	case "ebiten":
		err = runEbiten(ctx, sim, logger)
	default:
		err = fmt.Errorf("unknown backend %q", opts.backend)
	}
	if err != nil {
		return err
	}
	logger.Info("quit")
	return nil
}

// logPass records a computation pass that just finished.
func logPass(logger *slog.Logger, st fractal.Status) {
	logger.Debug("pass",
		"depth", st.Depth,
		"maxIter", st.MaxIterations,
		"view", st.Viewport.String())
}

func statusText(st fractal.Status) string {
	state := "refining"
	if st.Done {
		state = "done"
	}
	return fmt.Sprintf("depth %d/%d (%s)", st.Depth, st.MaxIterations, state)
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
