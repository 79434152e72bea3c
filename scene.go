package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/joshvictor1024/mandelbrot-explorer/pkg/fractal"
	"github.com/veandco/go-sdl2/sdl"
)

func sdlInit(title string, w, h int) (*sdl.Window, *sdl.Renderer, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_TIMER); err != nil {
		return nil, nil, fmt.Errorf("sdl init: %w", err)
	}
	sdl.StopTextInput()

	window, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(w), int32(h), sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, nil, fmt.Errorf("create window: %w", err)
	}

	// vsync paces the frame loop
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, nil, fmt.Errorf("create renderer: %w", err)
	}

	return window, renderer, nil
}

func sdlClose(window *sdl.Window, renderer *sdl.Renderer) {
	renderer.Destroy()
	window.Destroy()
	sdl.Quit()
}

type scene struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	canvas   *canvas
	sim      *fractal.Simulation
	logger   *slog.Logger
	title    string
}

func newScene(w *sdl.Window, r *sdl.Renderer, sim *fractal.Simulation, logger *slog.Logger) (*scene, error) {
	size := sim.Engine().Size()
	c, err := newCanvas(r, size.X, size.Y)
	if err != nil {
		return nil, err
	}
	return &scene{
		window:   w,
		renderer: r,
		canvas:   c,
		sim:      sim,
		logger:   logger,
	}, nil
}

func (s *scene) close() {
	s.canvas.close()
}

// update advances the simulation one frame and uploads the image if it changed.
func (s *scene) update(in fractal.InputState) error {
	if !s.sim.Advance(in) {
		return nil
	}
	st := s.sim.Status()
	logPass(s.logger, st)

	if title := windowTitle + " - " + statusText(st); title != s.title {
		s.window.SetTitle(title)
		s.title = title
	}
	return s.canvas.upload(s.sim.Image())
}

func (s *scene) draw() error {
	if err := s.renderer.Clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	if err := s.canvas.draw(); err != nil {
		return err
	}
	s.renderer.Present()
	return nil
}

// pollEvents drains the SDL event queue and reports whether to keep running.
func pollEvents(logger *slog.Logger) bool {
	run := true
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch t := e.(type) {
		case *sdl.QuitEvent:
			logger.Info("quit event")
			run = false
		case *sdl.KeyboardEvent:
			if t.Type == sdl.KEYDOWN && t.Keysym.Sym == sdl.K_ESCAPE {
				logger.Info("esc event")
				run = false
			}
		}
	}
	return run
}

func runSDL(ctx context.Context, sim *fractal.Simulation, logger *slog.Logger) error {
	size := sim.Engine().Size()
	window, renderer, err := sdlInit(windowTitle, size.X, size.Y)
	if err != nil {
		return err
	}
	defer sdlClose(window, renderer)

	s, err := newScene(window, renderer, sim, logger)
	if err != nil {
		return err
	}
	defer s.close()

	for pollEvents(logger) {
		if ctx.Err() != nil {
			logger.Info("interrupted")
			return nil
		}
		if err := s.update(keyboardState(sdl.GetKeyboardState())); err != nil {
			return err
		}
		if err := s.draw(); err != nil {
			return err
		}
	}
	return nil
}
