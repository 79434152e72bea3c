package fractal

import "image"

// Status is a snapshot of a Simulation for logging and on-screen display.
type Status struct {
	Viewport      Viewport
	Depth         int
	MaxIterations int
	Done          bool
}

// Simulation is the whole explorer state advanced once per frame.
type Simulation struct {
	Viewport      Viewport
	MaxIterations int

	controller *Controller
	engine     *Engine
	pending    bool
}

func NewSimulation(cfg Config) *Simulation {
	home := cfg.Home()
	return &Simulation{
		Viewport:      home,
		MaxIterations: cfg.MaxIterations,
		controller:    NewController(home),
		engine:        NewEngine(cfg.Width, cfg.Height, cfg.Palette),
		pending:       true,
	}
}

// Advance applies one frame of input and brings the image up to date.
// It reports whether the image changed.
func (s *Simulation) Advance(in InputState) bool {
	reset := s.controller.Apply(in, &s.Viewport, &s.MaxIterations) || s.pending
	s.pending = false
	return s.engine.Advance(s.Viewport, reset, s.MaxIterations)
}

// Image is the color buffer as of the last Advance.
func (s *Simulation) Image() *image.RGBA {
	return s.engine.Image()
}

func (s *Simulation) Engine() *Engine {
	return s.engine
}

func (s *Simulation) Status() Status {
	return Status{
		Viewport:      s.Viewport,
		Depth:         s.engine.Depth(),
		MaxIterations: s.MaxIterations,
		Done:          !s.pending && s.engine.Depth() >= s.MaxIterations,
	}
}
