package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/joshvictor1024/mandelbrot-explorer/pkg/fractal"
)

var ebitenKeys = map[fractal.Key]ebiten.Key{
	fractal.KeyLeft:   ebiten.KeyArrowLeft,
	fractal.KeyRight:  ebiten.KeyArrowRight,
	fractal.KeyUp:     ebiten.KeyArrowUp,
	fractal.KeyDown:   ebiten.KeyArrowDown,
	fractal.KeyA:      ebiten.KeyA,
	fractal.KeyD:      ebiten.KeyD,
	fractal.KeyW:      ebiten.KeyW,
	fractal.KeyS:      ebiten.KeyS,
	fractal.KeyMinus:  ebiten.KeyMinus,
	fractal.KeyEquals: ebiten.KeyEqual,
	fractal.KeyE:      ebiten.KeyE,
	fractal.KeyQ:      ebiten.KeyQ,
	fractal.KeyR:      ebiten.KeyR,
}

type ebitenInput struct{}

func (ebitenInput) IsPressed(k fractal.Key) bool {
	ek, ok := ebitenKeys[k]
	return ok && ebiten.IsKeyPressed(ek)
}

// game implements ebiten.Game on top of a Simulation.
type game struct {
	ctx    context.Context
	sim    *fractal.Simulation
	logger *slog.Logger

	frame *ebiten.Image
	dirty bool
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		g.logger.Info("esc event")
		return ebiten.Termination
	}
	if g.ctx.Err() != nil {
		g.logger.Info("interrupted")
		return ebiten.Termination
	}

	if g.sim.Advance(ebitenInput{}) {
		logPass(g.logger, g.sim.Status())
		g.dirty = true
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.dirty {
		g.frame.WritePixels(g.sim.Image().Pix)
		g.dirty = false
	}
	screen.DrawImage(g.frame, &ebiten.DrawImageOptions{})

	st := g.sim.Status()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\n%s\nTPS: %0.1f",
		statusText(st), st.Viewport, ebiten.ActualTPS()))
}

func (g *game) Layout(_, _ int) (int, int) {
	size := g.sim.Engine().Size()
	return size.X, size.Y
}

func runEbiten(ctx context.Context, sim *fractal.Simulation, logger *slog.Logger) error {
	size := sim.Engine().Size()
	ebiten.SetWindowSize(size.X, size.Y)
	ebiten.SetWindowTitle(windowTitle)

	g := &game{
		ctx:    ctx,
		sim:    sim,
		logger: logger,
		frame:  ebiten.NewImage(size.X, size.Y),
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
