package main

import (
	"github.com/joshvictor1024/mandelbrot-explorer/pkg/fractal"
	"github.com/veandco/go-sdl2/sdl"
)

var sdlScancodes = map[fractal.Key]int{
	fractal.KeyLeft:   int(sdl.SCANCODE_LEFT),
	fractal.KeyRight:  int(sdl.SCANCODE_RIGHT),
	fractal.KeyUp:     int(sdl.SCANCODE_UP),
	fractal.KeyDown:   int(sdl.SCANCODE_DOWN),
	fractal.KeyA:      int(sdl.SCANCODE_A),
	fractal.KeyD:      int(sdl.SCANCODE_D),
	fractal.KeyW:      int(sdl.SCANCODE_W),
	fractal.KeyS:      int(sdl.SCANCODE_S),
	fractal.KeyMinus:  int(sdl.SCANCODE_MINUS),
	fractal.KeyEquals: int(sdl.SCANCODE_EQUALS),
	fractal.KeyE:      int(sdl.SCANCODE_E),
	fractal.KeyQ:      int(sdl.SCANCODE_Q),
	fractal.KeyR:      int(sdl.SCANCODE_R),
}

// keyboardState is the SDL keyboard snapshot for one frame.
// The slice is owned by SDL and refreshed by the event pump.
type keyboardState []uint8

func (ks keyboardState) IsPressed(k fractal.Key) bool {
	sc, ok := sdlScancodes[k]
	if !ok || sc >= len(ks) {
		return false
	}
	return ks[sc] != 0
}
