package fractal

import (
	"fmt"
	"image/color"
	"math"
)

// Palette maps escape progress to a color.
// t is 1 - iter/depth: 0 for a pixel that never escaped, near 1 for one
// that escaped immediately.
type Palette interface {
	Color(t float64) color.RGBA
}

// Gradient interpolates linearly between evenly spaced color stops.
type Gradient []color.RGBA

// UltraFractal is the 16-stop palette the explorer draws with by default.
var UltraFractal = Gradient{
	{66, 30, 15, 255},
	{25, 7, 26, 255},
	{9, 1, 47, 255},
	{4, 4, 73, 255},
	{0, 7, 100, 255},
	{12, 44, 138, 255},
	{24, 82, 177, 255},
	{57, 125, 209, 255},
	{134, 181, 229, 255},
	{211, 236, 248, 255},
	{241, 233, 191, 255},
	{248, 201, 95, 255},
	{255, 170, 0, 255},
	{204, 128, 0, 255},
	{153, 87, 0, 255},
	{106, 52, 3, 255},
}

func (g Gradient) Color(t float64) color.RGBA {
	t = clamp01(t)
	pos := float64(len(g)-1) * t

	i := int(math.Floor(pos))
	j := i + 1
	if j >= len(g) {
		j = len(g) - 1
	}

	// 0 <= frac < 1
	frac := pos - float64(i)

	c1, c2 := g[i], g[j]
	return color.RGBA{
		R: lerp8(c1.R, c2.R, frac),
		G: lerp8(c1.G, c2.G, frac),
		B: lerp8(c1.B, c2.B, frac),
		A: 255,
	}
}

// MaxStep is the largest per-channel difference between neighbouring stops.
func (g Gradient) MaxStep() int {
	step := 0
	for i := 1; i < len(g); i++ {
		a, b := g[i-1], g[i]
		for _, d := range []int{
			int(a.R) - int(b.R),
			int(a.G) - int(b.G),
			int(a.B) - int(b.B),
		} {
			if d < 0 {
				d = -d
			}
			if d > step {
				step = d
			}
		}
	}
	return step
}

// Grayscale shades the blue channel, dark for slow escapes.
type Grayscale struct{}

func (Grayscale) Color(t float64) color.RGBA {
	shade := 255 - uint8(math.Round(255*(1-clamp01(t))))
	return color.RGBA{B: shade, A: 255}
}

// PaletteByName resolves a palette flag value.
func PaletteByName(name string) (Palette, error) {
	switch name {
	case "gradient", "":
		return UltraFractal, nil
	case "gray", "grayscale":
		return Grayscale{}, nil
	}
	return nil, fmt.Errorf("unknown palette %q", name)
}

func lerp8(a, b uint8, frac float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*frac))
}

func clamp01(t float64) float64 {
	if t < 0 || math.IsNaN(t) {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
