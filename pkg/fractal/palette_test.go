package fractal

import (
	"image/color"
	"testing"
)

func TestGradientStops(t *testing.T) {
	g := UltraFractal
	last := len(g) - 1

	tests := []struct {
		t    float64
		want color.RGBA
	}{
		{0, g[0]},
		{1, g[last]},
		{-0.5, g[0]},
		{1.5, g[last]},
	}
	for i := range g {
		tests = append(tests, struct {
			t    float64
			want color.RGBA
		}{float64(i) / float64(last), g[i]})
	}

	for _, tt := range tests {
		if got := g.Color(tt.t); got != tt.want {
			t.Errorf("Color(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestGradientMidpoint(t *testing.T) {
	g := Gradient{{0, 0, 0, 255}, {200, 100, 50, 255}}
	if got, want := g.Color(0.5), (color.RGBA{100, 50, 25, 255}); got != want {
		t.Errorf("Color(0.5) = %v, want %v", got, want)
	}
	// decreasing channels interpolate downward
	g = Gradient{{200, 100, 50, 255}, {0, 0, 0, 255}}
	if got, want := g.Color(0.25), (color.RGBA{150, 75, 38, 255}); got != want {
		t.Errorf("Color(0.25) = %v, want %v", got, want)
	}
}

func TestGradientContinuity(t *testing.T) {
	g := UltraFractal
	if g.MaxStep() != 96 {
		t.Fatalf("MaxStep() = %d, want 96", g.MaxStep())
	}

	const depth = 250
	// a single iteration moves 15/250 of a stop
	limit := g.MaxStep()*(len(g)-1)/depth + 2

	for iter := 0; iter < depth; iter++ {
		a := g.Color(1 - progress(iter, depth))
		b := g.Color(1 - progress(iter+1, depth))
		for _, d := range []int{
			int(a.R) - int(b.R),
			int(a.G) - int(b.G),
			int(a.B) - int(b.B),
		} {
			if d < 0 {
				d = -d
			}
			if d > limit || d > g.MaxStep() {
				t.Fatalf("iter %d -> %d: %v -> %v jumps by %d", iter, iter+1, a, b, d)
			}
		}
		if a.A != 255 || b.A != 255 {
			t.Fatalf("alpha not opaque: %v %v", a, b)
		}
	}
}

func TestGrayscale(t *testing.T) {
	tests := []struct {
		t    float64
		want color.RGBA
	}{
		{1, color.RGBA{B: 255, A: 255}},
		{0, color.RGBA{B: 0, A: 255}},
		{0.5, color.RGBA{B: 127, A: 255}},
	}
	for _, tt := range tests {
		if got := (Grayscale{}).Color(tt.t); got != tt.want {
			t.Errorf("Color(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestPaletteByName(t *testing.T) {
	for _, name := range []string{"", "gradient", "gray", "grayscale"} {
		if _, err := PaletteByName(name); err != nil {
			t.Errorf("PaletteByName(%q): %v", name, err)
		}
	}
	if _, err := PaletteByName("rainbow"); err == nil {
		t.Error("PaletteByName(rainbow): expected error")
	}
}
