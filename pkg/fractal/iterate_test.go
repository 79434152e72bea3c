package fractal

import "testing"

var orbitPoints = []struct {
	name     string
	cre, cim float64
}{
	{"corner", -2.5, -1.0},
	{"cardioid", -0.1, 0.1},
	{"pinch", -0.75, 0},
	{"seahorse", -0.7453, 0.1127},
	{"outside", 0.3, 0.5},
	{"period2", -1.0, 0.0},
	{"tip", -2.0, 0.0},
}

func TestIterateResume(t *testing.T) {
	for _, pt := range orbitPoints {
		t.Run(pt.name, func(t *testing.T) {
			for _, depth := range []int{1, 50, 500} {
				var whole PixelState
				whole.Iterate(pt.cre, pt.cim, depth)

				for _, split := range []int{0, 1, 7, depth / 2, depth - 1, depth} {
					if split < 0 || split > depth {
						continue
					}
					var parts PixelState
					parts.Iterate(pt.cre, pt.cim, split)
					parts.Iterate(pt.cre, pt.cim, depth)

					if parts != whole {
						t.Errorf("depth %d split at %d: got %+v, want %+v", depth, split, parts, whole)
					}
				}
			}
		})
	}
}

func TestIterateEscapes(t *testing.T) {
	tests := []struct {
		cre, cim float64
		maxIt    int
		want     int
		escaped  bool
	}{
		// |c|^2 = 7.25 escapes on the first step
		{-2.5, -1.0, 32, 1, true},
		{2, 2, 100, 1, true},
		// bounded orbits run to the cap
		{0, 0, 100, 100, false},
		{-1, 0, 100, 100, false},
		{-0.75, 0, 10000, 10000, false},
		{-2, 0, 1000, 1000, false},
		{0.25, 0, 1000, 1000, false},
		// cap of zero leaves the pixel untouched
		{-2.5, -1.0, 0, 0, false},
	}
	for _, tt := range tests {
		var ps PixelState
		ps.Iterate(tt.cre, tt.cim, tt.maxIt)
		if ps.Iter != tt.want {
			t.Errorf("Iterate(%v, %v, %d): iter = %d, want %d", tt.cre, tt.cim, tt.maxIt, ps.Iter, tt.want)
		}
		if ps.Escaped() != tt.escaped {
			t.Errorf("Iterate(%v, %v, %d): escaped = %v, want %v", tt.cre, tt.cim, tt.maxIt, ps.Escaped(), tt.escaped)
		}
	}
}

func TestIterateEscapedIsFinal(t *testing.T) {
	var ps PixelState
	ps.Iterate(0.5, 0.5, 1000)
	if !ps.Escaped() {
		t.Fatalf("expected 0.5+0.5i to escape, got %+v", ps)
	}
	saved := ps
	ps.Iterate(0.5, 0.5, 5000)
	if ps != saved {
		t.Errorf("escaped pixel moved: %+v -> %+v", saved, ps)
	}
}
