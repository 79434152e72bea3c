package fractal

// escapeRadiusSq is |z|^2 beyond which the orbit is known to diverge.
const escapeRadiusSq = 4.0

// PixelState is the last computed iterate of z = z^2 + c for one pixel.
// The zero value is a fresh pixel at z = 0.
type PixelState struct {
	X, Y     float64
	XSq, YSq float64
	Iter     int
}

// Escaped reports whether the orbit has left the radius 2 disc.
func (ps *PixelState) Escaped() bool {
	return ps.XSq+ps.YSq > escapeRadiusSq
}

// Iterate continues the orbit of c = cre + i*cim from the saved iterate
// until it escapes or reaches maxIt iterations.
// Stopping and calling Iterate again with a larger maxIt gives the same
// state as a single call with the larger maxIt.
func (ps *PixelState) Iterate(cre, cim float64, maxIt int) {
	x, y, xSq, ySq, it := ps.X, ps.Y, ps.XSq, ps.YSq, ps.Iter
	for xSq+ySq <= escapeRadiusSq && it < maxIt {
		// z = z ^ 2 + c
		y = 2*x*y + cim
		x = xSq - ySq + cre
		xSq = x * x
		ySq = y * y
		it += 1
	}
	ps.X, ps.Y, ps.XSq, ps.YSq, ps.Iter = x, y, xSq, ySq, it
}
