package types

// Pointi is a pixel position or a pixel-grid size.
type Pointi struct {
	X, Y int
}

// Pointf64 is a point in the complex plane, X real and Y imaginary.
type Pointf64 struct {
	X, Y float64
}

// Rectf64 is an axis-aligned rectangle with origin (X, Y) at its minimum corner.
type Rectf64 struct {
	X, Y float64
	W, H float64
}

func (r Rectf64) Center() Pointf64 {
	return Pointf64{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Lerp maps fractions (fx, fy) in [0,1] of the rectangle to a point inside it.
func (r Rectf64) Lerp(fx, fy float64) Pointf64 {
	return Pointf64{X: r.X + r.W*fx, Y: r.Y + r.H*fy}
}

type Recti struct {
	X, Y int
	W, H int
}

func (r Recti) Area() int {
	return r.W * r.H
}

// Contains reports whether p lies in [X, X+W) x [Y, Y+H).
func (r Recti) Contains(p Pointi) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}
