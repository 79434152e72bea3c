package fractal

import (
	"fmt"
	"image"

	"github.com/joshvictor1024/mandelbrot-explorer/pkg/types"
)

const (
	// InitialDepth is the depth of the first pass after a reset.
	InitialDepth = 32
	// DepthIncrement caps how much depth a single resume pass adds.
	DepthIncrement = 32
)

// Engine owns the per-pixel orbit state and the color buffer drawn from it.
// Pixels are resumed from their saved iterate while the viewport is unchanged.
type Engine struct {
	size    types.Pointi
	pixels  []PixelState // [y*w + x]
	img     *image.RGBA
	palette Palette
	depth   int
}

// NewEngine allocates state for a width x height grid.
// It panics if either dimension is not positive.
func NewEngine(width, height int, p Palette) *Engine {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("fractal: invalid engine size %dx%d", width, height))
	}
	if p == nil {
		p = UltraFractal
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if len(img.Pix) != 4*width*height {
		panic("fractal: color buffer does not match engine size")
	}
	return &Engine{
		size:    types.Pointi{X: width, Y: height},
		pixels:  make([]PixelState, width*height),
		img:     img,
		palette: p,
	}
}

func (e *Engine) Size() types.Pointi {
	return e.size
}

// Depth is the iteration depth the color buffer currently shows.
func (e *Engine) Depth() int {
	return e.depth
}

// Image returns the color buffer. Callers must not modify it.
func (e *Engine) Image() *image.RGBA {
	return e.img
}

// State returns the saved orbit of pixel p.
func (e *Engine) State(p types.Pointi) PixelState {
	if !(types.Recti{W: e.size.X, H: e.size.Y}).Contains(p) {
		panic(fmt.Sprintf("fractal: pixel %v outside %v", p, e.size))
	}
	return e.pixels[p.Y*e.size.X+p.X]
}

// NextDepth returns the target of the pass Advance would run next without a
// reset, and false once the ceiling has been reached.
func (e *Engine) NextDepth(maxIter int) (int, bool) {
	if e.depth >= maxIter {
		return e.depth, false
	}
	next := e.depth + max(1, min(e.depth, DepthIncrement))
	return min(next, maxIter), true
}

// Advance brings the color buffer up to date for one frame and reports
// whether any computation ran.
//
// A reset discards all orbits and runs a shallow pass. Otherwise depth grows
// toward maxIter, each pass resuming every pixel where the previous one
// stopped. Once maxIter is reached the buffer is left as is.
func (e *Engine) Advance(v Viewport, reset bool, maxIter int) bool {
	if reset {
		e.Reset()
		e.Compute(v, min(InitialDepth, maxIter))
		return true
	}
	next, ok := e.NextDepth(maxIter)
	if !ok {
		return false
	}
	e.Compute(v, next)
	return true
}

// Reset zeroes every pixel's orbit.
func (e *Engine) Reset() {
	clear(e.pixels)
	e.depth = 0
}

// Compute extends every pixel's orbit to maxIter and rewrites the color buffer.
func (e *Engine) Compute(v Viewport, maxIter int) {
	e.depth = maxIter

	w, h := e.size.X, e.size.Y
	for sy := 0; sy < h; sy++ {
		row := e.pixels[sy*w : (sy+1)*w]
		pix := e.img.Pix[sy*e.img.Stride:]
		for sx := range row {
			c := v.At(types.Pointi{X: sx, Y: sy}, e.size)

			ps := &row[sx]
			ps.Iterate(c.X, c.Y, maxIter)

			col := e.palette.Color(1 - progress(ps.Iter, maxIter))
			pix[4*sx+0] = col.R
			pix[4*sx+1] = col.G
			pix[4*sx+2] = col.B
			pix[4*sx+3] = col.A
		}
	}
}

// progress is iter/depth, with depth 0 counting as no progress.
func progress(iter, depth int) float64 {
	if depth <= 0 {
		return 0
	}
	return float64(iter) / float64(depth)
}
