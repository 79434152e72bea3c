package fractal

import (
	"fmt"
	"sort"

	"github.com/joshvictor1024/mandelbrot-explorer/pkg/types"
)

const (
	PanStep    = 0.025
	ZoomFactor = 1.25
	DepthStep  = 64
)

// Viewport is the rectangle of the complex plane mapped onto the pixel grid.
// Pixel row 0 maps to YMin.
type Viewport struct {
	XMin, XRange float64
	YMin, YRange float64
}

// HomeViewport shows the whole set.
var HomeViewport = Viewport{XMin: -2.5, XRange: 3.5, YMin: -1.0, YRange: 2.0}

func (v Viewport) Rect() types.Rectf64 {
	return types.Rectf64{X: v.XMin, Y: v.YMin, W: v.XRange, H: v.YRange}
}

// At maps pixel p of a grid of the given size to its point c in the plane.
func (v Viewport) At(p, size types.Pointi) types.Pointf64 {
	return v.Rect().Lerp(float64(p.X)/float64(size.X), float64(p.Y)/float64(size.Y))
}

func (v Viewport) Valid() bool {
	return v.XRange > 0 && v.YRange > 0
}

func (v Viewport) String() string {
	c := v.Rect().Center()
	return fmt.Sprintf("center=(%.10g, %.10g) range=%.4gx%.4g", c.X, c.Y, v.XRange, v.YRange)
}

// Region is a rectangle of the Mandelbrot set given by its bounds.
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

func (r Region) Viewport() Viewport {
	return Viewport{XMin: r.Xmin, XRange: r.Xmax - r.Xmin, YMin: r.Ymin, YRange: r.Ymax - r.Ymin}
}

// Classic regions / landmarks in the Mandelbrot set
var Regions = map[string]Region{
	"default": {Xmin: -2.5, Xmax: 1.0, Ymin: -1.0, Ymax: 1.0},

	// Seahorse Valley – dense filaments and repeating "seahorse" curls
	"seahorse": {Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15},

	// Elephant Valley – large bulb with trunk-like tendrils
	"elephant": {Xmin: -1.85, Xmax: -1.75, Ymin: -0.10, Ymax: -0.02},

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	"spiral": {Xmin: -0.7435, Xmax: -0.7420, Ymin: 0.1310, Ymax: 0.1325},

	// Triple Spiral – threefold symmetric spiral structure
	"triple-spiral": {Xmin: -0.7480, Xmax: -0.7450, Ymin: 0.0950, Ymax: 0.0980},

	// Valley of the Dragon – deep, highly detailed spiral filaments
	"dragon": {Xmin: -0.7400, Xmax: -0.7350, Ymin: 0.1800, Ymax: 0.1850},

	// Minibrot in a Mini-Spiral – self-similar copy inside a spiral arm
	"mini-spiral": {Xmin: -1.7390, Xmax: -1.7375, Ymin: -0.0235, Ymax: -0.0220},
}

// RegionNames returns the keys of Regions in sorted order.
func RegionNames() []string {
	names := make([]string, 0, len(Regions))
	for name := range Regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Controller turns held keys into viewport and ceiling changes.
type Controller struct {
	Home       Viewport
	PanStep    float64
	ZoomFactor float64
	DepthStep  int
}

func NewController(home Viewport) *Controller {
	return &Controller{
		Home:       home,
		PanStep:    PanStep,
		ZoomFactor: ZoomFactor,
		DepthStep:  DepthStep,
	}
}

// Apply updates v and maxIter for one frame of input and reports whether
// previously computed pixel state is no longer valid.
// Raising the ceiling keeps the state; every other change discards it.
func (c *Controller) Apply(in InputState, v *Viewport, maxIter *int) (reset bool) {
	// iterations
	if in.IsPressed(KeyE) {
		*maxIter += c.DepthStep
	}
	if in.IsPressed(KeyQ) {
		reset = true
		*maxIter -= c.DepthStep
		if *maxIter < c.DepthStep {
			*maxIter = c.DepthStep
		}
	}

	if in.IsPressed(KeyR) {
		reset = true
		*v = c.Home
	}

	// movement
	if in.IsPressed(KeyLeft) || in.IsPressed(KeyA) {
		reset = true
		v.XMin -= c.PanStep * v.XRange
	}
	if in.IsPressed(KeyRight) || in.IsPressed(KeyD) {
		reset = true
		v.XMin += c.PanStep * v.XRange
	}
	if in.IsPressed(KeyUp) || in.IsPressed(KeyW) {
		reset = true
		v.YMin -= c.PanStep * v.YRange
	}
	if in.IsPressed(KeyDown) || in.IsPressed(KeyS) {
		reset = true
		v.YMin += c.PanStep * v.YRange
	}

	if in.IsPressed(KeyMinus) {
		reset = true
		c.zoomOut(v)
	}
	if in.IsPressed(KeyEquals) {
		reset = true
		c.zoomIn(v)
	}

	return reset
}

// zoomOut grows v by ZoomFactor around its center.
func (c *Controller) zoomOut(v *Viewport) {
	f := c.ZoomFactor
	v.XMin -= v.XRange * 0.5 * (f - 1)
	v.YMin -= v.YRange * 0.5 * (f - 1)
	v.XRange *= f
	v.YRange *= f
}

// zoomIn shrinks v by ZoomFactor around its center. It undoes zoomOut.
func (c *Controller) zoomIn(v *Viewport) {
	f := c.ZoomFactor
	v.XRange /= f
	v.YRange /= f
	v.XMin += v.XRange * 0.5 * (f - 1)
	v.YMin += v.YRange * 0.5 * (f - 1)
}
