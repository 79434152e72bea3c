package fractal

import (
	"errors"
	"fmt"
	"strings"
)

// Config holds the startup settings of the explorer.
type Config struct {
	Width, Height int
	MaxIterations int
	Region        string
	Palette       Palette
}

func DefaultConfig() Config {
	return Config{
		Width:         800,
		Height:        450,
		MaxIterations: 64,
		Region:        "default",
		Palette:       UltraFractal,
	}
}

// Home is the viewport the explorer starts at and resets to.
func (c Config) Home() Viewport {
	r, ok := Regions[c.Region]
	if !ok {
		return HomeViewport
	}
	return r.Viewport()
}

var ErrInvalidConfig = errors.New("invalid config")

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.MaxIterations < DepthStep {
		return fmt.Errorf("%w: max iterations %d below %d", ErrInvalidConfig, c.MaxIterations, DepthStep)
	}
	if _, ok := Regions[c.Region]; !ok {
		return fmt.Errorf("%w: unknown region %q (want one of %s)",
			ErrInvalidConfig, c.Region, strings.Join(RegionNames(), ", "))
	}
	return nil
}
