package main

import (
	"fmt"
	"image"

	"github.com/veandco/go-sdl2/sdl"
)

// canvas is a streaming texture holding the latest color buffer.
type canvas struct {
	renderer *sdl.Renderer
	texture  *sdl.Texture
	w, h     int
}

func newCanvas(r *sdl.Renderer, w, h int) (*canvas, error) {
	t, err := r.CreateTexture(
		// byte order R, G, B, A on little-endian hosts, same as image.RGBA
		sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING, // only textures with TEXTUREACCESS_STREAMING can be locked
		int32(w),
		int32(h),
	)
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}

	return &canvas{
		renderer: r,
		texture:  t,
		w:        w,
		h:        h,
	}, nil
}

func (c *canvas) close() {
	c.texture.Destroy()
}

// upload copies img into the texture row by row, the texture pitch may be
// wider than the image stride.
func (c *canvas) upload(img *image.RGBA) error {
	if img.Rect.Dx() != c.w || img.Rect.Dy() != c.h {
		return fmt.Errorf("upload: image %v does not fit canvas %dx%d", img.Rect, c.w, c.h)
	}

	data, pitch, err := c.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("lock texture: %w", err)
	}
	defer c.texture.Unlock()

	rowBytes := 4 * c.w
	for y := 0; y < c.h; y++ {
		copy(data[y*pitch:y*pitch+rowBytes], img.Pix[y*img.Stride:y*img.Stride+rowBytes])
	}
	return nil
}

// draw stretches the texture over the whole render target.
func (c *canvas) draw() error {
	if err := c.renderer.Copy(c.texture, nil, nil); err != nil {
		return fmt.Errorf("copy texture: %w", err)
	}
	return nil
}
