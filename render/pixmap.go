// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/png"
	"os"

	"github.com/gogpu/pathfill"
)

// Pixmap is a rectangular RGBA8 pixel buffer used as the render target
// for CPU fragment dispatch.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA, 4 bytes per pixel
}

// NewPixmap creates a transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data in row-major RGBA order.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel overwrites a single pixel.
func (p *Pixmap) SetPixel(x, y int, c pathfill.RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = to8(c.R)
	p.data[i+1] = to8(c.G)
	p.data[i+2] = to8(c.B)
	p.data[i+3] = to8(c.A)
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) pathfill.RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return pathfill.RGBA{}
	}
	i := (y*p.width + x) * 4
	return pathfill.RGBA{
		R: float32(p.data[i+0]) / 255,
		G: float32(p.data[i+1]) / 255,
		B: float32(p.data[i+2]) / 255,
		A: float32(p.data[i+3]) / 255,
	}
}

// BlendPixel composites a color over a single pixel (source-over,
// non-premultiplied).
func (p *Pixmap) BlendPixel(x, y int, c pathfill.RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	if c.A >= 1 {
		p.SetPixel(x, y, c)
		return
	}
	if c.A <= 0 {
		return
	}

	dst := p.GetPixel(x, y)
	outA := c.A + dst.A*(1-c.A)
	if outA <= 0 {
		p.SetPixel(x, y, pathfill.RGBA{})
		return
	}
	p.SetPixel(x, y, pathfill.RGBA{
		R: (c.R*c.A + dst.R*dst.A*(1-c.A)) / outA,
		G: (c.G*c.A + dst.G*dst.A*(1-c.A)) / outA,
		B: (c.B*c.A + dst.B*dst.A*(1-c.A)) / outA,
		A: outA,
	})
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c pathfill.RGBA) {
	r, g, b, a := to8(c.R), to8(c.G), to8(c.B), to8(c.A)
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG writes the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, p.ToImage())
}

func to8(v float32) uint8 {
	v *= 255
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
