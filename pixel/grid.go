// Package pixel holds the packed 24-bit pixel grid the renderer draws into.
//
// A Grid is a dense Height×Width array of 0xRRGGBB values. It implements
// [image.Image] so the result can be inspected with the standard image tools.
package pixel

import (
	"image"
	"image/color"
)

// Grid is a row-major slice of packed 0xRRGGBB pixels.
type Grid struct {
	// Rect is the grid bounding box, always anchored at (0, 0).
	Rect image.Rectangle

	// Pix are the packed pixels; pixel (x, y) lives at Pix[y*Stride+x].
	Pix []uint32

	// Stride is the number of pixels between vertically adjacent pixels.
	Stride int
}

// NewGrid returns a zeroed (black) grid.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		Rect:   image.Rect(0, 0, width, height),
		Pix:    make([]uint32, width*height),
		Stride: width,
	}
}

func (g *Grid) Width() int  { return g.Rect.Dx() }
func (g *Grid) Height() int { return g.Rect.Dy() }

func (g *Grid) Bounds() image.Rectangle {
	return g.Rect
}

func (g *Grid) ColorModel() color.Model {
	return RGB24Model
}

func (g *Grid) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(g.Rect) {
		return color.Transparent
	}
	return Unpack(g.Pix[y*g.Stride+x])
}

// Set implements draw.Image.
func (g *Grid) Set(x, y int, c color.Color) {
	g.SetRGB(x, y, rgb24Model(c).(RGB))
}

// SetRGB stores c at (x, y). Out of bounds writes are ignored.
func (g *Grid) SetRGB(x, y int, c RGB) {
	if !(image.Point{X: x, Y: y}).In(g.Rect) {
		return
	}
	g.Pix[y*g.Stride+x] = c.Packed()
}

// RGBAt returns the color at (x, y), or black outside the grid.
func (g *Grid) RGBAt(x, y int) RGB {
	if !(image.Point{X: x, Y: y}).In(g.Rect) {
		return RGB{}
	}
	return Unpack(g.Pix[y*g.Stride+x])
}

// Row returns the packed pixels of row y. The slice aliases the grid.
func (g *Grid) Row(y int) []uint32 {
	if y < 0 || y >= g.Height() {
		return nil
	}
	return g.Pix[y*g.Stride : y*g.Stride+g.Width()]
}

// Fill sets every pixel to c.
func (g *Grid) Fill(c RGB) {
	v := c.Packed()
	for i := range g.Pix {
		g.Pix[i] = v
	}
}
