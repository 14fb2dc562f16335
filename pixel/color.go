package pixel

import (
	"fmt"
	"image/color"
)

// RGB24Model converts any color to an RGB value, dropping alpha.
var RGB24Model color.Model = color.ModelFunc(rgb24Model)

// RGB is a 24-bit color with three 8-bit channels.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Unpack splits a 0xRRGGBB value into its channels.
func Unpack(v uint32) RGB {
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// Packed returns the color as 0xRRGGBB.
func (c RGB) Packed() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

func (c RGB) String() string {
	return fmt.Sprintf("#%06x", c.Packed())
}

func rgb24Model(c color.Color) color.Color {
	if _, ok := c.(RGB); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}
