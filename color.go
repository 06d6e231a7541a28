package pathfill

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float32
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float32(r) / 65535,
		G: float32(g) / 65535,
		B: float32(b) / 65535,
		A: float32(a) / 65535,
	}
}

func clamp255(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
