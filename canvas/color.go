package canvas

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight (non-premultiplied) RGBA colour with components in [0,1]
type Color struct {
	R, G, B, A float64
}

// Transparent is the cleared surface colour
var Transparent = Color{}

// HSLA builds a colour from hue in degrees, saturation and lightness in [0,1]
// and alpha in [0,1]
func HSLA(h, s, l, a float64) Color {
	c := colorful.Hsl(h, s, l).Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: a}
}

// RGBA255 builds a colour from 8-bit channels and an alpha in [0,1]
func RGBA255(r, g, b uint8, a float64) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: a,
	}
}

// ParseHex parses "#RRGGBB" or "#RGB" into an opaque colour
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// WithAlpha returns the colour with its alpha replaced
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// RGB quantises the colour channels, dropping alpha
func (c Color) RGB() RGB {
	return RGB{R: clamp(c.R * 255), G: clamp(c.G * 255), B: clamp(c.B * 255)}
}

// Hex formats the colour as "#rrggbb"
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}
