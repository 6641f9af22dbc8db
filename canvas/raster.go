package canvas

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
)

// RasterSurface is a Surface over a gogpu/gg software context
// Lighter is realised as a screen-blended layer, which brightens overlaps
// without the hard clipping of a plain additive sum
// The first drawing error is kept and reported by Err and EncodePNG
type RasterSurface struct {
	dc      *gg.Context
	op      Composite
	layered bool
	err     error
}

// NewRasterSurface creates a transparent surface of the given size
func NewRasterSurface(width, height int) *RasterSurface {
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.Transparent)
	return &RasterSurface{dc: dc}
}

// Size returns the pixel dimensions
func (s *RasterSurface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

// Resize reallocates the pixel buffer; non-positive sizes are ignored
func (s *RasterSurface) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.Flush()
	if err := s.dc.Resize(width, height); err != nil {
		s.fail(fmt.Errorf("resize %dx%d: %w", width, height, err))
		return
	}
	s.dc.ClearWithColor(gg.Transparent)
}

// SetComposite opens or closes the additive layer
func (s *RasterSurface) SetComposite(op Composite) {
	if op == s.op {
		return
	}
	switch op {
	case Lighter:
		s.dc.PushLayer(gg.BlendScreen, 1.0)
		s.layered = true
	default:
		s.popLayer()
	}
	s.op = op
}

// Clear resets the active target to transparent
func (s *RasterSurface) Clear() {
	s.dc.ClearWithColor(gg.Transparent)
}

// FillRect paints a solid rectangle
func (s *RasterSurface) FillRect(x, y, w, h float64, c Color) {
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.DrawRectangle(x, y, w, h)
	s.fail(s.dc.Fill())
}

// FillCircle paints a solid disc
func (s *RasterSurface) FillCircle(cx, cy, r float64, c Color) {
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.DrawCircle(cx, cy, r)
	s.fail(s.dc.Fill())
}

// FillGlow paints a disc filled with a three-stop radial gradient
func (s *RasterSurface) FillGlow(g Glow) {
	solid := gg.RGBA2(g.Color.R, g.Color.G, g.Color.B, g.Color.A)
	fade := gg.RGBA2(g.Color.R, g.Color.G, g.Color.B, 0)

	brush := gg.NewRadialGradientBrush(g.X, g.Y, g.Inner, g.Outer).
		AddColorStop(0, solid).
		AddColorStop(g.Plateau, solid).
		AddColorStop(1, fade)

	s.dc.SetFillBrush(brush)
	s.dc.DrawCircle(g.X, g.Y, g.Outer)
	s.fail(s.dc.Fill())
}

// Err returns the first drawing error, if any
func (s *RasterSurface) Err() error {
	return s.err
}

func (s *RasterSurface) fail(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

// Flush composites any open additive layer onto the base image
func (s *RasterSurface) Flush() {
	s.popLayer()
	s.op = SourceOver
}

func (s *RasterSurface) popLayer() {
	if s.layered {
		s.dc.PopLayer()
		s.layered = false
	}
}

// Image flushes and returns the composed frame
func (s *RasterSurface) Image() image.Image {
	s.Flush()
	return s.dc.Image()
}

// EncodePNG flushes and writes the frame as PNG
// Nothing is written when an earlier draw failed
func (s *RasterSurface) EncodePNG(w io.Writer) error {
	s.Flush()
	if s.err != nil {
		return fmt.Errorf("draw: %w", s.err)
	}
	return s.dc.EncodePNG(w)
}

// Close releases the drawing context
func (s *RasterSurface) Close() error {
	return s.dc.Close()
}
