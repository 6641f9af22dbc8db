package canvas

// Composite selects how subsequent fills combine with existing content
type Composite uint8

const (
	// SourceOver alpha-blends the source over the destination
	SourceOver Composite = iota
	// Lighter adds source to destination so overlaps brighten
	Lighter
)

// String returns the canvas name of the operation
func (c Composite) String() string {
	switch c {
	case Lighter:
		return "lighter"
	default:
		return "source-over"
	}
}

// Glow describes a radial gradient disc: solid colour from the centre out to
// Plateau of the gradient span, fading to transparent at Outer
type Glow struct {
	X, Y    float64
	Inner   float64 // gradient start radius
	Outer   float64 // gradient end radius, also the painted disc radius
	Plateau float64 // gradient offset in [0,1] where the fade begins
	Color   Color
}

// Alpha returns the glow alpha at distance d from the centre
func (g Glow) Alpha(d float64) float64 {
	if d > g.Outer {
		return 0
	}
	span := g.Outer - g.Inner
	if span <= 0 {
		return g.Color.A
	}
	t := (d - g.Inner) / span
	if t <= g.Plateau {
		return g.Color.A
	}
	if g.Plateau >= 1 {
		return g.Color.A
	}
	f := 1 - (t-g.Plateau)/(1-g.Plateau)
	if f < 0 {
		f = 0
	}
	return g.Color.A * f
}

// Surface is the drawing target of an effect; all coordinates are pixels
type Surface interface {
	// Size returns the surface dimensions in pixels
	Size() (width, height int)

	// Resize reallocates the surface; content is cleared
	Resize(width, height int)

	// SetComposite selects the compositing operation for later fills
	SetComposite(op Composite)

	// Clear resets every pixel to transparent
	Clear()

	// FillRect paints an axis-aligned rectangle
	FillRect(x, y, w, h float64, c Color)

	// FillCircle paints a solid disc
	FillCircle(cx, cy, r float64, c Color)

	// FillGlow paints a radial gradient disc
	FillGlow(g Glow)
}
