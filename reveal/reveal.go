// Package reveal implements the bouncing-dot reveal field: a fixed population
// of coloured dots drifting in straight lines and reflecting off the edges.
package reveal

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/backdrop/canvas"
	"github.com/lixenwraith/backdrop/parameter"
)

// Config parameterises the dot field
type Config struct {
	// AnimationSpeed is the full span of initial per-axis velocity
	AnimationSpeed float64 `toml:"animation_speed" yaml:"animation_speed"`
	DotSize        float64 `toml:"dot_size" yaml:"dot_size"`
	// Density is the surface area in square pixels per dot
	Density float64    `toml:"density" yaml:"density"`
	Colors  [][3]uint8 `toml:"colors" yaml:"colors"`
	Seed    uint64     `toml:"seed" yaml:"seed"`
}

// DefaultConfig returns the stock reveal configuration
func DefaultConfig() Config {
	colors := make([][3]uint8, len(parameter.RevealColors))
	copy(colors, parameter.RevealColors)
	return Config{
		AnimationSpeed: parameter.RevealAnimationSpeed,
		DotSize:        parameter.RevealDotSize,
		Density:        parameter.RevealDensity,
		Colors:         colors,
	}
}

// Dot is one drifting dot
type Dot struct {
	X, Y   float64
	VX, VY float64
	Color  canvas.Color
}

// Field is the reveal effect
type Field struct {
	cfg           Config
	rng           *rand.Rand
	palette       []canvas.Color
	dots          []Dot
	width, height int
}

// NewField seeds floor(w*h/Density) dots across a width x height surface
func NewField(cfg Config, width, height int, rng *rand.Rand) *Field {
	f := &Field{cfg: cfg, rng: rng}
	for _, c := range cfg.Colors {
		f.palette = append(f.palette, canvas.RGBA255(c[0], c[1], c[2], 1))
	}
	if len(f.palette) == 0 {
		for _, c := range parameter.RevealColors {
			f.palette = append(f.palette, canvas.RGBA255(c[0], c[1], c[2], 1))
		}
	}
	f.seed(width, height)
	return f
}

// Config returns the field configuration
func (f *Field) Config() Config {
	return f.cfg
}

// Dots exposes the dot array
func (f *Field) Dots() []Dot {
	return f.dots
}

func (f *Field) seed(width, height int) {
	f.width, f.height = width, height
	f.dots = f.dots[:0]
	if width <= 0 || height <= 0 || f.cfg.Density <= 0 {
		return
	}

	n := int(math.Floor(float64(width) * float64(height) / f.cfg.Density))
	if cap(f.dots) < n {
		f.dots = make([]Dot, 0, n)
	}
	speed := f.cfg.AnimationSpeed
	for range n {
		f.dots = append(f.dots, Dot{
			X:     f.rng.Float64() * float64(width),
			Y:     f.rng.Float64() * float64(height),
			VX:    (f.rng.Float64() - 0.5) * speed,
			VY:    (f.rng.Float64() - 0.5) * speed,
			Color: f.palette[f.rng.IntN(len(f.palette))],
		})
	}
}

// step moves a dot and reflects its velocity once it has left the surface
func (f *Field) step(d *Dot) {
	d.X += d.VX
	d.Y += d.VY
	if d.X < 0 || d.X > float64(f.width) {
		d.VX = -d.VX
	}
	if d.Y < 0 || d.Y > float64(f.height) {
		d.VY = -d.VY
	}
}

// Render clears the surface, advances every dot and paints it
func (f *Field) Render(s canvas.Surface) {
	s.SetComposite(canvas.SourceOver)
	s.Clear()
	for i := range f.dots {
		d := &f.dots[i]
		f.step(d)
		s.FillCircle(d.X, d.Y, f.cfg.DotSize, d.Color)
	}
}

// Resize reseeds the population for the new surface area
func (f *Field) Resize(width, height int) {
	f.seed(width, height)
}
