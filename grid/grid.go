// Package grid implements the flickering square grid background.
//
// Squares sit on a fixed lattice of pitch SquareSize+GridGap. Every frame each
// square re-rolls its opacity with probability FlickerChance.
package grid

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/backdrop/canvas"
	"github.com/lixenwraith/backdrop/parameter"
)

// Config parameterises the grid; Width and Height are fixed at construction
type Config struct {
	SquareSize    float64 `toml:"square_size" yaml:"square_size"`
	GridGap       float64 `toml:"grid_gap" yaml:"grid_gap"`
	Color         string  `toml:"color" yaml:"color"`
	MaxOpacity    float64 `toml:"max_opacity" yaml:"max_opacity"`
	FlickerChance float64 `toml:"flicker_chance" yaml:"flicker_chance"`
	Width         int     `toml:"width" yaml:"width"`
	Height        int     `toml:"height" yaml:"height"`

	// FitViewport makes Resize rebuild the grid at the new size
	FitViewport bool   `toml:"fit_viewport" yaml:"fit_viewport"`
	Seed        uint64 `toml:"seed" yaml:"seed"`
}

// DefaultConfig returns the stock grid configuration
func DefaultConfig() Config {
	return Config{
		SquareSize:    parameter.GridSquareSize,
		GridGap:       parameter.GridGap,
		Color:         parameter.GridColor,
		MaxOpacity:    parameter.GridMaxOpacity,
		FlickerChance: parameter.GridFlickerChance,
		Width:         parameter.GridWidth,
		Height:        parameter.GridHeight,
	}
}

// Cell is one square; Opacity stays within [0, MaxOpacity]
type Cell struct {
	X, Y    float64
	Opacity float64
}

// Grid is the flickering grid effect
type Grid struct {
	cfg   Config
	color canvas.Color
	cells []Cell
	rng   *rand.Rand
}

// New builds every cell for cfg; an unparsable colour falls back to the default
func New(cfg Config, rng *rand.Rand) *Grid {
	g := &Grid{rng: rng}
	g.Reconfigure(cfg)
	return g
}

// Config returns the active configuration
func (g *Grid) Config() Config {
	return g.cfg
}

// Cells exposes the cell array
func (g *Grid) Cells() []Cell {
	return g.cells
}

// Reconfigure discards all cells and rebuilds them for cfg
func (g *Grid) Reconfigure(cfg Config) {
	g.cfg = cfg

	c, err := canvas.ParseHex(cfg.Color)
	if err != nil {
		c, _ = canvas.ParseHex(parameter.GridColor)
	}
	g.color = c

	g.cells = g.cells[:0]
	pitch := cfg.SquareSize + cfg.GridGap
	if pitch <= 0 || cfg.Width <= 0 || cfg.Height <= 0 {
		return
	}

	total := int(math.Floor(float64(cfg.Width) * float64(cfg.Height) / (pitch * pitch)))
	// Squares per row is not rounded, so a width that is not a multiple of
	// the pitch shears rows by the fractional remainder
	perRow := float64(cfg.Width) / pitch

	if cap(g.cells) < total {
		g.cells = make([]Cell, 0, total)
	}
	for i := range total {
		row := math.Floor(float64(i) / perRow)
		col := math.Mod(float64(i), perRow)
		g.cells = append(g.cells, Cell{
			X:       col * pitch,
			Y:       row * pitch,
			Opacity: g.rng.Float64() * cfg.MaxOpacity,
		})
	}
}

// flicker re-rolls cell i with probability FlickerChance
func (g *Grid) flicker(i int) {
	if g.rng.Float64() < g.cfg.FlickerChance {
		g.cells[i].Opacity = g.rng.Float64() * g.cfg.MaxOpacity
	}
}

// Tick advances every cell one frame without drawing
func (g *Grid) Tick() {
	for i := range g.cells {
		g.flicker(i)
	}
}

// Render clears the surface, then flickers and paints each square
func (g *Grid) Render(s canvas.Surface) {
	s.SetComposite(canvas.SourceOver)
	s.Clear()

	size := g.cfg.SquareSize
	for i := range g.cells {
		g.flicker(i)
		c := &g.cells[i]
		s.FillRect(c.X, c.Y, size, size, g.color.WithAlpha(c.Opacity))
	}
}

// Resize rebuilds the grid at the new size when FitViewport is set
func (g *Grid) Resize(width, height int) {
	if !g.cfg.FitViewport {
		return
	}
	cfg := g.cfg
	cfg.Width, cfg.Height = width, height
	g.Reconfigure(cfg)
}
