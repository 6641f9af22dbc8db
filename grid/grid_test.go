package grid

import (
	"testing"

	"github.com/lixenwraith/backdrop/canvas"
	"github.com/lixenwraith/backdrop/vmath"
)

func newTestGrid(cfg Config) *Grid {
	return New(cfg, vmath.NewRand(11))
}

func TestCellCount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 400, 400
	cfg.SquareSize, cfg.GridGap = 4, 6

	g := newTestGrid(cfg)
	if len(g.Cells()) != 1600 {
		t.Fatalf("Expected 1600 cells, got %d", len(g.Cells()))
	}

	// Row-major lattice with 40 squares per row
	c := g.Cells()[41]
	if c.X != 10 || c.Y != 10 {
		t.Errorf("Expected cell 41 at (10,10), got (%f,%f)", c.X, c.Y)
	}
	last := g.Cells()[1599]
	if last.X != 390 || last.Y != 390 {
		t.Errorf("Expected last cell at (390,390), got (%f,%f)", last.X, last.Y)
	}
}

func TestOpacityWithinBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FlickerChance = 0.5
	g := newTestGrid(cfg)

	for tick := 0; tick < 20; tick++ {
		for i, c := range g.Cells() {
			if c.Opacity < 0 || c.Opacity > cfg.MaxOpacity {
				t.Fatalf("Tick %d cell %d opacity %f outside [0,%f]", tick, i, c.Opacity, cfg.MaxOpacity)
			}
		}
		g.Tick()
	}
}

func TestForcedFlickerChangesEveryCell(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 400, 400
	cfg.SquareSize, cfg.GridGap = 4, 6
	cfg.FlickerChance = 1.0
	g := newTestGrid(cfg)

	initial := make([]float64, len(g.Cells()))
	for i, c := range g.Cells() {
		initial[i] = c.Opacity
	}

	g.Render(canvas.NewRecorder(cfg.Width, cfg.Height))

	for i, c := range g.Cells() {
		if c.Opacity == initial[i] {
			t.Errorf("Cell %d kept opacity %f after forced flicker", i, c.Opacity)
		}
	}
}

func TestZeroFlickerHoldsOpacity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FlickerChance = 0
	g := newTestGrid(cfg)

	before := g.Cells()[10].Opacity
	g.Tick()
	if g.Cells()[10].Opacity != before {
		t.Error("Expected no flicker at chance 0")
	}
}

func TestRenderClearsThenFills(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 100, 100
	g := newTestGrid(cfg)

	rec := canvas.NewRecorder(100, 100)
	g.Render(rec)

	if rec.Calls[1].Op != "clear" {
		t.Errorf("Expected clear before painting, got %s", rec.Calls[1].Op)
	}
	if rec.Count("rect") != len(g.Cells()) {
		t.Errorf("Expected one rect per cell, got %d for %d cells", rec.Count("rect"), len(g.Cells()))
	}
	for _, c := range rec.Calls {
		if c.Op == "rect" && (c.W != cfg.SquareSize || c.H != cfg.SquareSize) {
			t.Fatalf("Expected %fpx squares, got %fx%f", cfg.SquareSize, c.W, c.H)
		}
	}
}

func TestReconfigureRebuilds(t *testing.T) {
	g := newTestGrid(DefaultConfig())

	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 100, 50
	cfg.SquareSize, cfg.GridGap = 5, 5
	g.Reconfigure(cfg)

	if len(g.Cells()) != 50 {
		t.Errorf("Expected 50 cells after reconfigure, got %d", len(g.Cells()))
	}
	if g.Config().Width != 100 {
		t.Error("Expected new config retained")
	}
}

func TestResizeRespectsFitViewport(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 100, 100
	g := newTestGrid(cfg)
	n := len(g.Cells())

	g.Resize(200, 200)
	if len(g.Cells()) != n {
		t.Error("Expected static grid to ignore resize")
	}

	cfg.FitViewport = true
	g.Reconfigure(cfg)
	g.Resize(200, 200)
	if len(g.Cells()) != 4*n {
		t.Errorf("Expected %d cells after fitting, got %d", 4*n, len(g.Cells()))
	}
}

func TestDegenerateConfig(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Degenerate config panicked: %v", r)
		}
	}()

	cfg := DefaultConfig()
	cfg.SquareSize, cfg.GridGap = 0, 0
	g := newTestGrid(cfg)
	if len(g.Cells()) != 0 {
		t.Errorf("Expected no cells for zero pitch, got %d", len(g.Cells()))
	}

	cfg = DefaultConfig()
	cfg.Width = -5
	cfg.Color = "nonsense"
	g.Reconfigure(cfg)
	g.Render(canvas.NewRecorder(0, 0))
}
