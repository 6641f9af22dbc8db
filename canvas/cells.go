package canvas

import "math"

// glowSamples is the per-axis sub-sample count used when a disc is narrower
// than a cell
const glowSamples = 4

// CellSurface is a Surface backed by a row-major terminal cell buffer
// Each cell covers cellW x cellH surface pixels
type CellSurface struct {
	cells []RGB
	cols  int
	rows  int
	cellW int
	cellH int
	bg    RGB
	op    Composite
}

// NewCellSurface creates a cols x rows surface; cell metrics below 1 are raised to 1
func NewCellSurface(cols, rows, cellW, cellH int, bg RGB) *CellSurface {
	if cellW < 1 {
		cellW = 1
	}
	if cellH < 1 {
		cellH = 1
	}
	s := &CellSurface{cellW: cellW, cellH: cellH, bg: bg}
	s.ResizeCells(cols, rows)
	return s
}

// Size returns the pixel dimensions covered by the cell grid
func (s *CellSurface) Size() (int, int) {
	return s.cols * s.cellW, s.rows * s.cellH
}

// Grid returns the cell dimensions
func (s *CellSurface) Grid() (cols, rows int) {
	return s.cols, s.rows
}

// CellSize returns the pixel size of one cell
func (s *CellSurface) CellSize() (w, h int) {
	return s.cellW, s.cellH
}

// Resize converts pixel dimensions into whole cells
func (s *CellSurface) Resize(width, height int) {
	s.ResizeCells(width/s.cellW, height/s.cellH)
}

// ResizeCells adjusts the grid, reallocating only if capacity is insufficient
func (s *CellSurface) ResizeCells(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	size := cols * rows
	if cap(s.cells) < size {
		s.cells = make([]RGB, size)
	} else {
		s.cells = s.cells[:size]
	}
	s.cols = cols
	s.rows = rows
	s.Clear()
}

// SetComposite selects the compositing operation for later fills
func (s *CellSurface) SetComposite(op Composite) {
	s.op = op
}

// Composite returns the active compositing operation
func (s *CellSurface) Composite() Composite {
	return s.op
}

// Clear resets all cells to the background using exponential copy
func (s *CellSurface) Clear() {
	if len(s.cells) == 0 {
		return
	}
	s.cells[0] = s.bg
	for filled := 1; filled < len(s.cells); filled *= 2 {
		copy(s.cells[filled:], s.cells[:filled])
	}
}

// Cells exposes the row-major buffer for blitting; callers must not retain it across Resize
func (s *CellSurface) Cells() []RGB {
	return s.cells
}

// At returns the cell colour, background when out of bounds
func (s *CellSurface) At(col, row int) RGB {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return s.bg
	}
	return s.cells[row*s.cols+col]
}

// CellCenter returns the pixel centre of a cell
func (s *CellSurface) CellCenter(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * float64(s.cellW), (float64(row) + 0.5) * float64(s.cellH)
}

// cellSpan returns the clamped half-open cell index range touched by [lo, hi) along one axis
func cellSpan(lo, hi float64, cell, limit int) (int, int) {
	first := int(math.Floor(lo / float64(cell)))
	last := int(math.Ceil(hi / float64(cell)))
	if first < 0 {
		first = 0
	}
	if last > limit {
		last = limit
	}
	return first, last
}

// FillRect blends the colour into each cell scaled by the covered cell area
func (s *CellSurface) FillRect(x, y, w, h float64, c Color) {
	if w <= 0 || h <= 0 || c.A <= 0 {
		return
	}
	c0, c1 := cellSpan(x, x+w, s.cellW, s.cols)
	r0, r1 := cellSpan(y, y+h, s.cellH, s.rows)
	src := c.RGB()
	cw, ch := float64(s.cellW), float64(s.cellH)
	area := cw * ch

	for row := r0; row < r1; row++ {
		top := float64(row) * ch
		oy := math.Min(y+h, top+ch) - math.Max(y, top)
		if oy <= 0 {
			continue
		}
		rowOff := row * s.cols
		for col := c0; col < c1; col++ {
			left := float64(col) * cw
			ox := math.Min(x+w, left+cw) - math.Max(x, left)
			if ox <= 0 {
				continue
			}
			idx := rowOff + col
			s.cells[idx] = s.op.apply(s.cells[idx], src, c.A*ox*oy/area)
		}
	}
}

// FillCircle blends a solid disc, sub-sampling each touched cell
func (s *CellSurface) FillCircle(cx, cy, r float64, c Color) {
	if r <= 0 || c.A <= 0 {
		return
	}
	rSq := r * r
	s.fillRadial(cx, cy, r, c.RGB(), func(dSq float64) float64 {
		if dSq > rSq {
			return 0
		}
		return c.A
	})
}

// FillGlow blends a radial gradient disc, sub-sampling each touched cell
func (s *CellSurface) FillGlow(g Glow) {
	if g.Outer <= 0 || g.Color.A <= 0 {
		return
	}
	s.fillRadial(g.X, g.Y, g.Outer, g.Color.RGB(), func(dSq float64) float64 {
		return g.Alpha(math.Sqrt(dSq))
	})
}

// fillRadial averages alphaAt over a glowSamples^2 lattice inside every cell
// intersecting the disc bounding box, then composites src at that alpha
func (s *CellSurface) fillRadial(cx, cy, r float64, src RGB, alphaAt func(dSq float64) float64) {
	c0, c1 := cellSpan(cx-r, cx+r, s.cellW, s.cols)
	r0, r1 := cellSpan(cy-r, cy+r, s.cellH, s.rows)
	cw, ch := float64(s.cellW), float64(s.cellH)
	stepX, stepY := cw/glowSamples, ch/glowSamples

	for row := r0; row < r1; row++ {
		top := float64(row) * ch
		rowOff := row * s.cols
		for col := c0; col < c1; col++ {
			left := float64(col) * cw
			sum := 0.0
			for sy := 0; sy < glowSamples; sy++ {
				dy := top + (float64(sy)+0.5)*stepY - cy
				for sx := 0; sx < glowSamples; sx++ {
					dx := left + (float64(sx)+0.5)*stepX - cx
					sum += alphaAt(dx*dx + dy*dy)
				}
			}
			alpha := sum / (glowSamples * glowSamples)
			if alpha <= 0 {
				continue
			}
			idx := rowOff + col
			s.cells[idx] = s.op.apply(s.cells[idx], src, alpha)
		}
	}
}
