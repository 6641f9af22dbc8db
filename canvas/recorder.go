package canvas

// Call identifies one recorded Surface operation
type Call struct {
	Op        string
	Composite Composite
	Glow      Glow
	Color     Color
	X, Y      float64
	W, H      float64
}

// Recorder is a Surface that paints nothing and logs every call
// It backs draw-call assertions and dry-run frame counting
type Recorder struct {
	width, height int
	op            Composite
	Calls         []Call
}

// NewRecorder creates a recorder reporting the given size
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) Size() (int, int) { return r.width, r.height }

func (r *Recorder) Resize(width, height int) {
	r.width, r.height = width, height
	r.Calls = append(r.Calls, Call{Op: "resize", W: float64(width), H: float64(height)})
}

func (r *Recorder) SetComposite(op Composite) {
	r.op = op
	r.Calls = append(r.Calls, Call{Op: "composite", Composite: op})
}

func (r *Recorder) Clear() {
	r.Calls = append(r.Calls, Call{Op: "clear"})
}

func (r *Recorder) FillRect(x, y, w, h float64, c Color) {
	r.Calls = append(r.Calls, Call{Op: "rect", Composite: r.op, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c Color) {
	r.Calls = append(r.Calls, Call{Op: "circle", Composite: r.op, X: cx, Y: cy, W: radius, Color: c})
}

func (r *Recorder) FillGlow(g Glow) {
	r.Calls = append(r.Calls, Call{Op: "glow", Composite: r.op, X: g.X, Y: g.Y, Glow: g, Color: g.Color})
}

// Count returns how many calls of the named op were recorded
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset drops the call log
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
