package particle

import (
	"math/rand/v2"

	"github.com/lixenwraith/backdrop/canvas"
	"github.com/lixenwraith/backdrop/parameter"
)

// Field is the pointer-reactive bloom effect: a pool, its follower and the
// latest pointer position
type Field struct {
	cfg   Config
	pool  *Pool
	trail canvas.Color

	width, height int

	pointerX, pointerY float64
	hasPointer         bool

	// OnBurst, when set, is called after a click spawned at least one particle
	OnBurst func(x, y float64, spawned int)
}

// NewField creates a field for a width x height surface with the follower centred
func NewField(cfg Config, width, height int, rng *rand.Rand) *Field {
	f := &Field{
		cfg:    cfg,
		pool:   NewPool(cfg, rng),
		trail:  canvas.RGBA255(parameter.TrailR, parameter.TrailG, parameter.TrailB, cfg.TrailAlpha),
		width:  width,
		height: height,
	}
	f.pool.ResetFollower(float64(width)/2, float64(height)/2)

	if cfg.IntroBurst {
		f.pool.SpawnBurst(parameter.ParticleIntroX, parameter.ParticleIntroY, cfg.CountOnClick)
	}
	return f
}

// Config returns the field configuration
func (f *Field) Config() Config {
	return f.cfg
}

// Pool exposes the particle arena
func (f *Field) Pool() *Pool {
	return f.pool
}

// Pointer returns the last pointer position and whether one was seen
func (f *Field) Pointer() (x, y float64, ok bool) {
	return f.pointerX, f.pointerY, f.hasPointer
}

// Render fades the previous frame, then updates and draws the follower and
// every active particle with additive compositing
func (f *Field) Render(s canvas.Surface) {
	w, h := s.Size()

	s.SetComposite(canvas.SourceOver)
	s.FillRect(0, 0, float64(w), float64(h), f.trail)

	s.SetComposite(canvas.Lighter)

	f.pool.UpdateFollower(f.pointerX, f.pointerY, f.hasPointer)
	f.pool.DrawFollower(s)

	f.pool.Each(func(i int) {
		f.pool.Update(i)
		f.pool.Draw(i, s)
	})
}

// PointerMove records the follow target
func (f *Field) PointerMove(x, y float64) {
	f.pointerX, f.pointerY = x, y
	f.hasPointer = true
}

// Click blooms a burst at (x, y)
func (f *Field) Click(x, y float64) {
	f.Burst(x, y, f.cfg.CountOnClick)
}

// Burst spawns up to count particles at (x, y) and returns the number spawned
func (f *Field) Burst(x, y float64, count int) int {
	n := f.pool.SpawnBurst(x, y, count)
	if n > 0 && f.OnBurst != nil {
		f.OnBurst(x, y, n)
	}
	return n
}

// Resize re-centres the follower on the pointer, or the new centre if no
// pointer was seen; live particles keep their coordinates
func (f *Field) Resize(width, height int) {
	f.width, f.height = width, height
	fl := f.pool.Follower()
	if f.hasPointer {
		fl.X, fl.Y = f.pointerX, f.pointerY
	} else {
		fl.X, fl.Y = float64(width)/2, float64(height)/2
	}
}
