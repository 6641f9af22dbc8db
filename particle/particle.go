package particle

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/backdrop/canvas"
	"github.com/lixenwraith/backdrop/parameter"
	"github.com/lixenwraith/backdrop/vmath"
)

// InfiniteLife marks the pointer follower's lifetime
const InfiniteLife = math.MaxInt

// Particle is one pool slot; fields are meaningless while Active is false
type Particle struct {
	X, Y   float64
	VX, VY float64

	Radius        float64
	CurrentRadius float64

	Life        int
	InitialLife int

	Hue         float64 // degrees
	Saturation  float64 // percent
	Lightness   float64 // percent
	BaseOpacity float64
	Opacity     float64

	Active   bool
	Follower bool
}

// spawn reinitialises p as a fresh burst particle at (x, y)
func spawn(p *Particle, x, y float64, cfg *Config, rng *rand.Rand) {
	angle := rng.Float64() * 2 * math.Pi
	speed := vmath.Range{Min: cfg.SpeedMin, Max: cfg.SpeedMax}.Sample(rng)

	life := cfg.LifespanMin
	if cfg.LifespanMax > cfg.LifespanMin {
		life += rng.IntN(cfg.LifespanMax - cfg.LifespanMin + 1)
	}

	*p = Particle{
		X:           x,
		Y:           y,
		VX:          math.Cos(angle) * speed,
		VY:          math.Sin(angle) * speed,
		Radius:      cfg.BaseRadius + rng.Float64()*cfg.RadiusVariation,
		Life:        life,
		InitialLife: life,
		Hue:         vmath.WrapDegrees(cfg.HueStart + rng.Float64()*cfg.HueRange),
		Saturation:  cfg.Saturation.Sample(rng),
		Lightness:   cfg.Lightness.Sample(rng),
		BaseOpacity: cfg.Opacity.Sample(rng),
		Active:      true,
	}
	p.Opacity = p.BaseOpacity
	p.CurrentRadius = p.Radius
}

// spawnFollower reinitialises p as the pointer follower at (x, y)
func spawnFollower(p *Particle, x, y float64, cfg *Config) {
	*p = Particle{
		X:           x,
		Y:           y,
		Radius:      parameter.FollowerRadius,
		Life:        InfiniteLife,
		InitialLife: InfiniteLife,
		Hue:         vmath.WrapDegrees(cfg.HueStart + cfg.HueRange*parameter.FollowerHueShift),
		Saturation:  parameter.FollowerSaturation,
		Lightness:   parameter.FollowerLightness,
		BaseOpacity: parameter.FollowerOpacity,
		Active:      true,
		Follower:    true,
	}
	p.Opacity = p.BaseOpacity
	p.CurrentRadius = p.Radius
}

// step advances a burst particle one tick and reports whether it expired
func step(p *Particle, friction float64) bool {
	p.X += p.VX
	p.Y += p.VY

	p.VX *= friction
	p.VY *= friction

	p.Life--
	ratio := 0.0
	if p.InitialLife > 0 {
		ratio = math.Max(0, float64(p.Life)/float64(p.InitialLife))
	}
	p.Opacity = p.BaseOpacity * ratio
	p.CurrentRadius = p.Radius * (parameter.ParticleRadiusFloor + ratio*(1-parameter.ParticleRadiusFloor))

	return p.Life <= 0 || p.Opacity <= parameter.ParticleEpsilon
}

// follow eases the follower a fixed fraction of the way to the pointer
func follow(p *Particle, px, py, strength float64) {
	p.VX = (px - p.X) * strength
	p.VY = (py - p.Y) * strength
	p.X += p.VX
	p.Y += p.VY
}

// paint draws p as a soft glow when it is visible
func paint(p *Particle, glowFactor float64, s canvas.Surface) {
	if !p.Active || p.Opacity <= parameter.ParticleEpsilon || p.CurrentRadius <= parameter.ParticleMinDrawRadius {
		return
	}
	s.FillGlow(canvas.Glow{
		X:       p.X,
		Y:       p.Y,
		Inner:   p.CurrentRadius * parameter.ParticleInnerRadiusRatio,
		Outer:   p.CurrentRadius * glowFactor,
		Plateau: parameter.ParticleGlowPlateau,
		Color:   canvas.HSLA(p.Hue, p.Saturation/100, p.Lightness/100, p.Opacity),
	})
}
