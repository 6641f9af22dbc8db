// Package effect builds a configured effect by name for the hosts.
package effect

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/backdrop/config"
	"github.com/lixenwraith/backdrop/grid"
	"github.com/lixenwraith/backdrop/input"
	"github.com/lixenwraith/backdrop/loop"
	"github.com/lixenwraith/backdrop/particle"
	"github.com/lixenwraith/backdrop/reveal"
	"github.com/lixenwraith/backdrop/vmath"
)

// ErrUnknownEffect is returned for names outside config.Effects
var ErrUnknownEffect = errors.New("unknown effect")

// Scene is a renderable effect that tracks the viewport
type Scene interface {
	loop.Scene
	input.Target
}

// Options adjust construction beyond the config file
type Options struct {
	// Seed, when non-zero, overrides the effect's configured seed
	Seed uint64
	// OnBurst is attached to the particle field
	OnBurst func(x, y float64, spawned int)
}

// New builds the named effect sized to width x height surface pixels
func New(name string, cfg *config.Config, width, height int, opts Options) (Scene, error) {
	switch name {
	case config.EffectParticles:
		pc := cfg.Particles
		f := particle.NewField(pc, width, height, vmath.NewRand(pick(opts.Seed, pc.Seed)))
		f.OnBurst = opts.OnBurst
		return f, nil

	case config.EffectGrid:
		gc := cfg.Grid
		return grid.New(gc, vmath.NewRand(pick(opts.Seed, gc.Seed))), nil

	case config.EffectReveal:
		rc := cfg.Reveal
		return reveal.NewField(rc, width, height, vmath.NewRand(pick(opts.Seed, rc.Seed))), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEffect, name)
}

// TargetFPS returns the frame cap for the named effect; 0 renders every refresh
func TargetFPS(name string, cfg *config.Config) float64 {
	if name == config.EffectParticles {
		return cfg.Particles.TargetFPS
	}
	return 0
}

// Next returns the effect after name in cycling order
func Next(name string) string {
	for i, e := range config.Effects {
		if e == name {
			return config.Effects[(i+1)%len(config.Effects)]
		}
	}
	return config.Effects[0]
}

func pick(override, configured uint64) uint64 {
	if override != 0 {
		return override
	}
	return configured
}
