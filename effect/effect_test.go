package effect

import (
	"errors"
	"testing"

	"github.com/lixenwraith/backdrop/canvas"
	"github.com/lixenwraith/backdrop/config"
	"github.com/lixenwraith/backdrop/grid"
	"github.com/lixenwraith/backdrop/input"
	"github.com/lixenwraith/backdrop/particle"
	"github.com/lixenwraith/backdrop/reveal"
)

func TestNewBuildsEveryEffect(t *testing.T) {
	cfg := config.Default()

	for _, name := range config.Effects {
		s, err := New(name, cfg, 200, 100, Options{Seed: 1})
		if err != nil {
			t.Fatalf("New(%s) failed: %v", name, err)
		}
		s.Render(canvas.NewRecorder(200, 100))
	}

	s, _ := New(config.EffectParticles, cfg, 200, 100, Options{})
	if _, ok := s.(*particle.Field); !ok {
		t.Errorf("Expected particle field, got %T", s)
	}
	if _, ok := s.(input.PointerTarget); !ok {
		t.Error("Expected particle field to accept pointer input")
	}
	s, _ = New(config.EffectGrid, cfg, 200, 100, Options{})
	if _, ok := s.(*grid.Grid); !ok {
		t.Errorf("Expected grid, got %T", s)
	}
	s, _ = New(config.EffectReveal, cfg, 200, 100, Options{})
	if _, ok := s.(*reveal.Field); !ok {
		t.Errorf("Expected reveal field, got %T", s)
	}
}

func TestNewUnknown(t *testing.T) {
	_, err := New("fireworks", config.Default(), 10, 10, Options{})
	if !errors.Is(err, ErrUnknownEffect) {
		t.Errorf("Expected ErrUnknownEffect, got %v", err)
	}
}

func TestOnBurstAttached(t *testing.T) {
	cfg := config.Default()
	cfg.Particles.IntroBurst = false

	var spawned int
	s, err := New(config.EffectParticles, cfg, 200, 200, Options{
		Seed:    3,
		OnBurst: func(x, y float64, n int) { spawned += n },
	})
	if err != nil {
		t.Fatal(err)
	}
	s.(input.PointerTarget).Click(50, 50)
	if spawned != cfg.Particles.CountOnClick {
		t.Errorf("Expected callback with %d spawned, got %d", cfg.Particles.CountOnClick, spawned)
	}
}

func TestNextCycles(t *testing.T) {
	if Next(config.EffectParticles) != config.EffectGrid {
		t.Error("Expected grid after particles")
	}
	if Next(config.EffectReveal) != config.EffectParticles {
		t.Error("Expected wrap to particles")
	}
	if Next("bogus") != config.EffectParticles {
		t.Error("Expected unknown to restart at particles")
	}
}

func TestTargetFPS(t *testing.T) {
	cfg := config.Default()
	if TargetFPS(config.EffectParticles, cfg) != 120 {
		t.Error("Expected particle frame cap")
	}
	if TargetFPS(config.EffectGrid, cfg) != 0 {
		t.Error("Expected grid to render every refresh")
	}
}
