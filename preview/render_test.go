package preview

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"github.com/lixenwraith/backdrop/config"
)

func TestRenderParticles(t *testing.T) {
	cfg := config.Default()
	cfg.Particles.IntroBurst = false

	var buf bytes.Buffer
	res, err := Render(cfg, Request{
		Effect: config.EffectParticles,
		Width:  64,
		Height: 48,
		Frames: 3,
		Seed:   1,
		Clicks: [][2]float64{{32, 24}},
	}, &buf)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if res.Frames != 3 {
		t.Errorf("Expected 3 frames, got %d", res.Frames)
	}
	if res.Spawned != cfg.Particles.CountOnClick {
		t.Errorf("Expected %d spawned, got %d", cfg.Particles.CountOnClick, res.Spawned)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Expected valid PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("Expected 64x48 image, got %v", b)
	}

	r, g, bl, _ := img.At(32, 24).RGBA()
	if r+g+bl == 0 {
		t.Error("Expected bloom at click point")
	}
}

func TestRenderEveryEffect(t *testing.T) {
	cfg := config.Default()
	for _, name := range config.Effects {
		var buf bytes.Buffer
		res, err := Render(cfg, Request{Effect: name, Width: 40, Height: 40, Frames: 2, Seed: 7}, &buf)
		if err != nil {
			t.Fatalf("Render(%s) failed: %v", name, err)
		}
		if res.Frames != 2 {
			t.Errorf("%s: expected 2 frames, got %d", name, res.Frames)
		}
		if buf.Len() == 0 {
			t.Errorf("%s: expected PNG output", name)
		}
	}
}

func TestRenderDeterministicWithSeed(t *testing.T) {
	cfg := config.Default()
	req := Request{Effect: config.EffectReveal, Width: 50, Height: 50, Frames: 4, Seed: 99}

	var a, b bytes.Buffer
	if _, err := Render(cfg, req, &a); err != nil {
		t.Fatal(err)
	}
	if _, err := Render(cfg, req, &b); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("Expected identical output for identical seed")
	}
}

func TestRenderErrors(t *testing.T) {
	cfg := config.Default()
	var buf bytes.Buffer

	_, err := Render(cfg, Request{Effect: "fireworks", Width: 10, Height: 10}, &buf)
	if !errors.Is(err, ErrUnknownEffect) {
		t.Errorf("Expected ErrUnknownEffect, got %v", err)
	}

	_, err = Render(cfg, Request{Effect: config.EffectGrid, Width: 0, Height: 10}, &buf)
	if !errors.Is(err, ErrBadSize) {
		t.Errorf("Expected ErrBadSize for zero width, got %v", err)
	}
	_, err = Render(cfg, Request{Effect: config.EffectGrid, Width: 10, Height: MaxSide + 1}, &buf)
	if err == nil {
		t.Error("Expected error for oversize height")
	}
}
