package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDefaultMatchesDocumentedValues(t *testing.T) {
	cfg := Default()

	if cfg.Particles.CountOnClick != 200 || cfg.Particles.MaxParticles != 500 {
		t.Errorf("Expected 200/500 particle defaults, got %d/%d", cfg.Particles.CountOnClick, cfg.Particles.MaxParticles)
	}
	if cfg.Particles.TargetFPS != 120 {
		t.Errorf("Expected 120 fps, got %f", cfg.Particles.TargetFPS)
	}
	if cfg.Grid.Color != "#6B7280" || cfg.Grid.FlickerChance != 0.1 {
		t.Errorf("Unexpected grid defaults: %+v", cfg.Grid)
	}
	if cfg.Terminal.Effect != EffectParticles {
		t.Errorf("Expected particles effect, got %q", cfg.Terminal.Effect)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "backdrop.toml", `
[particles]
particle_count_on_click = 50
friction = 0.9
intro_burst = false

[particles.saturation]
min = 10.0
max = 20.0

[grid]
color = "#112233"
fit_viewport = true

[reveal]
colors = [[1, 2, 3]]

[terminal]
effect = "grid"

[keys]
x = "quit"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Particles.CountOnClick != 50 || cfg.Particles.Friction != 0.9 || cfg.Particles.IntroBurst {
		t.Errorf("Particle overrides not applied: %+v", cfg.Particles)
	}
	if cfg.Particles.Saturation.Min != 10 || cfg.Particles.Saturation.Max != 20 {
		t.Errorf("Expected saturation 10..20, got %+v", cfg.Particles.Saturation)
	}
	if cfg.Particles.MaxParticles != 500 {
		t.Errorf("Expected untouched default 500, got %d", cfg.Particles.MaxParticles)
	}
	if cfg.Grid.Color != "#112233" || !cfg.Grid.FitViewport {
		t.Errorf("Grid overrides not applied: %+v", cfg.Grid)
	}
	if len(cfg.Reveal.Colors) != 1 || cfg.Reveal.Colors[0] != [3]uint8{1, 2, 3} {
		t.Errorf("Expected single reveal colour, got %v", cfg.Reveal.Colors)
	}
	if cfg.Terminal.Effect != EffectGrid {
		t.Errorf("Expected grid effect, got %q", cfg.Terminal.Effect)
	}
	if cfg.Keys["x"] != "quit" {
		t.Errorf("Expected key override, got %v", cfg.Keys)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "backdrop.yaml", `
particles:
  max_particles: 42
  hue_start: 10.5
preview:
  addr: ":9090"
logging:
  format: json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Particles.MaxParticles != 42 || cfg.Particles.HueStart != 10.5 {
		t.Errorf("Particle overrides not applied: %+v", cfg.Particles)
	}
	if cfg.Preview.Addr != ":9090" && os.Getenv("PORT") == "" {
		t.Errorf("Expected :9090, got %q", cfg.Preview.Addr)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Expected json format, got %q", cfg.Logging.Format)
	}
	if cfg.Particles.CountOnClick != 200 {
		t.Errorf("Expected default count, got %d", cfg.Particles.CountOnClick)
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeFile(t, "backdrop.ini", "a=b"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}

	_, err = Load(writeFile(t, "bad.toml", "[particles\nfriction = "))
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Errorf("Expected parse error, got %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"BACKDROP_PARTICLES_SEED":         "42",
		"BACKDROP_PARTICLES_FRICTION":     "0.5",
		"BACKDROP_GRID_FIT_VIEWPORT":      "true",
		"BACKDROP_TERMINAL_EFFECT":        "reveal",
		"BACKDROP_AUDIO_ENABLED":          "1",
		"BACKDROP_LOGGING_LEVEL":          "debug",
		"BACKDROP_PREVIEW_MAX_FRAMES":     "10",
		"BACKDROP_PARTICLES_LIFESPAN_MAX": "300",
		"PORT":                            "7000",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	if err := applyEnv(cfg, lookup); err != nil {
		t.Fatalf("applyEnv failed: %v", err)
	}

	if cfg.Particles.Seed != 42 || cfg.Particles.Friction != 0.5 || cfg.Particles.LifespanMax != 300 {
		t.Errorf("Particle env not applied: %+v", cfg.Particles)
	}
	if !cfg.Grid.FitViewport || !cfg.Audio.Enabled {
		t.Error("Bool env not applied")
	}
	if cfg.Terminal.Effect != EffectReveal || cfg.Logging.Level != "debug" {
		t.Error("String env not applied")
	}
	if cfg.Preview.MaxFrames != 10 {
		t.Errorf("Expected max frames 10, got %d", cfg.Preview.MaxFrames)
	}
	if cfg.Preview.Addr != ":7000" {
		t.Errorf("Expected PORT to set addr, got %q", cfg.Preview.Addr)
	}
}

func TestEnvSkipsCompositeFields(t *testing.T) {
	t.Setenv("BACKDROP_PARTICLES_SATURATION", "10")
	t.Setenv("BACKDROP_PARTICLES_OPACITY", "0.5,0.6")
	t.Setenv("BACKDROP_REVEAL_COLORS", "[[1,2,3]]")
	t.Setenv("BACKDROP_PARTICLES_TRAIL_ALPHA", "0.3")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Expected composite env vars to be ignored, got %v", err)
	}

	def := Default()
	if cfg.Particles.Saturation != def.Particles.Saturation || cfg.Particles.Opacity != def.Particles.Opacity {
		t.Errorf("Expected ranges unchanged, got %+v / %+v", cfg.Particles.Saturation, cfg.Particles.Opacity)
	}
	if len(cfg.Reveal.Colors) != len(def.Reveal.Colors) {
		t.Errorf("Expected default palette, got %v", cfg.Reveal.Colors)
	}
	if cfg.Particles.TrailAlpha != 0.3 {
		t.Errorf("Expected scalar beside composites to apply, got %f", cfg.Particles.TrailAlpha)
	}
}

func TestApplyEnvRejectsBadValue(t *testing.T) {
	lookup := func(k string) (string, bool) {
		if k == "BACKDROP_PARTICLES_MAX_PARTICLES" {
			return "many", true
		}
		return "", false
	}
	err := applyEnv(Default(), lookup)
	if err == nil || !strings.Contains(err.Error(), "BACKDROP_PARTICLES_MAX_PARTICLES") {
		t.Errorf("Expected error naming the variable, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Terminal.Effect = "fireworks"
	cfg.Grid.Color = "grey"
	cfg.Logging.Format = "xml"
	cfg.Terminal.CellWidth = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation error")
	}
	for _, want := range []string{"terminal.effect", "grid.color", "logging.format", "cell size"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected error to mention %s, got %v", want, err)
		}
	}
}

func TestNewLogger(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "backdrop.log")

	for _, format := range []string{"console", "json"} {
		log, err := NewLogger(LoggingConfig{Level: "debug", Format: format, File: file})
		if err != nil {
			t.Fatalf("NewLogger(%s) failed: %v", format, err)
		}
		log.Info("hello " + format)
		_ = log.Sync()
	}

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("Expected log file: %v", err)
	}
	if !strings.Contains(string(data), "hello console") || !strings.Contains(string(data), "hello json") {
		t.Errorf("Expected both messages in log, got %q", data)
	}

	if _, err := NewLogger(LoggingConfig{Level: "bogus"}); err != nil {
		t.Errorf("Expected unknown level to fall back, got %v", err)
	}
}

func TestLoadExampleFileMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "backdrop.example.toml"))
	if err != nil {
		t.Fatalf("Load example failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected example to validate, got %v", err)
	}

	def := Default()
	if cfg.Particles != def.Particles {
		t.Errorf("Expected example particles to match defaults:\n got %+v\nwant %+v", cfg.Particles, def.Particles)
	}
	if cfg.Terminal != def.Terminal || cfg.Preview != def.Preview {
		t.Errorf("Expected example terminal/preview to match defaults")
	}
	if cfg.Keys["x"] != "burst" || cfg.Keys["space"] != "none" {
		t.Errorf("Expected example key bindings, got %v", cfg.Keys)
	}
}
