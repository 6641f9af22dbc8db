package canvas

import (
	"math"
	"testing"
)

func TestHSLAPrimaries(t *testing.T) {
	tests := []struct {
		name string
		h    float64
		want RGB
	}{
		{"Red", 0, RGB{255, 0, 0}},
		{"Green", 120, RGB{0, 255, 0}},
		{"Blue", 240, RGB{0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := HSLA(tt.h, 1, 0.5, 0.7)
			if got := c.RGB(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if c.A != 0.7 {
				t.Errorf("Expected alpha 0.7, got %f", c.A)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#6B7280")
	if err != nil {
		t.Fatalf("ParseHex failed: %v", err)
	}
	if got := c.RGB(); got != (RGB{0x6B, 0x72, 0x80}) {
		t.Errorf("Expected 6B7280, got %v", got)
	}
	if c.A != 1 {
		t.Errorf("Expected opaque colour, got alpha %f", c.A)
	}
	if c.Hex() != "#6b7280" {
		t.Errorf("Expected round trip hex, got %s", c.Hex())
	}
}

func TestParseHexInvalid(t *testing.T) {
	if _, err := ParseHex("not-a-colour"); err == nil {
		t.Error("Expected error for invalid hex")
	}
}

func TestGlowAlphaProfile(t *testing.T) {
	g := Glow{Inner: 0, Outer: 10, Plateau: 0.4, Color: Color{A: 0.8}}

	if a := g.Alpha(0); a != 0.8 {
		t.Errorf("Expected full alpha at centre, got %f", a)
	}
	if a := g.Alpha(4); a != 0.8 {
		t.Errorf("Expected full alpha at plateau edge, got %f", a)
	}
	if a := g.Alpha(7); math.Abs(a-0.4) > 1e-9 {
		t.Errorf("Expected half alpha midway through fade, got %f", a)
	}
	if a := g.Alpha(10); a != 0 {
		t.Errorf("Expected zero alpha at outer radius, got %f", a)
	}
	if a := g.Alpha(11); a != 0 {
		t.Errorf("Expected zero alpha outside disc, got %f", a)
	}
}
