package vmath

import (
	"testing"
)

func TestRangeSampleBounds(t *testing.T) {
	rng := NewRand(42)
	r := Range{Min: 1.5, Max: 4.0}

	for i := 0; i < 10000; i++ {
		v := r.Sample(rng)
		if v < r.Min || v >= r.Max {
			t.Fatalf("Sample %d out of range: %f", i, v)
		}
	}
}

func TestRangeSampleEmpty(t *testing.T) {
	rng := NewRand(1)
	r := Range{Min: 3, Max: 3}
	if v := r.Sample(rng); v != 3 {
		t.Errorf("Expected 3 for empty range, got %f", v)
	}

	inverted := Range{Min: 5, Max: 2}
	if v := inverted.Sample(rng); v != 5 {
		t.Errorf("Expected Min for inverted range, got %f", v)
	}
}

func TestNewRandDeterministic(t *testing.T) {
	a := NewRand(7)
	b := NewRand(7)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("Same seed diverged at draw %d", i)
		}
	}
}

func TestWrapDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{190, 190},
		{360, 0},
		{445, 85},
		{-30, 330},
	}
	for _, tt := range tests {
		if got := WrapDegrees(tt.in); got != tt.want {
			t.Errorf("WrapDegrees(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 1) != 0 {
		t.Error("Expected lower clamp")
	}
	if Clamp(2, 0, 1) != 1 {
		t.Error("Expected upper clamp")
	}
	if Clamp(0.5, 0, 1) != 0.5 {
		t.Error("Expected passthrough")
	}
}
