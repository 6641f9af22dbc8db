package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const (
	chimeDuration = 600 * time.Millisecond

	// Inharmonic partial ratio of a struck bell
	bellPartial = 2.76
	chimeDecay  = 6.0
	chimeAttack = 0.005
)

// ChimeGenerator generates a bell-like tone with exponential decay
type ChimeGenerator struct {
	sr        beep.SampleRate
	freq      float64
	amplitude float64
	pos       int
	samples   int
}

// NewChimeGenerator creates a chime at freq Hz with peak amplitude
func NewChimeGenerator(sr beep.SampleRate, freq, amplitude float64) *ChimeGenerator {
	return &ChimeGenerator{
		sr:        sr,
		freq:      freq,
		amplitude: amplitude,
		samples:   sr.N(chimeDuration),
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)

		sample := math.Sin(2*math.Pi*g.freq*t) + 0.35*math.Sin(2*math.Pi*g.freq*bellPartial*t)

		envelope := math.Exp(-chimeDecay * t)
		if t < chimeAttack {
			envelope *= t / chimeAttack
		}
		sample *= envelope * g.amplitude

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}
