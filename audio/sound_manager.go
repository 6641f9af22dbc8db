// Package audio plays the optional bloom chime when a burst spawns particles.
//
// Speaker failures are non-fatal: every method is a no-op until Initialize
// succeeds, so hosts run silently without an audio device.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	// Minimum spacing between chimes; bursts closer together are merged
	chimeGap = 40 * time.Millisecond
)

// Config controls the chime
type Config struct {
	Enabled bool    `toml:"enabled" yaml:"enabled"`
	Volume  float64 `toml:"volume" yaml:"volume"`
}

// DefaultConfig returns audio disabled at moderate volume
func DefaultConfig() Config {
	return Config{Volume: 0.5}
}

// SoundManager manages the chime voice
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
	lastChime   time.Time
	now         func() time.Time
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg Config) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: cfg.Volume,
		now:    time.Now,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayBloom queues a chime for a burst of spawned particles at hue degrees
// Returns false when the chime was suppressed
func (sm *SoundManager) PlayBloom(spawned int, hue float64) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || spawned <= 0 {
		return false
	}

	now := sm.now()
	if now.Sub(sm.lastChime) < chimeGap {
		return false
	}
	sm.lastChime = now

	streamer := beep.Take(sampleRate.N(chimeDuration), NewChimeGenerator(sampleRate, ChimeFrequency(hue), ChimeAmplitude(spawned, sm.volume)))
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// ChimeFrequency maps a hue onto one octave above A4
func ChimeFrequency(hue float64) float64 {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	return 440 * math.Pow(2, h/360)
}

// ChimeAmplitude grows with burst size, saturating at a 200-particle burst
func ChimeAmplitude(spawned int, volume float64) float64 {
	fill := math.Min(float64(spawned)/200, 1)
	return volume * (0.3 + 0.7*fill) * 0.25
}
