package particle

import (
	"github.com/lixenwraith/backdrop/parameter"
	"github.com/lixenwraith/backdrop/vmath"
)

// Config parameterises the bloom field; every field has a default in DefaultConfig
type Config struct {
	CountOnClick    int     `toml:"particle_count_on_click" yaml:"particle_count_on_click"`
	MaxParticles    int     `toml:"max_particles" yaml:"max_particles"`
	BaseRadius      float64 `toml:"base_radius" yaml:"base_radius"`
	RadiusVariation float64 `toml:"radius_variation" yaml:"radius_variation"`
	LifespanMin     int     `toml:"lifespan_min" yaml:"lifespan_min"`
	LifespanMax     int     `toml:"lifespan_max" yaml:"lifespan_max"`
	SpeedMin        float64 `toml:"speed_min" yaml:"speed_min"`
	SpeedMax        float64 `toml:"speed_max" yaml:"speed_max"`
	Friction        float64 `toml:"friction" yaml:"friction"`
	HueStart        float64 `toml:"hue_start" yaml:"hue_start"`
	HueRange        float64 `toml:"hue_range" yaml:"hue_range"`

	// Saturation and Lightness are HSL percentages
	Saturation vmath.Range `toml:"saturation" yaml:"saturation"`
	Lightness  vmath.Range `toml:"lightness" yaml:"lightness"`
	Opacity    vmath.Range `toml:"opacity" yaml:"opacity"`

	TrailAlpha         float64 `toml:"trail_alpha" yaml:"trail_alpha"`
	GlowFactor         float64 `toml:"glow_factor" yaml:"glow_factor"`
	FollowerGlowFactor float64 `toml:"follower_glow_factor" yaml:"follower_glow_factor"`
	FollowStrength     float64 `toml:"follow_strength" yaml:"follow_strength"`
	TargetFPS          float64 `toml:"target_fps" yaml:"target_fps"`

	// IntroBurst blooms CountOnClick particles at the intro point on creation
	IntroBurst bool `toml:"intro_burst" yaml:"intro_burst"`
	// Seed fixes the random sequence; 0 is time-seeded
	Seed uint64 `toml:"seed" yaml:"seed"`
}

// DefaultConfig returns the stock bloom configuration
func DefaultConfig() Config {
	return Config{
		CountOnClick:       parameter.ParticleCountOnClick,
		MaxParticles:       parameter.ParticleMax,
		BaseRadius:         parameter.ParticleBaseRadius,
		RadiusVariation:    parameter.ParticleRadiusVariation,
		LifespanMin:        parameter.ParticleLifespanMin,
		LifespanMax:        parameter.ParticleLifespanMax,
		SpeedMin:           parameter.ParticleSpeedMin,
		SpeedMax:           parameter.ParticleSpeedMax,
		Friction:           parameter.ParticleFriction,
		HueStart:           parameter.ParticleHueStart,
		HueRange:           parameter.ParticleHueRange,
		Saturation:         vmath.Range{Min: parameter.ParticleSaturationMin, Max: parameter.ParticleSaturationMax},
		Lightness:          vmath.Range{Min: parameter.ParticleLightnessMin, Max: parameter.ParticleLightnessMax},
		Opacity:            vmath.Range{Min: parameter.ParticleOpacityMin, Max: parameter.ParticleOpacityMax},
		TrailAlpha:         parameter.ParticleTrailAlpha,
		GlowFactor:         parameter.ParticleGlowFactor,
		FollowerGlowFactor: parameter.ParticleFollowerGlowFactor,
		FollowStrength:     parameter.ParticleFollowStrength,
		TargetFPS:          parameter.ParticleTargetFPS,
		IntroBurst:         true,
	}
}
