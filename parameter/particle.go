package parameter

// Particle bloom field
const (
	// ParticleCountOnClick is the burst size spawned per click
	ParticleCountOnClick = 200
	// ParticleMax is the pool capacity; spawns beyond it are dropped
	ParticleMax = 500

	// ParticleBaseRadius is the minimum core radius in pixels
	ParticleBaseRadius = 2.0
	// ParticleRadiusVariation is the random radius added on top of the base
	ParticleRadiusVariation = 3.0

	// ParticleLifespanMin/Max bound the lifetime in ticks
	ParticleLifespanMin = 100
	ParticleLifespanMax = 200

	// ParticleSpeedMin/Max bound the initial speed in pixels per tick
	ParticleSpeedMin = 1.5
	ParticleSpeedMax = 4.0

	// ParticleFriction scales velocity every tick
	ParticleFriction = 0.98

	// ParticleHueStart is the first hue of the palette arc (degrees)
	ParticleHueStart = 190.0
	// ParticleHueRange is the width of the palette arc (degrees)
	ParticleHueRange = 150.0

	// ParticleSaturationMin/Max and ParticleLightnessMin/Max are HSL percentages
	ParticleSaturationMin = 75.0
	ParticleSaturationMax = 100.0
	ParticleLightnessMin  = 60.0
	ParticleLightnessMax  = 80.0

	// ParticleOpacityMin/Max bound the base opacity
	ParticleOpacityMin = 0.75
	ParticleOpacityMax = 1.0

	// ParticleTrailAlpha is the fade fill alpha painted each frame
	ParticleTrailAlpha = 0.15

	// ParticleGlowFactor multiplies the core radius into the glow radius
	ParticleGlowFactor = 1.5
	// ParticleFollowerGlowFactor is the glow multiplier for the pointer follower
	ParticleFollowerGlowFactor = 4.0

	// ParticleFollowStrength is the fraction of the pointer gap closed per tick
	ParticleFollowStrength = 0.28

	// ParticleTargetFPS caps the render rate
	ParticleTargetFPS = 120.0

	// ParticleEpsilon is the opacity at or below which a particle expires
	ParticleEpsilon = 0.01
	// ParticleMinDrawRadius is the radius at or below which nothing is painted
	ParticleMinDrawRadius = 0.1
	// ParticleRadiusFloor is the share of radius kept at zero life
	ParticleRadiusFloor = 0.4
	// ParticleInnerRadiusRatio is the gradient start radius relative to the core
	ParticleInnerRadiusRatio = 0.1
	// ParticleGlowPlateau is the gradient offset where the solid core ends
	ParticleGlowPlateau = 0.4

	// ParticleIntroX/Y is where the startup burst blooms
	ParticleIntroX = 350.0
	ParticleIntroY = 250.0
)

// Pointer follower
const (
	FollowerRadius     = 3.5
	FollowerHueShift   = 0.7 // fraction of HueRange added to HueStart
	FollowerSaturation = 98.0
	FollowerLightness  = 78.0
	FollowerOpacity    = 0.95
)

// Trail fade colour (RGB 0-255)
const (
	TrailR = 7
	TrailG = 7
	TrailB = 23
)
