package parameter

// Reveal dot field
const (
	// RevealAnimationSpeed is the full span of initial per-axis velocity
	RevealAnimationSpeed = 5.0
	// RevealDotSize is the dot radius in pixels
	RevealDotSize = 3.0
	// RevealDensity is the canvas area in square pixels per dot
	RevealDensity = 1000.0
)

// RevealColors is the default dot palette (RGB 0-255)
var RevealColors = [][3]uint8{
	{59, 130, 246},
	{139, 92, 246},
}
