package parameter

// Flickering grid
const (
	// GridSquareSize is the side of each square in pixels
	GridSquareSize = 4.0
	// GridGap is the spacing between squares in pixels
	GridGap = 6.0
	// GridColor is the square fill colour
	GridColor = "#6B7280"
	// GridMaxOpacity caps a square's opacity
	GridMaxOpacity = 0.5
	// GridFlickerChance is the per-frame probability a square re-rolls its opacity
	GridFlickerChance = 0.1
	// GridWidth/Height are the default canvas dimensions in pixels
	GridWidth  = 800
	GridHeight = 800
)
