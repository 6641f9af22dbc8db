package parameter

import "time"

// Terminal host
const (
	// CellWidth/CellHeight map one terminal cell to surface pixels
	CellWidth  = 8
	CellHeight = 16

	// RefreshHz is the host redraw rate, the display refresh analogue
	RefreshHz = 240

	// EventBuffer is the tcell event channel depth
	EventBuffer = 100
)

// RefreshInterval converts a refresh rate into a ticker period
func RefreshInterval(hz int) time.Duration {
	if hz <= 0 {
		hz = RefreshHz
	}
	return time.Second / time.Duration(hz)
}

// Preview server
const (
	PreviewAddr      = ":8080"
	PreviewMaxFrames = 600
	PreviewWidth     = 800
	PreviewHeight    = 600
	PreviewFrames    = 60
)
