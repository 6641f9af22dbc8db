package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents, handled by the host
	IntentQuit        // q, Ctrl+C, Esc
	IntentNextEffect  // n, Tab
	IntentToggleSound // s

	// Effect intents, applied by the adapter
	IntentPointerMove // Any mouse report
	IntentClick       // Left button press edge
	IntentBurst       // Space, Enter: click at the last pointer position
	IntentResize      // Terminal resize event
)

var intentNames = [...]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentNextEffect:  "next_effect",
	IntentToggleSound: "toggle_sound",
	IntentPointerMove: "pointer_move",
	IntentClick:       "click",
	IntentBurst:       "burst",
	IntentResize:      "resize",
}

// String returns the action name used in keymap config
func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent represents a parsed semantic action
// Pure data struct; pointer coordinates are surface pixels
type Intent struct {
	Type IntentType
	X, Y float64

	// Surface pixel size for IntentResize
	Width, Height int
}
