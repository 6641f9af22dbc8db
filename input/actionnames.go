package input

// actionRegistry maps canonical action names to intents
// Used by the keymap loader to resolve config action strings to bindings
var actionRegistry = map[string]IntentType{
	// Unbind sentinel
	"none": IntentNone,

	"quit":         IntentQuit,
	"next_effect":  IntentNextEffect,
	"toggle_sound": IntentToggleSound,
	"burst":        IntentBurst,
}

// ActionEntry returns the intent bound to an action name
func ActionEntry(name string) (IntentType, bool) {
	t, ok := actionRegistry[name]
	return t, ok
}
