package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Enter, Tab, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyTab:    IntentNextEffect,
			tcell.KeyEnter:  IntentBurst,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'n': IntentNextEffect,
			's': IntentToggleSound,
			' ': IntentBurst,
		},
	}
}

// Clone returns a deep copy of the table
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
	if c.SpecialKeys == nil {
		c.SpecialKeys = make(map[tcell.Key]IntentType)
	}
	if c.Runes == nil {
		c.Runes = make(map[rune]IntentType)
	}
	return c
}

// Lookup resolves a key event to its bound intent
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
