package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine is the input state machine
// Parses tcell events into semantic Intent, converting cells to surface pixels
type Machine struct {
	keyTable *KeyTable
	cellW    int
	cellH    int

	// Mouse state for press-edge detection
	buttonDown bool
	pointerX   float64
	pointerY   float64
	hasPointer bool
}

// NewMachine creates a machine for the given cell metrics in pixels
func NewMachine(cellW, cellH int) *Machine {
	if cellW < 1 {
		cellW = 1
	}
	if cellH < 1 {
		cellH = 1
	}
	return &Machine{
		keyTable: DefaultKeyTable(),
		cellW:    cellW,
		cellH:    cellH,
	}
}

// SetKeyTable replaces the active bindings
func (m *Machine) SetKeyTable(kt *KeyTable) {
	if kt != nil {
		m.keyTable = kt
	}
}

// Pointer returns the last reported pointer position in pixels
func (m *Machine) Pointer() (x, y float64, ok bool) {
	return m.pointerX, m.pointerY, m.hasPointer
}

// Reset clears button state so the next press is a fresh click
// The pointer position survives, the mouse has not moved
func (m *Machine) Reset() {
	m.buttonDown = false
}

// Process parses a terminal event and returns an Intent
// Returns nil for unbound keys and uninteresting events
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		return &Intent{Type: IntentResize, Width: cols * m.cellW, Height: rows * m.cellH}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	t := m.keyTable.Lookup(ev)
	if t == IntentNone {
		return nil
	}
	intent := &Intent{Type: t}
	if t == IntentBurst {
		intent.X, intent.Y = m.pointerX, m.pointerY
	}
	return intent
}

// processMouse reports every mouse event as a move to the cell centre
// A left button transition from released to pressed becomes a click
func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	col, row := ev.Position()
	m.pointerX = (float64(col) + 0.5) * float64(m.cellW)
	m.pointerY = (float64(row) + 0.5) * float64(m.cellH)
	m.hasPointer = true

	pressed := ev.Buttons()&tcell.Button1 != 0
	edge := pressed && !m.buttonDown
	m.buttonDown = pressed

	if edge {
		return &Intent{Type: IntentClick, X: m.pointerX, Y: m.pointerY}
	}
	return &Intent{Type: IntentPointerMove, X: m.pointerX, Y: m.pointerY}
}
