// Package input translates terminal events into effect mutations.
//
// Machine parses tcell events into intents. Adapter applies the effect
// intents (pointer, click, resize) to the current target and surface, and
// hands system intents back to the host.
package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/backdrop/canvas"
)

// Target receives viewport changes; every effect implements it
type Target interface {
	Resize(width, height int)
}

// PointerTarget is a Target that also reacts to the pointer
type PointerTarget interface {
	Target
	PointerMove(x, y float64)
	Click(x, y float64)
}

// Adapter routes input to an effect and its surface
type Adapter struct {
	machine  *Machine
	target   Target
	surface  canvas.Surface
	detached bool
}

// NewAdapter wires a machine to a target and the surface it draws on
func NewAdapter(m *Machine, target Target, surface canvas.Surface) *Adapter {
	return &Adapter{machine: m, target: target, surface: surface}
}

// Detach makes every later event a no-op
func (a *Adapter) Detach() {
	a.detached = true
}

// Detached reports whether Detach has been called
func (a *Adapter) Detached() bool {
	return a.detached
}

// Handle parses ev, applies effect intents, and returns the intent for the host
// Returns nil once detached or when ev maps to nothing
func (a *Adapter) Handle(ev tcell.Event) *Intent {
	if a.detached {
		return nil
	}
	intent := a.machine.Process(ev)
	if intent == nil {
		return nil
	}
	a.Apply(intent)
	return intent
}

// Apply performs the effect side of an intent; system intents are ignored
func (a *Adapter) Apply(intent *Intent) {
	if a.detached || a.target == nil {
		return
	}

	switch intent.Type {
	case IntentResize:
		if a.surface != nil {
			a.surface.Resize(intent.Width, intent.Height)
		}
		a.target.Resize(intent.Width, intent.Height)

	case IntentPointerMove:
		if p, ok := a.target.(PointerTarget); ok {
			p.PointerMove(intent.X, intent.Y)
		}

	case IntentClick:
		if p, ok := a.target.(PointerTarget); ok {
			p.PointerMove(intent.X, intent.Y)
			p.Click(intent.X, intent.Y)
		}

	case IntentBurst:
		p, ok := a.target.(PointerTarget)
		if !ok {
			return
		}
		x, y := intent.X, intent.Y
		if _, _, known := a.machine.Pointer(); !known && a.surface != nil {
			w, h := a.surface.Size()
			x, y = float64(w)/2, float64(h)/2
		}
		p.Click(x, y)
	}
}
