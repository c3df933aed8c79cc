package input

import "github.com/gdamore/tcell/v2"

// Machine parses tcell events into semantic intents
// Mouse reports are level-based, so button transitions are tracked here
type Machine struct {
	keyTable *KeyTable
	buttons  tcell.ButtonMask
	pressed  bool
}

// NewMachine creates a machine with the default key table
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// Reset forgets any in-flight press, used when the scene changes under the pointer
func (m *Machine) Reset() {
	m.buttons = tcell.ButtonNone
	m.pressed = false
}

// Process parses a tcell event and returns an Intent
// Returns nil for events that carry no action
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		return &Intent{Type: IntentResize, X: w, Y: h}
	case *tcell.EventKey:
		if t := m.keyTable.Lookup(ev); t != IntentNone {
			return &Intent{Type: t}
		}
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

// processMouse emits a tap when button 1 goes from down to up
// The release position is the touch-end location
func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	btn := ev.Buttons()
	prev := m.buttons
	m.buttons = btn

	down := btn&tcell.Button1 != 0
	wasDown := prev&tcell.Button1 != 0

	switch {
	case down && !wasDown:
		m.pressed = true
	case !down && wasDown && m.pressed:
		m.pressed = false
		x, y := ev.Position()
		return &Intent{Type: IntentTap, X: x, Y: y}
	}
	return nil
}
