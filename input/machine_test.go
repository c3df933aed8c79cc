package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyIntents(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want IntentType
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{"shift-m", tcell.NewEventKey(tcell.KeyRune, 'M', tcell.ModShift), IntentToggleMute},
		{"p", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), IntentTogglePause},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			got := m.Process(tt.ev)
			if got == nil || got.Type != tt.want {
				t.Errorf("Process(%s) = %v, want %s", tt.name, got, tt.want)
			}
		})
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	m := NewMachine()
	if got := m.Process(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)); got != nil {
		t.Errorf("unbound key produced %+v", got)
	}
}

func TestTapOnRelease(t *testing.T) {
	m := NewMachine()

	if got := m.Process(tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone)); got != nil {
		t.Fatalf("press produced %+v", got)
	}
	// Drag while held
	if got := m.Process(tcell.NewEventMouse(10, 6, tcell.Button1, tcell.ModNone)); got != nil {
		t.Fatalf("held button produced %+v", got)
	}

	got := m.Process(tcell.NewEventMouse(12, 7, tcell.ButtonNone, tcell.ModNone))
	if got == nil || got.Type != IntentTap {
		t.Fatalf("release = %+v, want tap", got)
	}
	if got.X != 12 || got.Y != 7 {
		t.Errorf("tap at (%d,%d), want release position (12,7)", got.X, got.Y)
	}

	// Motion without a button is not a tap
	if got := m.Process(tcell.NewEventMouse(13, 7, tcell.ButtonNone, tcell.ModNone)); got != nil {
		t.Errorf("hover produced %+v", got)
	}
}

func TestOtherButtonsIgnored(t *testing.T) {
	m := NewMachine()
	m.Process(tcell.NewEventMouse(1, 1, tcell.Button2, tcell.ModNone))
	if got := m.Process(tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone)); got != nil {
		t.Errorf("right click produced %+v", got)
	}
}

func TestResetDropsPendingPress(t *testing.T) {
	m := NewMachine()
	m.Process(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	m.Reset()
	if got := m.Process(tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone)); got != nil {
		t.Errorf("release after reset produced %+v", got)
	}
}

func TestResizeIntent(t *testing.T) {
	m := NewMachine()
	got := m.Process(tcell.NewEventResize(40, 31))
	if got == nil || got.Type != IntentResize || got.X != 40 || got.Y != 31 {
		t.Errorf("resize = %+v", got)
	}
}
