package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit       // Esc, Ctrl+C, Ctrl+Q, q
	IntentToggleMute // m
	IntentTogglePause
	IntentResize // Terminal resize event

	// Left button released after a press: a completed touch
	IntentTap
)

var intentNames = [...]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentToggleMute:  "toggle_mute",
	IntentTogglePause: "toggle_pause",
	IntentResize:      "resize",
	IntentTap:         "tap",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type IntentType

	// Cell of a tap release or new terminal size for resize
	X, Y int
}
