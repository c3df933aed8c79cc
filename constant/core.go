package constant

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the update and render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameStep bounds a single update after a stall
	MaxFrameStep = 100 * time.Millisecond

	// EventChannelSize buffers terminal events between poller and loop
	EventChannelSize = 256
)

// Field geometry, in field units per terminal cell
const (
	CellWidth  = 8.0
	CellHeight = 16.0

	// StatusRows are reserved below the play field
	StatusRows = 1
)
