// Package scene sequences play sessions and the game-over screen
package scene

import (
	"time"

	"github.com/lixenwraith/monster-shooter/game"
	"github.com/lixenwraith/monster-shooter/render"
	"github.com/lixenwraith/monster-shooter/vmath"
)

// Scene is one full-screen state driven by the director
type Scene interface {
	Update(dt time.Duration)
	Draw(r *render.TerminalRenderer)

	// Tap receives a completed touch in field units
	Tap(p vmath.Vec2)
	Resize(field game.Field)

	// Status returns status-line text for the left and right sides
	Status() (left, right string)
}
