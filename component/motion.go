package component

import (
	"time"

	"github.com/lixenwraith/monster-shooter/vmath"
)

// MotionComponent is a timed linear move followed by completion callbacks
// Callbacks run in order once the destination is reached
type MotionComponent struct {
	From     vmath.Vec2
	To       vmath.Vec2
	Duration time.Duration
	Elapsed  time.Duration
	Then     []func()
}

// Progress returns completion in [0, 1]
func (m MotionComponent) Progress() float64 {
	if m.Duration <= 0 {
		return 1
	}
	p := float64(m.Elapsed) / float64(m.Duration)
	if p > 1 {
		return 1
	}
	return p
}

// Done reports whether the move has reached its destination
func (m MotionComponent) Done() bool {
	return m.Elapsed >= m.Duration
}
