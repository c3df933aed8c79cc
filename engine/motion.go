package engine

import (
	"time"

	"github.com/lixenwraith/monster-shooter/component"
	"github.com/lixenwraith/monster-shooter/core"
	"github.com/lixenwraith/monster-shooter/vmath"
)

// MoveTo schedules a linear move from the entity's current position
// Replaces any running move; then callbacks run in order on arrival
func (w *World) MoveTo(e core.Entity, dest vmath.Vec2, d time.Duration, then ...func()) {
	from, ok := w.Positions.Get(e)
	if !ok {
		return
	}
	w.Motions.Set(e, component.MotionComponent{
		From:     from,
		To:       dest,
		Duration: d,
		Then:     then,
	})
}

// RemoveAfter returns a callback that destroys e, for use as the tail of a MoveTo sequence
func (w *World) RemoveAfter(e core.Entity) func() {
	return func() { w.DestroyEntity(e) }
}

// StepMotions advances every running move by dt
// Completed moves are snapped to their destination, then their callbacks run in creation order
// A callback may destroy any entity; later callbacks of destroyed entities still run
func (w *World) StepMotions(dt time.Duration) {
	var finished []component.MotionComponent

	for _, e := range w.Motions.Entities() {
		m, ok := w.Motions.Get(e)
		if !ok {
			continue
		}
		pos, _ := w.Positions.Get(e)
		if b, ok := w.Bodies.Get(e); ok && b.Precise {
			w.lastPositions.Set(e, pos)
		}

		m.Elapsed += dt
		w.Positions.Set(e, vmath.Lerp(m.From, m.To, m.Progress()))

		if m.Done() {
			w.Motions.Remove(e)
			finished = append(finished, m)
			continue
		}
		w.Motions.Set(e, m)
	}

	for _, m := range finished {
		for _, fn := range m.Then {
			fn()
		}
	}
}
