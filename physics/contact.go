package physics

import (
	"github.com/lixenwraith/monster-shooter/component"
	"github.com/lixenwraith/monster-shooter/core"
	"github.com/lixenwraith/monster-shooter/engine"
	"github.com/lixenwraith/monster-shooter/vmath"
)

// Contact is one began-contact report between two bodies
// A and B carry no ordering guarantee, consumers canonicalize
type Contact struct {
	A, B         core.Entity
	KindA, KindB component.Kind
}

type pairKey struct {
	lo, hi core.Entity
}

func keyOf(a, b core.Entity) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// ContactDetector reports pairs that started touching since the previous Detect
// Pairs that stay in contact are reported once
type ContactDetector struct {
	touching map[pairKey]struct{}
}

func NewContactDetector() *ContactDetector {
	return &ContactDetector{touching: make(map[pairKey]struct{})}
}

// Interested reports whether either kind requests contact reports for the other
func Interested(a, b component.Kind) bool {
	return a.Category()&b.ContactMask() != 0 || b.Category()&a.ContactMask() != 0
}

// Detect scans live bodies and returns began contacts in deterministic order
func (d *ContactDetector) Detect(w *engine.World) []Contact {
	entities := w.Bodies.Entities()
	now := make(map[pairKey]struct{}, len(d.touching))
	var began []Contact

	for i := 0; i < len(entities); i++ {
		ea := entities[i]
		ba, _ := w.Bodies.Get(ea)
		pa, ok := w.Positions.Get(ea)
		if !ok {
			continue
		}
		for j := i + 1; j < len(entities); j++ {
			eb := entities[j]
			bb, _ := w.Bodies.Get(eb)
			if !Interested(ba.Kind, bb.Kind) {
				continue
			}
			pb, ok := w.Positions.Get(eb)
			if !ok {
				continue
			}
			if !touching(w, ea, pa, ba, eb, pb, bb) {
				continue
			}

			key := keyOf(ea, eb)
			now[key] = struct{}{}
			if _, was := d.touching[key]; !was {
				began = append(began, Contact{A: ea, B: eb, KindA: ba.Kind, KindB: bb.Kind})
			}
		}
	}

	d.touching = now
	return began
}

func touching(w *engine.World, ea core.Entity, pa vmath.Vec2, ba component.BodyComponent, eb core.Entity, pb vmath.Vec2, bb component.BodyComponent) bool {
	if ba.Precise {
		if last, ok := w.LastPosition(ea); ok {
			return SweptOverlaps(last, pa, ba, pb, bb)
		}
	}
	if bb.Precise {
		if last, ok := w.LastPosition(eb); ok {
			return SweptOverlaps(last, pb, bb, pa, ba)
		}
	}
	return Overlaps(pa, ba, pb, bb)
}

// Reset forgets all ongoing contacts
func (d *ContactDetector) Reset() {
	clear(d.touching)
}
