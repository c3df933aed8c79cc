package engine

import (
	"github.com/lixenwraith/monster-shooter/component"
	"github.com/lixenwraith/monster-shooter/core"
	"github.com/lixenwraith/monster-shooter/vmath"
)

// World contains all entities of one session and their components
type World struct {
	nextEntityID core.Entity

	Positions *Store[vmath.Vec2]
	Bodies    *Store[component.BodyComponent]
	Sprites   *Store[component.SpriteComponent]
	Motions   *Store[component.MotionComponent]

	// Previous positions of precise bodies, written by StepMotions
	lastPositions *Store[vmath.Vec2]
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		nextEntityID:  1,
		Positions:     NewStore[vmath.Vec2](),
		Bodies:        NewStore[component.BodyComponent](),
		Sprites:       NewStore[component.SpriteComponent](),
		Motions:       NewStore[component.MotionComponent](),
		lastPositions: NewStore[vmath.Vec2](),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// Spawn creates an entity at pos with the given body and sprite
func (w *World) Spawn(pos vmath.Vec2, body component.BodyComponent, sprite component.SpriteComponent) core.Entity {
	e := w.CreateEntity()
	w.Positions.Set(e, pos)
	w.Bodies.Set(e, body)
	w.Sprites.Set(e, sprite)
	return e
}

// DestroyEntity removes all components associated with an entity
// Safe to call repeatedly or from inside a motion callback
func (w *World) DestroyEntity(e core.Entity) {
	w.Positions.Remove(e)
	w.Bodies.Remove(e)
	w.Sprites.Remove(e)
	w.Motions.Remove(e)
	w.lastPositions.Remove(e)
}

// Alive reports whether the entity still has a position
func (w *World) Alive(e core.Entity) bool {
	return w.Positions.Has(e)
}

// KindOf returns the body kind, KindNone for bodiless or dead entities
func (w *World) KindOf(e core.Entity) component.Kind {
	if b, ok := w.Bodies.Get(e); ok {
		return b.Kind
	}
	return component.KindNone
}

// EntitiesOf returns live entities of the given kind in creation order
func (w *World) EntitiesOf(kind component.Kind) []core.Entity {
	var result []core.Entity
	for _, e := range w.Bodies.Entities() {
		if b, _ := w.Bodies.Get(e); b.Kind == kind {
			result = append(result, e)
		}
	}
	return result
}

// LastPosition returns the position before the most recent motion step
func (w *World) LastPosition(e core.Entity) (vmath.Vec2, bool) {
	return w.lastPositions.Get(e)
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return w.Positions.Count()
}

// Clear removes every entity
func (w *World) Clear() {
	w.Positions.Clear()
	w.Bodies.Clear()
	w.Sprites.Clear()
	w.Motions.Clear()
	w.lastPositions.Clear()
}
