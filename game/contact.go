package game

import (
	"github.com/lixenwraith/monster-shooter/component"
	"github.com/lixenwraith/monster-shooter/core"
	"github.com/lixenwraith/monster-shooter/physics"
)

// contactHandler receives entities in canonical pair order
type contactHandler func(first, second core.Entity)

func (c *Controller) contactTable() map[component.KindPair]contactHandler {
	return map[component.KindPair]contactHandler{
		{First: component.KindMonster, Second: component.KindProjectile}: c.projectileHitMonster,
	}
}

// ResolveContact canonicalizes a contact and dispatches it by kind pair
// Pairs without a handler are ignored
func (c *Controller) ResolveContact(contact physics.Contact) {
	pair, swapped := component.PairOf(contact.KindA, contact.KindB)
	handler, ok := c.handlers[pair]
	if !ok {
		return
	}
	first, second := contact.A, contact.B
	if swapped {
		first, second = second, first
	}
	handler(first, second)
}

// projectileHitMonster removes both bodies and scores the kill
// Either body may already be gone when two contacts share an entity in one tick
func (c *Controller) projectileHitMonster(monster, projectile core.Entity) {
	if !c.world.Alive(monster) || !c.world.Alive(projectile) {
		return
	}
	c.world.DestroyEntity(projectile)
	c.world.DestroyEntity(monster)

	c.score++
	c.statHits.Add(1)
	c.sound.Play(core.SoundHit)
	c.log.Printf("session %s: hit, score %d", c.session, c.score)

	if c.score > c.cfg.WinThreshold {
		c.finish(true)
	}
}
