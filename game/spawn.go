package game

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/monster-shooter/component"
	"github.com/lixenwraith/monster-shooter/core"
	"github.com/lixenwraith/monster-shooter/vmath"
)

// SpawnRow draws a monster's vertical position, inset by half its height
func (c *Controller) SpawnRow() float64 {
	half := c.cfg.MonsterHeight / 2
	lo, hi := half, c.field.Height-half
	if hi < lo {
		// Field shorter than a monster: center it
		return c.field.Height / 2
	}
	return c.rng.Range(lo, hi)
}

// WalkDuration draws how long a monster takes to cross the field
func (c *Controller) WalkDuration() time.Duration {
	lo := c.cfg.MonsterMinDuration.Seconds()
	hi := c.cfg.MonsterMaxDuration.Seconds()
	return time.Duration(c.rng.Range(lo, hi) * float64(time.Second))
}

// SpawnMonster places a monster just off the right edge walking to just off the left edge
// Reaching the far edge loses the session
func (c *Controller) SpawnMonster() core.Entity {
	w, h := c.cfg.MonsterWidth, c.cfg.MonsterHeight
	y := c.SpawnRow()
	d := c.WalkDuration()

	e := c.world.Spawn(
		vmath.V(c.field.Width+w/2, y),
		component.RectBody(component.KindMonster, w, h),
		component.SpriteComponent{
			Glyph:  'M',
			Style:  tcell.StyleDefault.Foreground(tcell.ColorRed),
			Width:  w,
			Height: h,
		},
	)
	c.world.MoveTo(e, vmath.V(-w/2, y), d,
		func() { c.monsterEscaped(e) },
		c.world.RemoveAfter(e),
	)

	c.statSpawned.Add(1)
	return e
}

func (c *Controller) monsterEscaped(e core.Entity) {
	if !c.world.Alive(e) {
		return
	}
	c.statEscaped.Add(1)
	c.log.Printf("session %s: monster %d escaped", c.session, e)
	c.finish(false)
}
