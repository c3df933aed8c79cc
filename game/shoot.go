package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/monster-shooter/component"
	"github.com/lixenwraith/monster-shooter/core"
	"github.com/lixenwraith/monster-shooter/vmath"
)

// Trajectory returns where a shot from origin toward touch ends up
// Shots that do not travel rightward are rejected
func Trajectory(origin, touch vmath.Vec2, distance float64) (vmath.Vec2, bool) {
	offset := touch.Sub(origin)
	if offset.X <= 0 {
		return vmath.Vec2{}, false
	}
	return origin.Add(offset.Normalized().Scale(distance)), true
}

// Shoot fires a projectile from the player toward a touch location
// Returns the projectile and false when the shot was rejected
func (c *Controller) Shoot(touch vmath.Vec2) (core.Entity, bool) {
	if c.outcome != nil {
		return 0, false
	}

	c.sound.Play(core.SoundShoot)
	c.statShots.Add(1)

	origin := c.Player()
	dest, ok := Trajectory(origin, touch, c.cfg.ShootDistance)
	if !ok {
		c.statRejected.Add(1)
		return 0, false
	}

	body := component.CircleBody(component.KindProjectile, c.cfg.ProjectileRadius)
	body.Precise = true
	e := c.world.Spawn(origin, body, component.SpriteComponent{
		Glyph:  '•',
		Style:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
		Width:  c.cfg.ProjectileRadius * 2,
		Height: c.cfg.ProjectileRadius * 2,
	})
	c.world.MoveTo(e, dest, c.cfg.ProjectileDuration, c.world.RemoveAfter(e))
	return e, true
}
