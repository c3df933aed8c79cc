package game

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/monster-shooter/component"
	"github.com/lixenwraith/monster-shooter/config"
	"github.com/lixenwraith/monster-shooter/core"
	"github.com/lixenwraith/monster-shooter/physics"
	"github.com/lixenwraith/monster-shooter/status"
	"github.com/lixenwraith/monster-shooter/vmath"
)

const tick = 16 * time.Millisecond

// fracRandom returns lo + f*(hi-lo), cycling through fracs
type fracRandom struct {
	fracs []float64
	i     int
}

func (r *fracRandom) Range(lo, hi float64) float64 {
	f := r.fracs[r.i%len(r.fracs)]
	r.i++
	return lo + f*(hi-lo)
}

type soundRecorder struct {
	played []core.SoundType
}

func (s *soundRecorder) Play(t core.SoundType) {
	s.played = append(s.played, t)
}

func (s *soundRecorder) count(t core.SoundType) int {
	n := 0
	for _, p := range s.played {
		if p == t {
			n++
		}
	}
	return n
}

func newTestController(t *testing.T, field Field, fracs ...float64) (*Controller, *soundRecorder) {
	t.Helper()
	if len(fracs) == 0 {
		fracs = []float64{0.5}
	}
	sound := &soundRecorder{}
	c := NewController(config.Default(), field, Deps{
		Random: &fracRandom{fracs: fracs},
		Sound:  sound,
	})
	return c, sound
}

// hit fabricates a monster/projectile contact at the field center
func hit(c *Controller, monsterFirst bool) {
	m := c.SpawnMonster()
	p, _ := c.Shoot(c.Player().Add(vmath.V(100, 0)))
	contact := physics.Contact{A: m, B: p, KindA: component.KindMonster, KindB: component.KindProjectile}
	if !monsterFirst {
		contact = physics.Contact{A: p, B: m, KindA: component.KindProjectile, KindB: component.KindMonster}
	}
	c.ResolveContact(contact)
}

func TestPlayerPlacement(t *testing.T) {
	c, _ := newTestController(t, Field{Width: 320, Height: 480})
	if got := c.Player(); got != vmath.V(32, 240) {
		t.Errorf("player at %v, want (32, 240)", got)
	}

	c.Resize(Field{Width: 640, Height: 200})
	if got := c.Player(); got != vmath.V(64, 100) {
		t.Errorf("player after resize at %v, want (64, 100)", got)
	}
}

func TestSpawnDrawsStayInRange(t *testing.T) {
	field := Field{Width: 320, Height: 480}
	c := NewController(config.Default(), field, Deps{Random: vmath.NewFastRand(99)})
	half := c.cfg.MonsterHeight / 2

	for i := 0; i < 10000; i++ {
		y := c.SpawnRow()
		if y < half || y > field.Height-half {
			t.Fatalf("SpawnRow = %v outside [%v, %v]", y, half, field.Height-half)
		}
		d := c.WalkDuration()
		if d < 2*time.Second || d > 4*time.Second {
			t.Fatalf("WalkDuration = %v outside [2s, 4s]", d)
		}
	}
}

func TestSpawnRowTinyField(t *testing.T) {
	c, _ := newTestController(t, Field{Width: 320, Height: 4})
	if got := c.SpawnRow(); got != 2 {
		t.Errorf("SpawnRow on tiny field = %v, want centered 2", got)
	}
}

func TestSpawnMonsterPath(t *testing.T) {
	c, _ := newTestController(t, Field{Width: 320, Height: 480}, 0.5)
	w := c.cfg.MonsterWidth

	m := c.SpawnMonster()
	pos, ok := c.World().Positions.Get(m)
	if !ok {
		t.Fatal("monster has no position")
	}
	if pos != vmath.V(320+w/2, 240) {
		t.Errorf("spawned at %v, want (%v, 240)", pos, 320+w/2)
	}

	motion, ok := c.World().Motions.Get(m)
	if !ok {
		t.Fatal("monster has no motion")
	}
	if motion.To != vmath.V(-w/2, 240) {
		t.Errorf("destination = %v, want (%v, 240)", motion.To, -w/2)
	}
	if motion.Duration != 3*time.Second {
		t.Errorf("duration = %v, want 3s", motion.Duration)
	}
	if c.World().KindOf(m) != component.KindMonster {
		t.Errorf("kind = %v", c.World().KindOf(m))
	}
}

func TestSpawnCadence(t *testing.T) {
	c, _ := newTestController(t, Field{Width: 320, Height: 480})

	c.Update(tick)
	if n := len(c.World().EntitiesOf(component.KindMonster)); n != 1 {
		t.Fatalf("after first tick %d monsters, want 1", n)
	}

	for elapsed := time.Duration(0); elapsed < time.Second; elapsed += tick {
		c.Update(tick)
	}
	if n := len(c.World().EntitiesOf(component.KindMonster)); n != 2 {
		t.Errorf("after ~1s %d monsters, want 2", n)
	}
}

func TestTrajectory(t *testing.T) {
	origin := vmath.V(32, 240)

	tests := []struct {
		name   string
		touch  vmath.Vec2
		ok     bool
		expect vmath.Vec2
	}{
		{"straight right", vmath.V(160, 240), true, vmath.V(1032, 240)},
		{"far right same direction", vmath.V(5000, 240), true, vmath.V(1032, 240)},
		{"barely right", vmath.V(32.001, 240), true, vmath.V(1032, 240)},
		{"diagonal", vmath.V(32+3, 240+4), true, vmath.V(32+600, 240+800)},
		{"vertical", vmath.V(32, 100), false, vmath.Vec2{}},
		{"backward", vmath.V(0, 240), false, vmath.Vec2{}},
		{"on player", origin, false, vmath.Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dest, ok := Trajectory(origin, tt.touch, 1000)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !vmath.NearlyEqual(dest, tt.expect, 1e-6) {
				t.Errorf("dest = %v, want %v", dest, tt.expect)
			}
			if ok {
				if d := dest.Sub(origin).Length(); math.Abs(d-1000) > 1e-6 {
					t.Errorf("travel = %v, want 1000", d)
				}
			}
		})
	}
}

func TestShootCreatesProjectile(t *testing.T) {
	c, sound := newTestController(t, Field{Width: 320, Height: 480})

	p, ok := c.Shoot(vmath.V(160, 240))
	if !ok {
		t.Fatal("shot rejected")
	}
	pos, _ := c.World().Positions.Get(p)
	if pos != vmath.V(32, 240) {
		t.Errorf("projectile starts at %v, want player position", pos)
	}
	motion, _ := c.World().Motions.Get(p)
	if motion.To != vmath.V(1032, 240) || motion.Duration != 2*time.Second {
		t.Errorf("motion = %+v", motion)
	}
	body, _ := c.World().Bodies.Get(p)
	if body.Kind != component.KindProjectile || body.Shape != component.ShapeCircle || !body.Precise {
		t.Errorf("body = %+v", body)
	}
	if sound.count(core.SoundShoot) != 1 {
		t.Errorf("shoot sound played %d times", sound.count(core.SoundShoot))
	}

	// Projectile is removed once it arrives
	for i := 0; i < 200 && c.World().Alive(p); i++ {
		c.World().StepMotions(tick)
	}
	if c.World().Alive(p) {
		t.Error("projectile still alive after its flight")
	}
}

func TestShootRejectsBackwardAndVertical(t *testing.T) {
	stats := status.NewRegistry()
	c := NewController(config.Default(), Field{Width: 320, Height: 480}, Deps{Random: &fracRandom{fracs: []float64{0.5}}, Stats: stats})

	for _, touch := range []vmath.Vec2{vmath.V(10, 240), vmath.V(32, 0), vmath.V(-100, 900)} {
		if _, ok := c.Shoot(touch); ok {
			t.Errorf("Shoot(%v) accepted", touch)
		}
	}
	if n := len(c.World().EntitiesOf(component.KindProjectile)); n != 0 {
		t.Errorf("%d projectiles after rejected shots", n)
	}
	if got := stats.Ints.Get(status.KeyRejected).Load(); got != 3 {
		t.Errorf("rejected metric = %d, want 3", got)
	}
}

func TestContactOrderIndependence(t *testing.T) {
	for _, monsterFirst := range []bool{true, false} {
		c, sound := newTestController(t, Field{Width: 320, Height: 480})
		hit(c, monsterFirst)

		if c.Score() != 1 {
			t.Errorf("monsterFirst=%v: score = %d, want 1", monsterFirst, c.Score())
		}
		if n := c.World().EntityCount(); n != 1 {
			t.Errorf("monsterFirst=%v: %d entities left, want only the player", monsterFirst, n)
		}
		if sound.count(core.SoundHit) != 1 {
			t.Errorf("monsterFirst=%v: hit sound %d times", monsterFirst, sound.count(core.SoundHit))
		}
	}
}

func TestUnhandledPairsIgnored(t *testing.T) {
	c, _ := newTestController(t, Field{Width: 320, Height: 480})
	a := c.SpawnMonster()
	b := c.SpawnMonster()

	c.ResolveContact(physics.Contact{A: a, B: b, KindA: component.KindMonster, KindB: component.KindMonster})
	c.ResolveContact(physics.Contact{A: 1, B: a, KindA: component.KindPlayer, KindB: component.KindMonster})

	if c.Score() != 0 || !c.World().Alive(a) || !c.World().Alive(b) {
		t.Error("non monster/projectile contact had an effect")
	}
}

func TestDoubleContactScoresOnce(t *testing.T) {
	c, _ := newTestController(t, Field{Width: 320, Height: 480})
	m := c.SpawnMonster()
	p1, _ := c.Shoot(vmath.V(200, 240))
	p2, _ := c.Shoot(vmath.V(200, 240))

	c.ResolveContact(physics.Contact{A: m, B: p1, KindA: component.KindMonster, KindB: component.KindProjectile})
	c.ResolveContact(physics.Contact{A: m, B: p2, KindA: component.KindMonster, KindB: component.KindProjectile})

	if c.Score() != 1 {
		t.Errorf("score = %d, want 1", c.Score())
	}
	if !c.World().Alive(p2) {
		t.Error("second projectile consumed by an already destroyed monster")
	}
}

func TestWinAboveThreshold(t *testing.T) {
	c, sound := newTestController(t, Field{Width: 320, Height: 480})

	for i := 0; i < 30; i++ {
		hit(c, i%2 == 0)
	}
	if c.Score() != 30 {
		t.Fatalf("score = %d", c.Score())
	}
	if c.Finished() {
		t.Fatal("reaching the threshold must not win yet")
	}

	hit(c, true)
	o, ok := c.Outcome()
	if !ok || !o.Won || o.Score != 31 {
		t.Fatalf("outcome = %+v, %v", o, ok)
	}
	if o.Field != (Field{Width: 320, Height: 480}) {
		t.Errorf("outcome field = %+v", o.Field)
	}

	// More hits never produce a second outcome
	c.handlers[component.KindPair{First: component.KindMonster, Second: component.KindProjectile}](c.SpawnMonster(), c.SpawnMonster())
	if n := len(c.Outcomes()); n != 1 {
		t.Errorf("%d outcomes queued, want 1", n)
	}
	if sound.count(core.SoundWin) != 1 {
		t.Errorf("win sound %d times", sound.count(core.SoundWin))
	}
}

func TestEscapeLosesOnce(t *testing.T) {
	c, sound := newTestController(t, Field{Width: 320, Height: 480})

	// Two monsters finish in the same tick
	c.SpawnMonster()
	c.SpawnMonster()
	c.World().StepMotions(3 * time.Second)

	o, ok := c.Outcome()
	if !ok || o.Won {
		t.Fatalf("outcome = %+v, %v, want loss", o, ok)
	}
	if n := len(c.Outcomes()); n != 1 {
		t.Errorf("%d outcomes queued, want 1", n)
	}
	if sound.count(core.SoundLose) != 1 {
		t.Errorf("lose sound %d times", sound.count(core.SoundLose))
	}
	if n := len(c.World().EntitiesOf(component.KindMonster)); n != 0 {
		t.Errorf("%d escaped monsters left in world", n)
	}
}

func TestHitMonsterNeverLoses(t *testing.T) {
	c, _ := newTestController(t, Field{Width: 320, Height: 480})
	hit(c, true)
	c.World().StepMotions(10 * time.Second)
	if c.Finished() {
		t.Error("destroyed monster still triggered an outcome")
	}
}

func TestSessionFreezesAfterOutcome(t *testing.T) {
	c, _ := newTestController(t, Field{Width: 320, Height: 480})
	c.SpawnMonster()
	c.World().StepMotions(3 * time.Second)
	if !c.Finished() {
		t.Fatal("expected loss")
	}

	before := c.World().EntityCount()
	c.Update(5 * time.Second)
	if c.World().EntityCount() != before {
		t.Error("Update changed the world after the outcome")
	}
	if _, ok := c.Shoot(vmath.V(300, 240)); ok {
		t.Error("shot accepted after the outcome")
	}
}

func TestEscapeBeatsContactInSameTick(t *testing.T) {
	c, _ := newTestController(t, Field{Width: 320, Height: 480})
	w := c.cfg.MonsterWidth

	m := c.SpawnMonster()
	// Projectile parked on the monster's exit point
	p := c.World().Spawn(vmath.V(-w/2, 240), component.CircleBody(component.KindProjectile, 4), component.SpriteComponent{})
	c.World().MoveTo(m, vmath.V(-w/2, 240), tick, func() { c.monsterEscaped(m) }, c.World().RemoveAfter(m))

	c.Update(tick)

	o, ok := c.Outcome()
	if !ok || o.Won {
		t.Fatalf("outcome = %+v, %v, want loss", o, ok)
	}
	if c.Score() != 0 {
		t.Errorf("score = %d, contact should not resolve after the loss", c.Score())
	}
	if !c.World().Alive(p) {
		t.Error("projectile consumed after the loss")
	}
}

func TestExampleScenario(t *testing.T) {
	// 320x480 field, monster at y=240 walking for 3s, tap at (160, 240)
	c, _ := newTestController(t, Field{Width: 320, Height: 480}, 0.5)

	c.Update(tick)
	monsters := c.World().EntitiesOf(component.KindMonster)
	if len(monsters) != 1 {
		t.Fatalf("%d monsters, want 1", len(monsters))
	}
	if pos, _ := c.World().Positions.Get(monsters[0]); pos.Y != 240 {
		t.Fatalf("monster row %v, want 240", pos.Y)
	}

	p, ok := c.Shoot(vmath.V(160, 240))
	if !ok {
		t.Fatal("shot rejected")
	}
	if m, _ := c.World().Motions.Get(p); m.To != vmath.V(1032, 240) || m.Duration != 2*time.Second {
		t.Fatalf("projectile motion = %+v", m)
	}

	elapsed := tick
	for c.Score() == 0 && elapsed < 3*time.Second {
		c.Update(tick)
		elapsed += tick
	}

	if c.Score() != 1 {
		t.Fatalf("score = %d, want 1", c.Score())
	}
	if c.Finished() {
		t.Error("session ended, want contact before the monster exits")
	}
	if c.World().Alive(monsters[0]) || c.World().Alive(p) {
		t.Error("hit bodies not removed")
	}
}
