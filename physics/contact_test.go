package physics

import (
	"testing"
	"time"

	"github.com/lixenwraith/monster-shooter/component"
	"github.com/lixenwraith/monster-shooter/engine"
	"github.com/lixenwraith/monster-shooter/vmath"
)

func TestInterested(t *testing.T) {
	tests := []struct {
		a, b   component.Kind
		expect bool
	}{
		{component.KindMonster, component.KindProjectile, true},
		{component.KindProjectile, component.KindMonster, true},
		{component.KindMonster, component.KindMonster, false},
		{component.KindProjectile, component.KindProjectile, false},
		{component.KindPlayer, component.KindMonster, false},
		{component.KindPlayer, component.KindProjectile, false},
	}
	for _, tt := range tests {
		if got := Interested(tt.a, tt.b); got != tt.expect {
			t.Errorf("Interested(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expect)
		}
	}
}

func TestDetectReportsBeganContactOnce(t *testing.T) {
	w := engine.NewWorld()
	d := NewContactDetector()

	m := w.Spawn(vmath.V(100, 100), component.RectBody(component.KindMonster, 20, 20), component.SpriteComponent{})
	p := w.Spawn(vmath.V(100, 100), component.CircleBody(component.KindProjectile, 2), component.SpriteComponent{})

	contacts := d.Detect(w)
	if len(contacts) != 1 {
		t.Fatalf("got %d contacts, want 1", len(contacts))
	}
	c := contacts[0]
	if c.A != m || c.B != p || c.KindA != component.KindMonster || c.KindB != component.KindProjectile {
		t.Errorf("contact = %+v", c)
	}

	// Still touching: no new report
	if got := d.Detect(w); len(got) != 0 {
		t.Errorf("repeated contact reported: %+v", got)
	}

	// Separate then touch again
	w.Positions.Set(p, vmath.V(300, 300))
	d.Detect(w)
	w.Positions.Set(p, vmath.V(100, 100))
	if got := d.Detect(w); len(got) != 1 {
		t.Errorf("re-contact count = %d, want 1", len(got))
	}
}

func TestDetectIgnoresUninterestedPairs(t *testing.T) {
	w := engine.NewWorld()
	d := NewContactDetector()

	w.Spawn(vmath.V(0, 0), component.RectBody(component.KindPlayer, 20, 20), component.SpriteComponent{})
	w.Spawn(vmath.V(0, 0), component.RectBody(component.KindMonster, 20, 20), component.SpriteComponent{})
	w.Spawn(vmath.V(0, 0), component.RectBody(component.KindMonster, 20, 20), component.SpriteComponent{})
	w.Spawn(vmath.V(0, 0), component.CircleBody(component.KindProjectile, 1), component.SpriteComponent{})
	w.Spawn(vmath.V(0, 0), component.CircleBody(component.KindProjectile, 1), component.SpriteComponent{})

	// 2 monsters x 2 projectiles
	if got := d.Detect(w); len(got) != 4 {
		t.Errorf("got %d contacts, want 4", len(got))
	}
}

func TestDetectUsesSweptTestForPreciseBodies(t *testing.T) {
	w := engine.NewWorld()
	d := NewContactDetector()

	w.Spawn(vmath.V(50, 0), component.RectBody(component.KindMonster, 4, 4), component.SpriteComponent{})

	body := component.CircleBody(component.KindProjectile, 1)
	body.Precise = true
	p := w.Spawn(vmath.V(0, 0), body, component.SpriteComponent{})
	w.MoveTo(p, vmath.V(1000, 0), time.Second)

	// One 100ms step jumps 100 units, straight over the monster
	w.StepMotions(100 * time.Millisecond)
	if got := d.Detect(w); len(got) != 1 {
		t.Errorf("precise projectile tunneled: %d contacts", len(got))
	}
}
