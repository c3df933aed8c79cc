package physics

import (
	"math"

	"github.com/lixenwraith/monster-shooter/component"
	"github.com/lixenwraith/monster-shooter/vmath"
)

// Overlaps tests two bodies centered at pa and pb, touching edges count as overlap
func Overlaps(pa vmath.Vec2, a component.BodyComponent, pb vmath.Vec2, b component.BodyComponent) bool {
	switch {
	case a.Shape == component.ShapeRect && b.Shape == component.ShapeRect:
		return math.Abs(pa.X-pb.X)*2 <= a.Width+b.Width &&
			math.Abs(pa.Y-pb.Y)*2 <= a.Height+b.Height
	case a.Shape == component.ShapeCircle && b.Shape == component.ShapeCircle:
		r := a.Radius + b.Radius
		return pa.Sub(pb).LengthSq() <= r*r
	case a.Shape == component.ShapeRect:
		return rectCircle(pa, a, pb, b.Radius)
	default:
		return rectCircle(pb, b, pa, a.Radius)
	}
}

// rectCircle clamps the circle center onto the rect and compares the gap to the radius
func rectCircle(rc vmath.Vec2, rect component.BodyComponent, cc vmath.Vec2, radius float64) bool {
	hw, hh := rect.Width/2, rect.Height/2
	nearest := vmath.V(
		vmath.Clamp(cc.X, rc.X-hw, rc.X+hw),
		vmath.Clamp(cc.Y, rc.Y-hh, rc.Y+hh),
	)
	return cc.Sub(nearest).LengthSq() <= radius*radius
}

// SweptOverlaps tests a moving body along from→to against a stationary one
// Samples the segment at half-extent spacing so fast movers cannot tunnel
func SweptOverlaps(from, to vmath.Vec2, mover component.BodyComponent, p vmath.Vec2, other component.BodyComponent) bool {
	step := extent(mover) / 2
	if step <= 0 {
		step = 0.5
	}
	dist := to.Sub(from).Length()
	n := int(math.Ceil(dist / step))
	for i := 0; i <= n; i++ {
		t := 1.0
		if n > 0 {
			t = float64(i) / float64(n)
		}
		if Overlaps(vmath.Lerp(from, to, t), mover, p, other) {
			return true
		}
	}
	return false
}

func extent(b component.BodyComponent) float64 {
	if b.Shape == component.ShapeCircle {
		return b.Radius * 2
	}
	return math.Min(b.Width, b.Height)
}
