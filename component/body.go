package component

// Shape selects the overlap test used for a body
type Shape uint8

const (
	ShapeRect Shape = iota
	ShapeCircle
)

// BodyComponent is the contact volume of an entity, centered on its position
// Bodies never receive collision response; they only report contacts
type BodyComponent struct {
	Kind   Kind
	Shape  Shape
	Width  float64 // Rect extent
	Height float64
	Radius float64 // Circle extent

	// Precise enables swept testing along the last step for fast movers
	Precise bool
}

// RectBody builds a rectangular body
func RectBody(kind Kind, w, h float64) BodyComponent {
	return BodyComponent{Kind: kind, Shape: ShapeRect, Width: w, Height: h}
}

// CircleBody builds a circular body
func CircleBody(kind Kind, r float64) BodyComponent {
	return BodyComponent{Kind: kind, Shape: ShapeCircle, Radius: r}
}
