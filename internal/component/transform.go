package component

// Vec2 is a 2D point or offset in board coordinates.
type Vec2 struct {
	X float64
	Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Transform holds position, scale, rotation and draw order. Higher Z is
// drawn later and wins hit tests.
type Transform struct {
	Position Vec2
	Scale    Vec2
	Rotation float64 // radians
	Z        int
}

func NewTransform(x, y float64) *Transform {
	return &Transform{
		Position: Vec2{X: x, Y: y},
		Scale:    Vec2{X: 1, Y: 1},
	}
}

func (t *Transform) WithZ(z int) *Transform {
	t.Z = z
	return t
}
