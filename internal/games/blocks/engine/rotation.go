package engine

// Rotation is a quarter-turn direction applied around the anchor.
type Rotation int

const (
	RotateCW Rotation = iota
	RotateCCW
	Rotate180
)

// String returns a human-readable name for the rotation.
func (r Rotation) String() string {
	switch r {
	case RotateCW:
		return "clockwise"
	case RotateCCW:
		return "counterclockwise"
	case Rotate180:
		return "180"
	default:
		return "unknown"
	}
}

// Rotate returns a new shape with every offset turned around the anchor.
// The receiver is left untouched. Screen coordinates grow downward, so
// clockwise maps (dx, dy) to (-dy, dx).
func (s Shape) Rotate(r Rotation) Shape {
	out := s.clone()
	for i, o := range out.Offsets {
		switch r {
		case RotateCW:
			out.Offsets[i] = Point{X: -o.Y, Y: o.X}
		case RotateCCW:
			out.Offsets[i] = Point{X: o.Y, Y: -o.X}
		case Rotate180:
			out.Offsets[i] = Point{X: -o.X, Y: -o.Y}
		}
	}
	return out
}
