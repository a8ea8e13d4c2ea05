package world

import "math"

// Direction is the arrow a cell points with
type Direction int

// Direction constants, in clockwise order starting at Up
const (
	Up Direction = iota
	Right
	Down
	Left
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Up, Right, Down, Left}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the four arrows
func (d Direction) IsValid() bool {
	return d >= Up && d <= Left
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Right:
		return Left
	case Left:
		return Right
	default:
		return d
	}
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 0
	}
}

// Arrow returns the glyph used to draw this direction in text renderers
func (d Direction) Arrow() string {
	switch d {
	case Up:
		return "↑"
	case Right:
		return "→"
	case Down:
		return "↓"
	case Left:
		return "←"
	default:
		return "·"
	}
}

// Rotation returns the clockwise rotation of an up-pointing arrow, in radians
func (d Direction) Rotation() float64 {
	if !d.IsValid() {
		return 0
	}
	return float64(d) * math.Pi / 2
}
