package core

import "fmt"

// Coord is a grid position. X is the column, Y the row (0 at the top).
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the sum of two coordinates.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Sub returns the offset from other to c.
func (c Coord) Sub(other Coord) Coord {
	return Coord{X: c.X - other.X, Y: c.Y - other.Y}
}

// Step returns the neighboring coordinate in the given direction.
func (c Coord) Step(d Dir) Coord {
	return c.Add(d.Delta())
}

// Dir is one of the four grid directions.
type Dir uint8

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit offset for the direction.
func (d Dir) Delta() Coord {
	switch d {
	case DirUp:
		return Coord{X: 0, Y: -1}
	case DirDown:
		return Coord{X: 0, Y: 1}
	case DirLeft:
		return Coord{X: -1, Y: 0}
	case DirRight:
		return Coord{X: 1, Y: 0}
	default:
		return Coord{}
	}
}

// String returns the direction name.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// neighbors4 lists the directions checked by adjacency passes.
var neighbors4 = [4]Dir{DirUp, DirDown, DirLeft, DirRight}
