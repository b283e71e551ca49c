package core

import "fmt"

// Coord identifies a grid cell.
// X increases to the right, Y increases downward (screen coordinates).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the neighbouring coordinate one cell forward along d.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Back returns the neighbouring coordinate one cell backward along d.
func (c Coord) Back(d Direction) Coord {
	dx, dy := d.Delta()
	return c.Add(-dx, -dy)
}

// Before reports whether c precedes other in row-major order.
func (c Coord) Before(other Coord) bool {
	if c.Y != other.Y {
		return c.Y < other.Y
	}
	return c.X < other.X
}
