package compass

import "fmt"

// Direction is a compass heading on a 4-connected grid.
// The zero value is North. Values outside [North, West] are invalid;
// rotations leave them unchanged.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the four headings in clockwise order starting at North.
var Directions = [4]Direction{North, East, South, West}

// offsets[d] is the unit step for d.
var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

var names = [4]string{"north", "east", "south", "west"}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// Right rotates d 90° clockwise.
func (d Direction) Right() Direction {
	return d.rotate(1)
}

// Left rotates d 90° counter-clockwise.
func (d Direction) Left() Direction {
	return d.rotate(3)
}

// Backward rotates d by 180°.
func (d Direction) Backward() Direction {
	return d.rotate(2)
}

func (d Direction) rotate(quarters int) Direction {
	if !d.Valid() {
		return d
	}
	return Direction((int(d) + quarters) % 4)
}

// Delta returns the unit (dx, dy) step for d, or (0, 0) if d is invalid.
func (d Direction) Delta() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	return offsets[d][0], offsets[d][1]
}

// Horizontal reports whether d is East or West.
func (d Direction) Horizontal() bool {
	return d == East || d == West
}

// String returns the lower-case heading name.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return names[d]
}

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Step returns p moved one cell toward d.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Translate returns p moved one cell toward d.
func Translate(p Point, d Direction) Point {
	return p.Step(d)
}
