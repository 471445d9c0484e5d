package grid

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/katalvlaran/roomtopo/compass"
	"github.com/katalvlaran/roomtopo/template"
)

// DefaultLegend maps '#' to a wall, '+' to a gateway and '.' to an empty cell.
func DefaultLegend() map[rune]string {
	return map[rune]string{
		'#': template.Wall,
		'+': template.Gateway,
		'.': "",
	}
}

// New constructs an empty w×h grid.
// Returns ErrEmptyGrid for non-positive dimensions and ErrBadCellSize for a
// bad opts.CellSize.
func New(w, h int, opts Options) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	if opts.CellSize <= 0 || math.IsInf(opts.CellSize, 0) || math.IsNaN(opts.CellSize) {
		return nil, fmt.Errorf("%w: %v", ErrBadCellSize, opts.CellSize)
	}

	return &Grid{
		Width:    w,
		Height:   h,
		cells:    make([]Cell, w*h),
		cellSize: opts.CellSize,
	}, nil
}

// FromLegend builds a grid from equal-length glyph rows. Each glyph is looked
// up in legend and, unless it maps to the empty string, one object is
// instantiated from reg and placed on the cell.
// Returns ErrNilRegistry when reg is nil.
func FromLegend(rows []string, legend map[rune]string, reg *template.Registry, opts Options) (*Grid, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := utf8.RuneCountInString(rows[0])
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, n, w)
		}
	}
	g, err := New(w, len(rows), opts)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		x := 0
		for _, glyph := range row {
			name, ok := legend[glyph]
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownGlyph, glyph, x, y)
			}
			if name != "" {
				obj, err := reg.Instantiate(name)
				if err != nil {
					return nil, fmt.Errorf("grid: glyph %q at (%d,%d): %w", glyph, x, y, err)
				}
				c := &g.cells[g.Index(compass.Point{X: x, Y: y})]
				c.objects = append(c.objects, obj)
			}
			x++
		}
	}

	return g, nil
}

// CellSize returns the world-space edge length of one cell.
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p compass.Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// OnBorder reports whether p is in the outermost ring of cells.
func (g *Grid) OnBorder(p compass.Point) bool {
	return g.InBounds(p) && (p.X == 0 || p.Y == 0 || p.X == g.Width-1 || p.Y == g.Height-1)
}

// Index maps p to its row-major index: Y*Width + X.
// The result is meaningless for out-of-bounds points.
func (g *Grid) Index(p compass.Point) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major index back to a Point.
func (g *Grid) Coordinate(idx int) compass.Point {
	return compass.Point{X: idx % g.Width, Y: idx / g.Width}
}

// Cell returns the cell at p, or false when p is out of bounds.
func (g *Grid) Cell(p compass.Point) (*Cell, bool) {
	if !g.InBounds(p) {
		return nil, false
	}
	return &g.cells[g.Index(p)], true
}

// Add places obj on the cell at p. Room markers must go through ClaimRoom.
func (g *Grid) Add(p compass.Point, obj *template.Object) error {
	if obj == nil {
		return ErrNilObject
	}
	if obj.HasTag(template.TagRoomID) {
		return g.ClaimRoom(p, obj)
	}
	c, ok := g.Cell(p)
	if !ok {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	c.objects = append(c.objects, obj)

	return nil
}

// HasTag reports whether any object at p carries tag. False out of bounds.
func (g *Grid) HasTag(p compass.Point, tag string) bool {
	c, ok := g.Cell(p)
	return ok && c.HasTag(tag)
}

// IsBlocked reports whether p is impassable. Out-of-bounds points are blocked.
func (g *Grid) IsBlocked(p compass.Point) bool {
	c, ok := g.Cell(p)
	return !ok || c.HasTag(template.TagBlock)
}

// IsGateway reports whether p holds a gateway. False out of bounds.
func (g *Grid) IsGateway(p compass.Point) bool {
	return g.HasTag(p, template.TagGateway)
}

// IsOpen reports whether p is in bounds, passable and not a gateway,
// i.e. a cell that flood-fill segmentation may assign to a room.
func (g *Grid) IsOpen(p compass.Point) bool {
	c, ok := g.Cell(p)
	return ok && !c.HasTag(template.TagBlock) && !c.HasTag(template.TagGateway)
}

// RoomID returns the room id claimed at p, or false if unclaimed or out of bounds.
func (g *Grid) RoomID(p compass.Point) (int, bool) {
	c, ok := g.Cell(p)
	if !ok || c.room == nil {
		return 0, false
	}
	return c.room.Prop(template.PropRoomID)
}

// ClaimRoom tags p with marker, which must be a room marker
// (see template.Registry.NewRoomMarker). A cell can be claimed once.
func (g *Grid) ClaimRoom(p compass.Point, marker *template.Object) error {
	if marker == nil {
		return ErrNilObject
	}
	if _, ok := marker.Prop(template.PropRoomID); !ok || !marker.HasTag(template.TagRoomID) {
		return fmt.Errorf("%w: %q", ErrNotRoomMarker, marker.Name)
	}
	c, ok := g.Cell(p)
	if !ok {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	if c.room != nil {
		prev, _ := c.room.Prop(template.PropRoomID)
		return fmt.Errorf("%w: %v belongs to room %d", ErrAlreadyClaimed, p, prev)
	}
	c.room = marker
	c.objects = append(c.objects, marker)

	return nil
}

// Neighbors4 returns the four orthogonal neighbors of p in clockwise order
// starting at North. Points may lie outside the grid.
func (g *Grid) Neighbors4(p compass.Point) [4]compass.Point {
	var out [4]compass.Point
	for i, d := range compass.Directions {
		out[i] = p.Step(d)
	}
	return out
}

// ForEach calls fn for every cell in row-major order.
func (g *Grid) ForEach(fn func(p compass.Point, c *Cell)) {
	for i := range g.cells {
		fn(g.Coordinate(i), &g.cells[i])
	}
}
