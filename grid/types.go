package grid

import (
	"errors"

	"github.com/katalvlaran/roomtopo/template"
)

// Sentinel errors for grid construction and mutation.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates legend rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadCellSize indicates a non-positive or non-finite cell size.
	ErrBadCellSize = errors.New("grid: cell size must be positive and finite")
	// ErrUnknownGlyph indicates a legend row glyph with no legend entry.
	ErrUnknownGlyph = errors.New("grid: glyph not in legend")
	// ErrOutOfBounds indicates a mutation outside the grid.
	ErrOutOfBounds = errors.New("grid: point out of bounds")
	// ErrNilObject indicates Add was given a nil object.
	ErrNilObject = errors.New("grid: nil object")
	// ErrAlreadyClaimed indicates a cell that already belongs to a room.
	ErrAlreadyClaimed = errors.New("grid: cell already claimed by a room")
	// ErrNotRoomMarker indicates ClaimRoom was given an object without a room id.
	ErrNotRoomMarker = errors.New("grid: object is not a room marker")
	// ErrNilRegistry indicates FromLegend was given a nil template registry.
	ErrNilRegistry = errors.New("grid: template registry is nil")
)

// Options contains tunable grid parameters.
type Options struct {
	// CellSize is the world-space edge length of one cell.
	CellSize float64
}

// DefaultOptions returns Options with CellSize=1.
func DefaultOptions() Options {
	return Options{CellSize: 1}
}

// Cell is one grid position and the objects placed on it.
type Cell struct {
	objects []*template.Object
	room    *template.Object // room marker, also present in objects
}

// Objects returns a copy of the objects on c, in placement order.
func (c *Cell) Objects() []*template.Object {
	return append([]*template.Object(nil), c.objects...)
}

// HasTag reports whether any object on c carries tag.
func (c *Cell) HasTag(tag string) bool {
	for _, o := range c.objects {
		if o.HasTag(tag) {
			return true
		}
	}
	return false
}

// Grid is a W×H arena of cells in row-major order.
// It is not safe for concurrent mutation.
type Grid struct {
	Width, Height int
	cells         []Cell
	cellSize      float64
}
