package topology

import "github.com/katalvlaran/roomtopo/compass"

// Centerpoint returns the world-space midpoint of the edge b shares with the
// room it faces. The value is computed on first use and cached; Extract fills
// the cache for every barrier before publishing.
//
//   - Single-cell barriers: half a cell along the edge.
//   - Straight runs: midpoint along the long axis, whichever order Left and
//     Right are stored in.
//   - Wall runs wrapping a corner: center of the bounding box of all cells.
//
// Complexity: O(Len()) on first call, O(1) after.
func (b *Barrier) Centerpoint() Point {
	if !b.hasCenter {
		cells := b.cells
		if len(cells) == 0 {
			cells = []compass.Point{b.Left, b.Right}
		}
		b.center = centerpoint(cells, b.Direction, b.cellSize)
		b.hasCenter = true
	}
	return b.center
}

// centerpoint computes the edge midpoint with the interior-cell convention:
// the interior cell is a barrier cell stepped along facing, and NORTH/WEST
// facings sit one cell further along their axis than that cell's origin.
func centerpoint(cells []compass.Point, facing compass.Direction, size float64) Point {
	lo, hi := bounds(cells)
	inner := cells[0].Step(facing)

	switch {
	case lo.X == hi.X && facing.Horizontal():
		// vertical edge
		x := float64(inner.X) * size
		if facing == compass.West {
			x += size
		}
		return Point{X: x, Y: mid(lo.Y, hi.Y, size)}
	case lo.Y == hi.Y && !facing.Horizontal():
		// horizontal edge
		y := float64(inner.Y) * size
		if facing == compass.North {
			y += size
		}
		return Point{X: mid(lo.X, hi.X, size), Y: y}
	}
	return Point{X: mid(lo.X, hi.X, size), Y: mid(lo.Y, hi.Y, size)}
}

// mid is the world coordinate halfway across cells lo..hi inclusive.
func mid(lo, hi int, size float64) float64 {
	return float64(lo+hi+1) / 2 * size
}

// bounds returns the min and max corners of the cells' bounding box.
func bounds(cells []compass.Point) (lo, hi compass.Point) {
	lo, hi = cells[0], cells[0]
	for _, p := range cells[1:] {
		lo.X, hi.X = min(lo.X, p.X), max(hi.X, p.X)
		lo.Y, hi.Y = min(lo.Y, p.Y), max(hi.Y, p.Y)
	}
	return lo, hi
}
