package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/roomtopo/compass"
)

func TestCenterpointFormula(t *testing.T) {
	// the 5×4 box loop: walls around a 3×2 interior at x 1..3, y 1..2
	boxLoop := []compass.Point{
		pt(1, 0), pt(2, 0), pt(3, 0),
		pt(4, 1), pt(4, 2),
		pt(3, 3), pt(2, 3), pt(1, 3),
		pt(0, 2), pt(0, 1),
	}
	cases := []struct {
		name   string
		cells  []compass.Point
		facing compass.Direction
		size   float64
		want   Point
	}{
		{"SingleFacingSouth", []compass.Point{pt(2, 0)}, compass.South, 1, Point{2.5, 1}},
		{"SingleFacingEast", []compass.Point{pt(0, 2)}, compass.East, 1, Point{1, 2.5}},
		{"SingleFacingWest", []compass.Point{pt(4, 2)}, compass.West, 1, Point{4, 2.5}},
		{"SingleFacingNorth", []compass.Point{pt(2, 4)}, compass.North, 1, Point{2.5, 4}},
		{"RunScaled", []compass.Point{pt(1, 0), pt(2, 0), pt(3, 0)}, compass.South, 2, Point{5, 2}},
		{"RunReversedOrder", []compass.Point{pt(3, 0), pt(2, 0), pt(1, 0)}, compass.South, 2, Point{5, 2}},
		{"VerticalRunFacingWest", []compass.Point{pt(6, 2), pt(6, 3), pt(6, 4)}, compass.West, 1, Point{6, 3.5}},
		{"VerticalRunFacingEast", []compass.Point{pt(6, 4), pt(6, 3), pt(6, 2)}, compass.East, 1, Point{7, 3.5}},
		{"CornerWrapLoop", boxLoop, compass.South, 1, Point{2.5, 2}},
		{"CornerWrapL", []compass.Point{pt(3, 0), pt(4, 1), pt(4, 2)}, compass.South, 1, Point{4, 1.5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, centerpoint(tc.cells, tc.facing, tc.size))
		})
	}
}

func TestCenterpointCached(t *testing.T) {
	b := &Barrier{Left: pt(2, 0), Right: pt(2, 0), Direction: compass.South, cellSize: 1}
	first := b.Centerpoint()
	assert.True(t, b.hasCenter)
	assert.Equal(t, Point{2.5, 1}, first)

	// later edits to the endpoints do not move a cached center
	b.Left, b.Right = pt(9, 9), pt(9, 9)
	assert.Equal(t, first, b.Centerpoint())
}
