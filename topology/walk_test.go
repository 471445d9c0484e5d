package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/roomtopo/compass"
)

func pt(x, y int) compass.Point { return compass.Point{X: x, Y: y} }

func setOf(ps ...compass.Point) mapset.Set[compass.Point] {
	s := mapset.New[compass.Point]()
	for _, p := range ps {
		s.Put(p)
	}
	return s
}

// TestStep covers every transition of the boundary-walk state machine from
// the same heading: standing on (1,0), heading East, room to the south.
func TestStep(t *testing.T) {
	start := heading{at: pt(1, 0), dir: compass.East}
	cases := []struct {
		name  string
		room  []compass.Point
		walls []compass.Point
		want  heading
		move  move
	}{
		{
			name:  "Straight",
			room:  []compass.Point{pt(1, 1), pt(2, 1)},
			walls: []compass.Point{pt(1, 0), pt(2, 0)},
			want:  heading{at: pt(2, 0), dir: compass.East},
			move:  moveStraight,
		},
		{
			name:  "RightAtConvexCorner",
			room:  []compass.Point{pt(1, 1)},
			walls: []compass.Point{pt(1, 0), pt(2, 1)},
			want:  heading{at: pt(2, 1), dir: compass.South},
			move:  moveRight,
		},
		{
			name:  "LeftAtConcaveCorner",
			room:  []compass.Point{pt(1, 1), pt(2, 1), pt(2, 0)},
			walls: []compass.Point{pt(1, 0)},
			want:  heading{at: pt(1, 0), dir: compass.North},
			move:  moveLeft,
		},
		{
			name:  "ReverseAtTip",
			room:  []compass.Point{pt(1, 1), pt(2, 1), pt(2, 0), pt(2, -1), pt(1, -1)},
			walls: []compass.Point{pt(1, 0)},
			want:  heading{at: pt(1, 0), dir: compass.West},
			move:  moveReverse,
		},
		{
			// (1,0) touches the wall at (2,-1) only at a corner: turn left
			// once and let the next step take the convex corner
			name:  "LeftBeforeDiagonalWall",
			room:  []compass.Point{pt(1, 1), pt(2, 1), pt(2, 0), pt(1, -1)},
			walls: []compass.Point{pt(1, 0), pt(2, -1)},
			want:  heading{at: pt(1, 0), dir: compass.North},
			move:  moveLeft,
		},
		{
			name:  "StuckNoContinuation",
			room:  []compass.Point{pt(1, 1)},
			walls: []compass.Point{pt(1, 0)},
			want:  start,
			move:  moveStuck,
		},
		{
			name:  "StuckOffWallSet",
			room:  []compass.Point{pt(1, 1), pt(2, 1)},
			walls: []compass.Point{pt(2, 0)},
			want:  start,
			move:  moveStuck,
		},
		{
			name:  "StuckRoomNotOnRight",
			room:  []compass.Point{pt(2, 1)},
			walls: []compass.Point{pt(1, 0), pt(2, 0)},
			want:  start,
			move:  moveStuck,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			room, walls := setOf(tc.room...), setOf(tc.walls...)
			got, m := step(start, room.Has, walls.Has)
			assert.Equal(t, tc.move, m, "move")
			assert.Equal(t, tc.want, got, "heading")
		})
	}
}

// TestStep_DiagonalPinch: after the single left turn the walker squeezes
// between two diagonally touching walls with a convex turn.
func TestStep_DiagonalPinch(t *testing.T) {
	room := setOf(pt(1, 1), pt(2, 1), pt(2, 0), pt(1, -1))
	walls := setOf(pt(1, 0), pt(2, -1))

	h, m := step(heading{at: pt(1, 0), dir: compass.East}, room.Has, walls.Has)
	assert.Equal(t, moveLeft, m)
	h, m = step(h, room.Has, walls.Has)
	assert.Equal(t, moveRight, m)
	assert.Equal(t, heading{at: pt(2, -1), dir: compass.East}, h)
}

func TestHeadingFacing(t *testing.T) {
	for _, d := range compass.Directions {
		h := heading{dir: d}
		assert.Equal(t, d.Right(), h.facing())
	}
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "straight", moveStraight.String())
	assert.Equal(t, "reverse", moveReverse.String())
	assert.Equal(t, "stuck", moveStuck.String())
	assert.Equal(t, "move(9)", move(9).String())
}
