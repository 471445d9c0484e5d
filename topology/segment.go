package topology

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/roomtopo/compass"
	"github.com/katalvlaran/roomtopo/idgen"
)

// region is one flood-filled room before its boundary is walked.
type region struct {
	id    int
	seed  compass.Point
	cells int
	walls mapset.Set[compass.Point] // 4-adjacent blocked or gateway cells
}

// checkBorder verifies that every outer-ring cell is blocked.
func (x *extractor) checkBorder() error {
	w, h := x.grid.Width, x.grid.Height
	for px := 0; px < w; px++ {
		for _, py := range []int{0, h - 1} {
			if p := (compass.Point{X: px, Y: py}); !x.grid.IsBlocked(p) {
				return fault("border", p, ErrOpenBorder)
			}
		}
	}
	for py := 1; py < h-1; py++ {
		for _, px := range []int{0, w - 1} {
			if p := (compass.Point{X: px, Y: py}); !x.grid.IsBlocked(p) {
				return fault("border", p, ErrOpenBorder)
			}
		}
	}
	return nil
}

// segment scans interior cells in row-major order. Every unclaimed open cell
// seeds a new room, which is flood-filled and then walked immediately.
func (x *extractor) segment() error {
	for y := 1; y < x.grid.Height-1; y++ {
		for cx := 1; cx < x.grid.Width-1; cx++ {
			p := compass.Point{X: cx, Y: y}
			if !x.grid.IsOpen(p) {
				continue
			}
			if _, claimed := x.grid.RoomID(p); claimed {
				continue
			}
			r, err := x.flood(p)
			if err != nil {
				return err
			}
			if err = x.walk(r); err != nil {
				return err
			}
		}
	}
	return nil
}

// flood claims every open cell reachable from seed under 4-connectivity for a
// freshly allocated room id and collects the room's wall set.
//
// Time: O(cells + walls), Memory: O(cells + walls).
func (x *extractor) flood(seed compass.Point) (*region, error) {
	r := &region{
		id:    x.ids.Next(idgen.Room),
		seed:  seed,
		walls: mapset.New[compass.Point](),
	}
	if err := x.claim(seed, r.id); err != nil {
		return nil, err
	}
	frontier := queue.New[compass.Point]()
	frontier.Enqueue(seed)

	for !frontier.Empty() {
		p := frontier.Dequeue()
		r.cells++
		for _, n := range x.grid.Neighbors4(p) {
			switch {
			case x.grid.IsOpen(n):
				if _, claimed := x.grid.RoomID(n); claimed {
					continue
				}
				if err := x.claim(n, r.id); err != nil {
					return nil, err
				}
				frontier.Enqueue(n)
			case x.grid.InBounds(n):
				// blocked or gateway
				r.walls.Put(n)
			}
		}
	}
	if r.walls.Size() == 0 {
		return nil, fault("segment", seed, ErrEmptyWallSet)
	}

	return r, nil
}

// claim tags p with a room marker for roomID.
func (x *extractor) claim(p compass.Point, roomID int) error {
	marker, err := x.reg.NewRoomMarker(roomID)
	if err != nil {
		return err
	}
	return x.grid.ClaimRoom(p, marker)
}
