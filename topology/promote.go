package topology

import (
	"fmt"

	"github.com/katalvlaran/roomtopo/compass"
	"github.com/katalvlaran/roomtopo/idgen"
)

// pooled is a gateway barrier waiting for promotion, with the room that
// discovered it.
type pooled struct {
	barrier *Barrier
	owner   int
}

// doorway records the two rooms a promoted gateway room joins:
// near is the room whose walk found it first, far the one across.
type doorway struct {
	near, far int
}

// other returns the doorway side that is not room, or false when room is
// not one of the two sides.
func (d doorway) other(room int) (int, bool) {
	switch room {
	case d.near:
		return d.far, true
	case d.far:
		return d.near, true
	}
	return 0, false
}

// promote turns every pooled gateway barrier into a doorway room, or, when
// the doorway was already promoted from its other side, just records the
// barrier's destinations.
func (x *extractor) promote() error {
	for _, pg := range x.pool {
		g := pg.barrier
		if id, claimed := x.grid.RoomID(g.Left); claimed {
			door, ok := x.doorways[id]
			if !ok {
				return fault("promote", g.Left, fmt.Errorf("%w: footprint claimed by non-gateway room %d", ErrDanglingGateway, id))
			}
			other, ok := door.other(pg.owner)
			if !ok {
				return fault("promote", g.Left, fmt.Errorf("%w: room %d does not border gateway room %d", ErrDanglingGateway, pg.owner, id))
			}
			x.dest[g.ID] = []int{pg.owner, other}
			x.opts.Logger.Debug("gateway rediscovered", "gateway", g.ID, "gatewayRoom", id, "rooms", x.dest[g.ID])
			continue
		}
		if err := x.promoteOne(pg); err != nil {
			return err
		}
	}

	for _, pg := range x.pool {
		if err := x.checkDestinations(pg.barrier); err != nil {
			return err
		}
	}
	return nil
}

// promoteOne creates the doorway room for pg.
//
// With f the gateway's facing (toward its owner X) and d = f.Left() the run
// direction from Left to Right, the doorway room's boundary in walk order is:
//
//	gateway  Right+f → Left+f   facing f.Backward()   joins {G, X}
//	wall     Left-d             facing d
//	gateway  Left-f → Right-f   facing f              joins {G, Y}
//	wall     Right+d            facing d.Backward()
func (x *extractor) promoteOne(pg pooled) error {
	g := pg.barrier
	f := g.Direction
	d := f.Left()
	run, err := runCells(g.Left, g.Right, d)
	if err != nil {
		return err
	}

	farCell := g.Left.Step(f.Backward())
	far, ok := x.grid.RoomID(farCell)
	if !ok || far == pg.owner {
		return fault("promote", farCell, fmt.Errorf("%w: no room across gateway %d", ErrDanglingGateway, g.ID))
	}

	room := &Room{
		ID:      x.ids.Next(idgen.Room),
		Seed:    g.Left,
		Gateway: true,
		Along:   d,
		Cells:   len(run),
	}
	for _, p := range run {
		if err = x.claim(p, room.ID); err != nil {
			return fault("promote", p, err)
		}
	}

	near := x.newBarrier(true, f.Backward(), shift(reversed(run), f)...)
	capL := x.newBarrier(false, d, g.Left.Step(d.Backward()))
	across := x.newBarrier(true, f, shift(run, f.Backward())...)
	capR := x.newBarrier(false, d.Backward(), g.Right.Step(d))
	room.Barriers = []*Barrier{near, capL, across, capR}

	x.doorways[room.ID] = doorway{near: pg.owner, far: far}
	x.dest[g.ID] = []int{pg.owner, far}
	x.dest[near.ID] = []int{room.ID, pg.owner}
	x.dest[across.ID] = []int{room.ID, far}

	x.addRoom(room)
	for _, b := range room.Barriers {
		x.reportBarrier(room.ID, b)
	}
	x.opts.Logger.Debug("gateway promoted",
		"gateway", g.ID, "gatewayRoom", room.ID, "along", d.String(),
		"cells", len(run), "rooms", x.dest[g.ID])

	return x.reportRoom(room)
}

// checkDestinations enforces that b joins exactly two distinct rooms.
func (x *extractor) checkDestinations(b *Barrier) error {
	rooms := x.dest[b.ID]
	if len(rooms) != 2 || rooms[0] == rooms[1] {
		return fault("promote", b.Left, fmt.Errorf("%w: gateway %d has destinations %v", ErrDanglingGateway, b.ID, rooms))
	}
	return nil
}

// runCells lists the cells from left to right stepping along d.
func runCells(left, right compass.Point, d compass.Direction) ([]compass.Point, error) {
	run := []compass.Point{left}
	for p := left; p != right; {
		p = p.Step(d)
		run = append(run, p)
		if len(run) > maxRun(left, right) {
			return nil, fault("promote", left, fmt.Errorf("%w: %v is not reachable from %v heading %v", ErrDanglingGateway, right, left, d))
		}
	}
	return run, nil
}

func maxRun(a, b compass.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y) + 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func shift(cells []compass.Point, d compass.Direction) []compass.Point {
	out := make([]compass.Point, len(cells))
	for i, p := range cells {
		out[i] = p.Step(d)
	}
	return out
}

func reversed(cells []compass.Point) []compass.Point {
	out := make([]compass.Point, len(cells))
	for i, p := range cells {
		out[len(cells)-1-i] = p
	}
	return out
}
