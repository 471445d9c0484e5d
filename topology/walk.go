package topology

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/roomtopo/compass"
	"github.com/katalvlaran/roomtopo/idgen"
	"github.com/katalvlaran/roomtopo/template"
)

// heading is the walker state: the boundary cell it stands on and its travel
// direction. The room is always on the right: at.Step(dir.Right()) is a room cell.
type heading struct {
	at  compass.Point
	dir compass.Direction
}

// facing is the direction from the boundary cell into the room.
func (h heading) facing() compass.Direction {
	return h.dir.Right()
}

// move is the outcome of one step.
type move int

const (
	moveStraight move = iota // same heading, next cell
	moveRight                // convex corner: diagonal cell, turn right
	moveLeft                 // concave corner: same cell, turn left
	moveReverse              // protrusion tip: same cell, turn around
	moveStuck                // no valid continuation
)

var moveNames = [...]string{"straight", "right", "left", "reverse", "stuck"}

func (m move) String() string {
	if m < 0 || int(m) >= len(moveNames) {
		return fmt.Sprintf("move(%d)", int(m))
	}
	return moveNames[m]
}

// step is the boundary-walk transition function. It depends only on the
// current heading and the room/wall-set membership of the local 3×3
// neighborhood. Candidates are tried in the fixed order
// straight → right → left → reverse.
func step(h heading, inRoom, inWalls func(compass.Point) bool) (heading, move) {
	hug := h.at.Step(h.dir.Right())
	if !inRoom(hug) || !inWalls(h.at) {
		return h, moveStuck
	}
	fwd := h.at.Step(h.dir)
	hugFwd := hug.Step(h.dir)

	switch {
	case inWalls(fwd) && inRoom(hugFwd):
		return heading{at: fwd, dir: h.dir}, moveStraight
	case !inRoom(hugFwd) && inWalls(hugFwd):
		return heading{at: hugFwd, dir: h.dir.Right()}, moveRight
	case inRoom(fwd) && inRoom(hugFwd):
		// reverse is two left turns: only when the cell after the first
		// turn would force a second one
		left := h.dir.Left()
		if inRoom(h.at.Step(left)) && inRoom(fwd.Step(left)) {
			return heading{at: h.at, dir: h.dir.Backward()}, moveReverse
		}
		return heading{at: h.at, dir: left}, moveLeft
	}
	return h, moveStuck
}

// walker traces one room's boundary into Barriers.
type walker struct {
	x       *extractor
	room    *Room
	r       *region
	open    *Barrier
	visited mapset.Set[compass.Point]
	inRoom  func(compass.Point) bool
	steps   int
	limit   int
}

// walk traces r's boundary clockwise from the cell north of its seed,
// registers the resulting Room, and pools its gateway barriers.
//
// Barriers[0] always opens on the start cell, so the last wall of a loop is
// not merged into the first even when they meet across a convex corner.
//
// Wall-set cells the outer loop never reaches belong to pillars standing
// inside the room; each pillar is traced as a further loop, appended after
// the outer one.
func (x *extractor) walk(r *region) error {
	room := &Room{ID: r.id, Seed: r.seed, Cells: r.cells}
	w := &walker{
		x:       x,
		room:    room,
		r:       r,
		visited: mapset.New[compass.Point](),
		inRoom: func(p compass.Point) bool {
			id, ok := x.grid.RoomID(p)
			return ok && id == r.id
		},
		limit: x.opts.MaxWalkSteps,
	}
	if w.limit == 0 {
		w.limit = 4*r.walls.Size() + 4
	}

	start := heading{at: r.seed.Step(compass.North), dir: compass.East}
	for {
		if err := w.loop(start); err != nil {
			return err
		}
		next, ok := w.nextPillar()
		if !ok {
			break
		}
		start = next
	}

	x.addRoom(room)
	x.opts.Logger.Debug("room walked",
		"room", room.ID, "seed", room.Seed.String(), "cells", room.Cells,
		"walls", r.walls.Size(), "barriers", len(room.Barriers))

	return x.reportRoom(room)
}

// loop walks from start until the walker returns to start, closing the
// final open barrier there.
func (w *walker) loop(start heading) error {
	if err := w.openAt(start); err != nil {
		return err
	}
	cur := start
	for {
		if w.steps >= w.limit {
			return fault("walk", cur.at, fmt.Errorf("%w: no closure after %d steps", ErrWalkStuck, w.steps))
		}
		w.steps++
		next, m := step(cur, w.inRoom, w.r.walls.Has)
		if m == moveStuck {
			return fault("walk", cur.at, fmt.Errorf("%w: heading %v", ErrWalkStuck, cur.dir))
		}
		tip := heading{at: cur.at, dir: cur.dir.Left()}
		switch {
		case m == moveReverse && next == start:
			w.close()
			if err := w.openAt(tip); err != nil {
				return err
			}
			w.close()
			return nil
		case next == start, m == moveReverse && tip == start:
			w.close()
			return nil
		}
		var err error
		switch m {
		case moveStraight, moveRight:
			err = w.advance(next)
		case moveLeft:
			w.close()
			err = w.openAt(next)
		case moveReverse:
			// close the side face, emit the tip face, reopen on the far side
			w.close()
			if err = w.openAt(tip); err == nil {
				w.close()
				err = w.openAt(next)
			}
		}
		if err != nil {
			return err
		}
		cur = next
	}
}

// nextPillar returns a start heading on the first unvisited wall-set cell in
// row-major order, or false once every boundary cell has been walked.
func (w *walker) nextPillar() (heading, bool) {
	var pending []compass.Point
	w.r.walls.Each(func(p compass.Point) {
		if !w.visited.Has(p) {
			pending = append(pending, p)
		}
	})
	if len(pending) == 0 {
		return heading{}, false
	}
	sort.Slice(pending, func(i, j int) bool {
		if pending[i].Y != pending[j].Y {
			return pending[i].Y < pending[j].Y
		}
		return pending[i].X < pending[j].X
	})
	p := pending[0]
	for _, d := range compass.Directions {
		if w.inRoom(p.Step(d)) {
			// keep the room cell on the right
			return heading{at: p, dir: d.Left()}, true
		}
	}
	return heading{}, false
}

// advance moves onto next, extending the open barrier or starting a new one.
// Markers change, and gateways change facing, close the open barrier.
func (w *walker) advance(next heading) error {
	gateway, err := w.x.marker(next.at)
	if err != nil {
		return err
	}
	if gateway != w.open.Gateway || (gateway && next.facing() != w.open.Direction) {
		w.close()
		return w.openAt(next)
	}
	w.open.extend(next.at)
	w.visited.Put(next.at)

	return nil
}

// openAt starts a barrier on h.at with h's facing.
func (w *walker) openAt(h heading) error {
	gateway, err := w.x.marker(h.at)
	if err != nil {
		return err
	}
	w.open = w.x.newBarrier(gateway, h.facing(), h.at)
	w.visited.Put(h.at)

	return nil
}

// close appends the open barrier to the room and pools it if it is a gateway.
func (w *walker) close() {
	if w.open == nil {
		return
	}
	b := w.open
	w.open = nil
	w.room.Barriers = append(w.room.Barriers, b)
	if b.Gateway {
		w.x.pool = append(w.x.pool, pooled{barrier: b, owner: w.room.ID})
	}
	w.x.reportBarrier(w.room.ID, b)
}

// marker reports whether the boundary cell at p is a gateway (true) or a wall
// (false). Cells carrying both or neither marker are map-validity faults.
func (x *extractor) marker(p compass.Point) (bool, error) {
	wall := x.grid.HasTag(p, template.TagWall)
	gateway := x.grid.HasTag(p, template.TagGateway)
	if wall == gateway {
		return false, fault("marker", p, fmt.Errorf("%w: wall=%t gateway=%t", ErrBadMarker, wall, gateway))
	}
	return gateway, nil
}

// newBarrier allocates a barrier id from the gateway or wall category and
// returns a barrier spanning the given cells.
func (x *extractor) newBarrier(gateway bool, facing compass.Direction, cells ...compass.Point) *Barrier {
	cat := idgen.Wall
	if gateway {
		cat = idgen.Gateway
	}
	b := &Barrier{
		ID:        x.ids.Next(cat),
		Gateway:   gateway,
		Direction: facing,
		cellSize:  x.grid.CellSize(),
	}
	for _, p := range cells {
		if len(b.cells) == 0 {
			b.Left = p
		}
		b.extend(p)
	}
	return b
}
