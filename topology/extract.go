package topology

import (
	"fmt"

	"github.com/katalvlaran/roomtopo/grid"
	"github.com/katalvlaran/roomtopo/idgen"
	"github.com/katalvlaran/roomtopo/template"
)

// extractor holds the mutable state of one extraction pass.
type extractor struct {
	grid *grid.Grid
	reg  *template.Registry
	ids  *idgen.Counter
	opts Options

	rooms    map[int]*Room
	order    []int // room ids in creation order
	pool     []pooled
	doorways map[int]doorway
	dest     map[int][]int
}

// Extract segments g into rooms, walks every room's boundary, promotes
// gateways into doorway rooms and computes all barrier centerpoints.
//
// Room and barrier ids come from reg's counter, so they never collide with
// the ids of objects already placed on g. Extract claims cells on g through
// room markers from reg; on error the grid may be left partially claimed
// and no Topology is returned.
//
// Returns ErrGridNil, ErrRegistryNil, ErrOptionViolation, a hook error, or a
// *MapFault wrapping one of the map-validity sentinels.
func Extract(g *grid.Grid, reg *template.Registry, opts ...Option) (*Topology, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if reg == nil {
		return nil, ErrRegistryNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	x := newExtractor(g, reg, o)

	// 1. Border must be closed
	if err := x.checkBorder(); err != nil {
		return nil, err
	}
	// 2. Segment and walk every room
	if err := x.segment(); err != nil {
		return nil, err
	}
	walked := len(x.order)
	// 3. Promote gateways
	if err := x.promote(); err != nil {
		return nil, err
	}
	// 4. Centerpoints and publish
	t := x.publish()

	o.Logger.Info("topology extracted",
		"rooms", walked, "gatewayRooms", len(x.order)-walked,
		"gateways", len(t.gateways), "barriers", len(t.barriers))

	return t, nil
}

func newExtractor(g *grid.Grid, reg *template.Registry, o Options) *extractor {
	return &extractor{
		grid:     g,
		reg:      reg,
		ids:      reg.IDs(),
		opts:     o,
		rooms:    make(map[int]*Room),
		doorways: make(map[int]doorway),
		dest:     make(map[int][]int),
	}
}

func (x *extractor) addRoom(r *Room) {
	x.rooms[r.ID] = r
	x.order = append(x.order, r.ID)
}

func (x *extractor) reportRoom(r *Room) error {
	if x.opts.OnRoom == nil {
		return nil
	}
	if err := x.opts.OnRoom(r.clone()); err != nil {
		return fmt.Errorf("topology: OnRoom hook for room %d: %w", r.ID, err)
	}
	return nil
}

func (x *extractor) reportBarrier(roomID int, b *Barrier) {
	if x.opts.OnBarrier == nil {
		return
	}
	cp := *b
	cp.cells = b.Cells()
	x.opts.OnBarrier(roomID, cp)
}

// publish fills every centerpoint cache and freezes the registries.
func (x *extractor) publish() *Topology {
	t := &Topology{
		rooms:    x.rooms,
		order:    x.order,
		barriers: make(map[int]*Barrier),
		owner:    make(map[int]int),
		dest:     x.dest,
		width:    x.grid.Width,
		height:   x.grid.Height,
		cellSize: x.grid.CellSize(),
		roomAt:   make([]int, x.grid.Width*x.grid.Height),
	}
	for _, id := range x.order {
		for _, b := range x.rooms[id].Barriers {
			b.Centerpoint()
			t.barriers[b.ID] = b
			t.owner[b.ID] = id
			if b.Gateway {
				t.gateways = append(t.gateways, b.ID)
			}
		}
	}
	for i := range t.roomAt {
		t.roomAt[i] = -1
		if id, ok := x.grid.RoomID(x.grid.Coordinate(i)); ok {
			t.roomAt[i] = id
		}
	}
	return t
}
