package topology

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/roomtopo/compass"
)

// Point is a world-space coordinate: grid coordinates scaled by the cell size.
type Point struct {
	X, Y float64
}

// Barrier is one boundary segment of exactly one room.
//
// Left and Right are the first and last boundary cells in walk order; a
// single-cell barrier has Left == Right. Direction is the facing taken where
// the segment opened: from the barrier into its room. Gateway barriers are
// always straight runs; wall barriers may wrap convex corners.
type Barrier struct {
	ID        int
	Gateway   bool
	Left      compass.Point
	Right     compass.Point
	Direction compass.Direction

	cells     []compass.Point
	cellSize  float64
	center    Point
	hasCenter bool
}

// Cells returns the boundary cells spanned by b in walk order,
// from Left to Right inclusive.
func (b *Barrier) Cells() []compass.Point {
	return append([]compass.Point(nil), b.cells...)
}

// Len returns the number of cells spanned by b.
func (b *Barrier) Len() int {
	return len(b.cells)
}

func (b *Barrier) String() string {
	kind := "wall"
	if b.Gateway {
		kind = "gateway"
	}
	return fmt.Sprintf("%s#%d[%v→%v %v]", kind, b.ID, b.Left, b.Right, b.Direction)
}

// extend appends p as the new Right endpoint.
func (b *Barrier) extend(p compass.Point) {
	b.cells = append(b.cells, p)
	b.Right = p
}

// Room is a set of claimed cells plus its ordered, cyclic boundary.
type Room struct {
	ID int
	// Seed is the first cell discovered: the top-left cell of a flood-filled
	// room, or the doorway run's Left endpoint for a gateway room.
	Seed compass.Point
	// Gateway marks rooms promoted from a doorway.
	Gateway bool
	// Along is the direction of travel along the doorway run, Left to Right.
	// Only meaningful when Gateway is set.
	Along compass.Direction
	// Cells is the number of grid cells claimed by the room.
	Cells int
	// Barriers is the boundary in clockwise walk order.
	Barriers []*Barrier
}

// clone returns a deep copy of r; barrier caches are copied, not shared.
func (r *Room) clone() Room {
	out := *r
	out.Barriers = make([]*Barrier, len(r.Barriers))
	for i, b := range r.Barriers {
		cp := *b
		cp.cells = b.Cells()
		out.Barriers[i] = &cp
	}
	return out
}

// Option configures Extract.
type Option func(*Options)

// Options holds extraction parameters and hooks.
type Options struct {
	// Logger receives Debug records per room and per promotion, and an Info
	// summary. Defaults to a discarding logger.
	Logger *slog.Logger

	// OnRoom, if non-nil, is called after a room's boundary is complete.
	// Flood-filled rooms are reported during segmentation, gateway rooms
	// during promotion. Returning an error aborts extraction.
	OnRoom func(r Room) error

	// OnBarrier, if non-nil, is called whenever a barrier is closed.
	OnBarrier func(roomID int, b Barrier)

	// MaxWalkSteps bounds a single boundary walk. Zero selects the default
	// of four steps per wall-set cell plus four.
	MaxWalkSteps int

	err error
}

// DefaultOptions returns Options with a discarding logger, no hooks and the
// default walk bound.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger routes extraction logs to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnRoom registers a hook run once per finished room.
func WithOnRoom(fn func(r Room) error) Option {
	return func(o *Options) {
		o.OnRoom = fn
	}
}

// WithOnBarrier registers a hook run once per closed barrier.
func WithOnBarrier(fn func(roomID int, b Barrier)) Option {
	return func(o *Options) {
		o.OnBarrier = fn
	}
}

// WithMaxWalkSteps overrides the per-room walk bound.
//
//	n > 0:  at most n steps per walk
//	n == 0: default bound
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxWalkSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxWalkSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxWalkSteps = n
	}
}
