package topology

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/roomtopo/compass"
)

// Topology is the published result of Extract. It has no mutation API and
// every accessor returns copies, so it is safe for concurrent readers.
type Topology struct {
	rooms    map[int]*Room
	order    []int
	barriers map[int]*Barrier
	owner    map[int]int // barrier id → room id
	dest     map[int][]int
	gateways []int // gateway barrier ids in walk order

	width, height int
	cellSize      float64
	roomAt        []int // row-major room id per cell, -1 if unclaimed
}

// Rooms returns all room ids in creation order: flood-filled rooms in scan
// order, then gateway rooms in promotion order. Ids are increasing.
func (t *Topology) Rooms() []int {
	return append([]int(nil), t.order...)
}

// Room returns a copy of the room with the given id.
func (t *Topology) Room(id int) (Room, error) {
	r, ok := t.rooms[id]
	if !ok {
		return Room{}, fmt.Errorf("%w: %d", ErrRoomNotFound, id)
	}
	return r.clone(), nil
}

// IsGatewayRoom reports whether id names a room promoted from a doorway.
func (t *Topology) IsGatewayRoom(id int) bool {
	r, ok := t.rooms[id]
	return ok && r.Gateway
}

// Barriers returns room id's boundary in walk order.
func (t *Topology) Barriers(roomID int) ([]Barrier, error) {
	r, ok := t.rooms[roomID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrRoomNotFound, roomID)
	}
	out := make([]Barrier, len(r.Barriers))
	for i, b := range r.Barriers {
		out[i] = *b
		out[i].cells = b.Cells()
	}
	return out, nil
}

// Barrier returns the barrier with the given id and the room that owns it.
func (t *Topology) Barrier(id int) (Barrier, int, error) {
	b, ok := t.barriers[id]
	if !ok {
		return Barrier{}, 0, fmt.Errorf("%w: %d", ErrBarrierNotFound, id)
	}
	cp := *b
	cp.cells = b.Cells()
	return cp, t.owner[id], nil
}

// Gateways returns every gateway barrier id, sorted ascending.
func (t *Topology) Gateways() []int {
	out := append([]int(nil), t.gateways...)
	sort.Ints(out)
	return out
}

// Destinations returns the two room ids joined by gateway id. The first
// entry is the room owning the barrier.
func (t *Topology) Destinations(gatewayID int) ([]int, error) {
	rooms, ok := t.dest[gatewayID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrGatewayNotFound, gatewayID)
	}
	return append([]int(nil), rooms...), nil
}

// RoomAt returns the room claiming grid cell p, or false for blocked,
// unclaimed or out-of-bounds cells.
func (t *Topology) RoomAt(p compass.Point) (int, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= t.width || p.Y >= t.height {
		return 0, false
	}
	id := t.roomAt[p.Y*t.width+p.X]
	return id, id >= 0
}

// CellSize returns the world-space cell size centerpoints were computed with.
func (t *Topology) CellSize() float64 {
	return t.cellSize
}
