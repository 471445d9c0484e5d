// Package topology extracts room/gateway topology from a grid.Grid.
//
// What:
//
//   - Segmenter: row-major scan of interior cells, 4-connected flood fill
//     claiming each room's cells and collecting its wall set.
//   - Boundary Walker: traces every room's perimeter clockwise into a cyclic,
//     gap-free list of wall and gateway Barriers.
//   - Gateway Promoter: turns each doorway into its own room with two wall
//     caps and two gateway sides, and records which rooms every gateway joins.
//   - Centerpoint Calculator: world-space midpoint of the edge each Barrier
//     shares with the room it faces.
//   - Topology: read-only registries room → barriers, gateway → destinations.
//
// Walk convention:
//
//	The walk starts on the cell north of a room's seed heading East and keeps
//	the room on its right. A Barrier's Direction is its facing: the heading
//	turned right, i.e. pointing from the barrier into its room.
//
//	    # # # # #        top wall faces South
//	    # . . . #        east wall faces West
//	    # . . . #        bottom wall faces North
//	    # # # # #        west wall faces East
//
// Step order (explicit state machine, see step):
//
//	straight → right (convex corner) → left (concave corner) → reverse
//	(single-cell protrusion tip).
//
// Usage:
//
//	reg := template.NewRegistry(nil)
//	g, _ := grid.FromLegend(rows, grid.DefaultLegend(), reg, grid.DefaultOptions())
//	topo, err := topology.Extract(g, reg, topology.WithLogger(logger))
//	if err != nil {
//	    var fault *topology.MapFault
//	    if errors.As(err, &fault) { /* fault.At is the offending cell */ }
//	}
//	barriers, _ := topo.Barriers(roomID)
//
// Errors:
//
//   - ErrGridNil, ErrRegistryNil:  nil inputs.
//   - ErrOptionViolation:          invalid Option.
//   - ErrOpenBorder:               an outer-ring cell is not blocked.
//   - ErrEmptyWallSet:             a room has no boundary cells.
//   - ErrBadMarker:                a boundary cell is both or neither wall and gateway.
//   - ErrWalkStuck:                the boundary walk cannot advance.
//   - ErrDanglingGateway:          a doorway does not join exactly two rooms.
//   - ErrRoomNotFound, ErrGatewayNotFound, ErrBarrierNotFound: registry lookups.
//
// Map-validity faults are returned as *MapFault carrying the coordinate.
//
// Complexity: O(W×H) time and memory for the whole pass.
//
// Concurrency: Extract is a single-threaded batch pass that mutates the
// grid's room tags; do not touch the grid until it returns. The returned
// Topology is immutable and safe for concurrent readers.
package topology
