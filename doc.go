// Package roomtopo turns a rectangular grid map into a room-level topology:
// which cells form each room, how every room is bounded, and which rooms
// every doorway joins.
//
// What is roomtopo?
//
//	A pure-Go, single-pass extraction library organized as:
//		• compass/    cardinal directions, rotations and grid points
//		• idgen/      the shared id counter for rooms, barriers and objects
//		• template/   named object templates (wall, gateway, room marker, custom)
//		• grid/       the W×H cell arena and its neutral out-of-bounds queries
//		• topology/   segmentation, boundary walk, gateway promotion, centerpoints
//		• core/       undirected string-id graph store
//		• bfs/        breadth-first search with hooks and PathTo
//		• roomgraph/  room adjacency, routes and reachability over a Topology
//
// Pipeline:
//
//	grid.FromLegend ─▶ topology.Extract ─▶ *topology.Topology ─▶ roomgraph.New
//
//	1. Segment: flood-fill passable cells into rooms, collecting wall sets.
//	2. Walk:    trace each room's boundary clockwise into wall/gateway Barriers.
//	3. Promote: turn each doorway into a room of its own with two gateway sides.
//	4. Publish: compute centerpoints and freeze the registries.
//
// Quick start:
//
//	reg := template.NewRegistry(nil)
//	g, err := grid.FromLegend([]string{
//	    "#######",
//	    "#..+..#",
//	    "#######",
//	}, grid.DefaultLegend(), reg, grid.DefaultOptions())
//	topo, err := topology.Extract(g, reg)
//	rg, err := roomgraph.New(topo)
//
// See the package docs for complexity, options and error contracts.
package roomtopo
