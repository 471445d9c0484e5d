package roomgraph

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/roomtopo/bfs"
	"github.com/katalvlaran/roomtopo/core"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrSourceNil is returned when New receives a nil Source.
	ErrSourceNil = errors.New("roomgraph: source is nil")
	// ErrRoomNotFound is returned for room ids absent from the graph.
	ErrRoomNotFound = errors.New("roomgraph: room not found")
	// ErrNoRoute is returned when no path joins two rooms.
	ErrNoRoute = errors.New("roomgraph: no route between rooms")
)

// Source is the read side of a topology the graph is derived from.
// *topology.Topology satisfies it.
type Source interface {
	Rooms() []int
	Gateways() []int
	Destinations(gatewayID int) ([]int, error)
}

// Graph is the undirected room adjacency of a topology. Rooms are core
// vertices keyed by their decimal id; every gateway is one core edge whose
// edge ID is the gateway's decimal id.
type Graph struct {
	rooms []int
	g     *core.Graph
}

// New derives the room graph from src. Every gateway contributes one edge
// between its two destinations; several gateways may join the same pair.
// Returns ErrSourceNil, or a wrapped lookup error from src.
func New(src Source) (*Graph, error) {
	if src == nil {
		return nil, ErrSourceNil
	}
	rg := &Graph{
		rooms: src.Rooms(),
		g:     core.NewGraph(core.WithMultiEdges(), core.WithLoops()),
	}
	for _, id := range rg.rooms {
		if err := rg.g.AddVertex(key(id)); err != nil {
			return nil, fmt.Errorf("roomgraph: room %d: %w", id, err)
		}
	}

	for _, gw := range src.Gateways() {
		dest, err := src.Destinations(gw)
		if err != nil {
			return nil, fmt.Errorf("roomgraph: gateway %d: %w", gw, err)
		}
		if len(dest) != 2 {
			continue
		}
		a, b := key(dest[0]), key(dest[1])
		if !rg.g.HasVertex(a) || !rg.g.HasVertex(b) {
			return nil, fmt.Errorf("%w: gateway %d joins %v", ErrRoomNotFound, gw, dest)
		}
		if _, err := rg.g.AddEdge(a, b, core.WithEdgeID(key(gw))); err != nil {
			return nil, fmt.Errorf("roomgraph: gateway %d: %w", gw, err)
		}
	}

	return rg, nil
}

// Rooms returns all room ids in the source's order.
func (rg *Graph) Rooms() []int {
	return append([]int(nil), rg.rooms...)
}

// Neighbors returns the rooms adjacent to room, sorted ascending.
func (rg *Graph) Neighbors(room int) ([]int, error) {
	ns, err := rg.g.NeighborIDs(key(room))
	if err != nil {
		return nil, fmt.Errorf("%w: %d", ErrRoomNotFound, room)
	}
	return ids(ns), nil
}

// Between returns the gateway ids joining rooms a and b, sorted ascending,
// or nil when they are not adjacent.
func (rg *Graph) Between(a, b int) []int {
	return ids(rg.g.EdgesBetween(key(a), key(b)))
}

// Route returns a path from one room to another visiting the fewest rooms,
// both ends included. Among equally short paths the one found first by a
// breadth-first search over neighbors in decimal-string order wins.
// Returns ErrRoomNotFound for unknown ids and ErrNoRoute when to is not
// reachable from from.
func (rg *Graph) Route(from, to int) ([]int, error) {
	if !rg.g.HasVertex(key(from)) {
		return nil, fmt.Errorf("%w: %d", ErrRoomNotFound, from)
	}
	if !rg.g.HasVertex(key(to)) {
		return nil, fmt.Errorf("%w: %d", ErrRoomNotFound, to)
	}

	res, err := bfs.BFS(rg.g, key(from))
	if err != nil {
		return nil, fmt.Errorf("roomgraph: route %d → %d: %w", from, to, err)
	}
	path, err := res.PathTo(key(to))
	if err != nil {
		return nil, fmt.Errorf("%w: %d → %d", ErrNoRoute, from, to)
	}

	out := make([]int, len(path))
	for i, v := range path {
		out[i] = room(v)
	}
	return out, nil
}

// Reachable returns every room reachable from from, itself included,
// sorted ascending.
func (rg *Graph) Reachable(from int) ([]int, error) {
	if !rg.g.HasVertex(key(from)) {
		return nil, fmt.Errorf("%w: %d", ErrRoomNotFound, from)
	}
	res, err := bfs.BFS(rg.g, key(from))
	if err != nil {
		return nil, fmt.Errorf("roomgraph: reachable from %d: %w", from, err)
	}
	return ids(res.Order), nil
}

func key(id int) string { return strconv.Itoa(id) }

// room parses a vertex or edge ID written by key.
func room(v string) int {
	id, _ := strconv.Atoi(v)
	return id
}

// ids converts core IDs back to room or gateway ids, sorted ascending.
// A nil or empty input yields nil.
func ids(vs []string) []int {
	if len(vs) == 0 {
		return nil
	}
	out := make([]int, len(vs))
	for i, v := range vs {
		out[i] = room(v)
	}
	sort.Ints(out)
	return out
}
