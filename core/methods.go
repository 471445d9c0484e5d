package core

import (
	"fmt"
	"sort"
)

const edgeIDPrefix = "e"

// AddVertex inserts a vertex with the given ID. Adding an existing vertex
// is a no-op. Returns ErrEmptyVertexID for an empty id.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertex(id)

	return nil
}

// addVertex must be called with mu held for writing.
func (g *Graph) addVertex(id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = &Vertex{ID: id}
	g.adjacencyList[id] = make(map[string]map[string]struct{})
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.vertices)
}

// AddEdge connects from and to, creating missing endpoints, and returns the
// edge ID.
// Returns ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed or
// ErrDuplicateEdgeID.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti && len(g.adjacencyList[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}
	e := &Edge{From: from, To: to}
	for _, opt := range opts {
		opt(e)
	}
	if e.ID == "" {
		g.nextEdgeID++
		e.ID = fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID)
	}
	if _, dup := g.edges[e.ID]; dup {
		return "", fmt.Errorf("%w: %q", ErrDuplicateEdgeID, e.ID)
	}

	g.addVertex(from)
	g.addVertex(to)
	g.edges[e.ID] = e
	g.link(from, to, e.ID)
	g.link(to, from, e.ID)

	return e.ID, nil
}

// link must be called with mu held for writing.
func (g *Graph) link(from, to, eid string) {
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
	g.adjacencyList[from][to][eid] = struct{}{}
}

// GetEdge returns a copy of the edge with the given ID.
func (g *Graph) GetEdge(id string) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[id]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %q", ErrEdgeNotFound, id)
	}
	return *e, nil
}

// HasEdge reports whether at least one edge joins from and to.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.adjacencyList[from][to]) > 0
}

// EdgesBetween returns the IDs of all edges joining from and to, sorted.
// Returns nil when the vertices are not adjacent or do not exist.
func (g *Graph) EdgesBetween(from, to string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket := g.adjacencyList[from][to]
	if len(bucket) == 0 {
		return nil
	}
	ids := make([]string, 0, len(bucket))
	for eid := range bucket {
		ids = append(ids, eid)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns copies of all edges sorted by ID.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// NeighborIDs returns the unique IDs adjacent to id, sorted ascending.
// Returns ErrVertexNotFound for an unknown vertex.
// Complexity: O(k log k) for k neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacencyList[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	ids := make([]string, 0, len(adj))
	for nbr, bucket := range adj {
		if len(bucket) > 0 {
			ids = append(ids, nbr)
		}
	}
	sort.Strings(ids)

	return ids, nil
}
