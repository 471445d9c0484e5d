// Package core provides the in-memory undirected graph that room adjacency
// is stored in.
//
// Vertices are identified by non-empty string IDs (roomgraph uses decimal
// room ids). Edges carry their own string ID; roomgraph uses the gateway id,
// so one edge exists per gateway and parallel edges between the same pair of
// rooms are the norm, not the exception.
//
// Storage:
//
//	adjacencyList[from][to][edgeID] = struct{}{}
//
// Every edge is mirrored in adjacencyList[to][from], so existence checks,
// insertion and pair lookups are O(1) amortized.
//
// Configuration Options (GraphOption):
//
//   - WithMultiEdges(): allow several edges between the same pair.
//     Otherwise a second AddEdge(from, to) → ErrMultiEdgeNotAllowed.
//   - WithLoops(): allow self-loops; otherwise AddEdge(v, v) → ErrLoopNotAllowed.
//
// EdgeOptions:
//
//   - WithEdgeID(id): use id instead of a generated "e1", "e2", … ID.
//
// Determinism:
//
//	Vertices(), Edges(), NeighborIDs() and EdgesBetween() return sorted
//	results (lexicographic by ID), so traversals built on them are
//	reproducible.
//
// Concurrency:
//
//	A single sync.RWMutex guards all state; reads may run in parallel with
//	each other.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrDuplicateEdgeID     - WithEdgeID names an existing edge.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
