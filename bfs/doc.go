// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order from a start vertex.
//
// Vertices are explored in increasing distance from the start. Neighbors
// of each vertex are taken in core's sorted order, so for a fixed graph
// Order, Depth and Parent are fully deterministic.
//
// Options:
//
//   - WithContext(ctx):        cancellation, checked once per dequeue and per neighbor.
//   - WithOnEnqueue(fn):       called when a vertex is first discovered.
//   - WithOnDequeue(fn):       called right before a vertex is visited.
//   - WithOnVisit(fn):         called on visit; a non-nil error aborts the search.
//   - WithMaxDepth(d):         do not discover vertices deeper than d (0 = no limit).
//   - WithFilterNeighbor(fn):  skip curr→neighbor steps for which fn is false.
//
// Errors:
//
//   - ErrGraphNil:             nil graph.
//   - ErrStartVertexNotFound:  start id absent from the graph.
//   - ErrOptionViolation:      invalid option, e.g. negative depth.
//   - ErrNeighbors:            neighbor lookup failed.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
