// Package roomgraph builds an undirected adjacency over the rooms of a
// topology.Topology and answers reachability questions on it.
//
// Two rooms are adjacent when some gateway lists both of them as its
// destinations. A doorway therefore yields a triangle: the original gateways
// join the two rooms directly, and the doorway room's gateway sides join it
// to each of them.
//
//	room A ─────────── room B
//	     \             /
//	      doorway room G
//
// Operations:
//
//   - New(src):           O(R + Gw) build from any Source.
//   - Neighbors(room):    sorted adjacent room ids.
//   - Between(a, b):      gateway ids joining two adjacent rooms.
//   - Route(from, to):    fewest-rooms path, via bfs.BFS.
//   - Reachable(from):    every room reachable from a room, sorted.
//
// R is the number of rooms and Gw the number of gateways. Route and
// Reachable run in O(R + Gw).
//
// Storage is a core.Graph with multi-edges enabled: rooms are vertices keyed
// by strconv.Itoa(id) and each gateway is an edge carrying its own id.
// Neighbor order inside the search is therefore the decimal-string order of
// room ids, which decides between equally short routes.
//
// Errors:
//
//   - ErrSourceNil:     nil Source passed to New.
//   - ErrRoomNotFound:  unknown room id.
//   - ErrNoRoute:       Route target unreachable from its start.
//
// A Graph is immutable after New and safe for concurrent readers.
package roomgraph
