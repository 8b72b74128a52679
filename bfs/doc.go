// Package bfs provides breadth-first traversal over a graph.Graph,
// returning hop distances, parent links, and visit order.
//
// BFS explores nodes in increasing hop distance from a start node,
// visiting each node exactly once; cycles terminate naturally because
// a visited node is never re-enqueued. Neighbor visitation follows edge
// insertion order, so output is reproducible.
//
// Two forms are offered:
//
//   - BFS: eager, returns the complete Result
//   - Iterate: lazy node-identity sequence for the iterator layer,
//     invalidated by structural mutation of the graph
//
// Complexity: O(V + E) time, O(V) space; the frontier is a deque used
// as a FIFO queue.
package bfs
