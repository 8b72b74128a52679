// Package dijkstra computes shortest paths on weighted graphs with
// non-negative edge weights.
//
// What is Dijkstra's algorithm?
//
// Starting from a source node, the algorithm repeatedly settles the
// unvisited node with the smallest known distance and relaxes its
// outgoing edges, using a min-heap priority queue. Settled distances
// are final; the heap may hold stale duplicates that are skipped on
// pop (the lazy decrease-key strategy).
//
// Two entry points:
//
//   - ShortestPath(g, src, dst) — single-pair query returning the node
//     sequence from src to dst and its total weight.
//   - Distances(g, src) — single-source form returning the distance and
//     predecessor maps for every reachable node.
//
// Guarantees:
//
//   - Fail-fast validation: nil graph, unweighted graph, missing
//     endpoints, and negative weights (upfront O(E) scan) all return
//     sentinel errors before any work is done.
//   - Deterministic results: ties are broken by edge insertion order,
//     so repeated runs on the same graph agree.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
//
// See ShortestPath and Distances for usage examples.
package dijkstra
