// Package dfs implements depth-first traversal on graph.Graph, plus the
// two classic byproducts: cycle detection and topological sorting.
//
// Key features:
//   - DFS(g, startID, opts...): pre-order traversal from a root, or a
//     full forest via WithFullTraversal
//   - Iterate(g, startID): lazy DFS-order sequence for the iterator
//     layer, invalidated by structural mutation
//   - HasCycle(g): three-color back-edge detection on directed graphs
//   - TopologicalSort(g): reverse post-order on directed acyclic graphs
//   - Hooks & limits: OnVisit with error abort, MaxDepth, FilterNeighbor
//
// The walker descends one unvisited neighbor at a time in edge
// insertion order and backtracks on exhaustion, so traversal output is
// reproducible. All walks run on an explicit deque stack rather than
// the call stack, keeping adversarially deep graphs safe.
//
// Complexity:
//
//   - Time:   O(V + E), plus hook and filter overhead
//   - Memory: O(V) for the stack and metadata maps
package dfs
