// Package graph maintains a catalog of labeled nodes and weighted
// directed/undirected edges, the structure the bfs, dfs, and dijkstra
// engines query.
//
// Model:
//
//   - A node is a unique string identity plus a generic value payload.
//   - An Edge is (From, To, Weight, Directed). In an undirected graph an
//     edge is logically bidirectional and appears in both endpoints'
//     adjacency views consistently.
//   - No edge ever references an identity absent from the node set:
//     AddEdge registers missing endpoints, and RemoveNode cascades the
//     removal of every incident edge.
//
// Determinism:
//
//   - Nodes() enumerates identities sorted lexicographically ascending.
//   - Neighbors(id) and Edges() enumerate in edge insertion order, so
//     traversal output is reproducible run over run.
//
// Concurrency: none. The graph is single-writer and unsynchronized by
// contract; the only cross-cutting guarantee is invalidate-on-mutation
// for live traversal sequences, via the generation counter every
// structural mutation bumps.
package graph
