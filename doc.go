// Package lvlcoll is an in-memory toolbox of classic container structures —
// an arena-backed self-balancing ordered tree and a weighted graph with
// traversal and shortest-path queries, tied together by a shared lazy
// iterator contract.
//
// 🚀 What is lvlcoll?
//
//	A small, deterministic, reference-grade library that brings together:
//		• Arena ownership: stable handles, O(1) staleness checks, no leaks
//		• Ordered tree: height-balanced (AVL) generic BST with ordered iteration
//		• Graph: directed/undirected weighted edges, cascading node removal
//		• Traversals: BFS, DFS (iterative, insertion-order deterministic)
//		• Shortest paths: Dijkstra with path reconstruction
//		• Iterators: lazy in-/pre-/post-order and BFS/DFS sequences with
//		  generation-counter invalidation on structural mutation
//
// ✨ Why choose lvlcoll?
//
//   - Reproducible – every enumeration surface is deterministically ordered
//   - Honest errors – recoverable conditions are sentinel values, never panics
//   - Pure Go – generics, no cgo, no hidden machinery
//   - Extensible – functional options and hooks (OnVisit, FilterNeighbor…)
//
// Under the hood, everything is organized into flat topic packages:
//
//	arena/    — generational arena owning node storage, stable handles
//	avl/      — ordered tree engine (insert/remove/search/min/max/iterate)
//	graph/    — node & edge catalog with insertion-ordered adjacency
//	bfs/      — breadth-first traversal, eager and lazy forms
//	dfs/      — depth-first traversal, cycle detection, topological sort
//	dijkstra/ — non-negative shortest paths, eager distances and A→B paths
//	deque/    — ring-buffer double-ended queue (frontiers and stacks)
//	iterator/ — the lazy sequence contract shared by every engine
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    5     2
//	    │     │
//	    └─────C        ShortestPath(A,C) = [A B C], weight 3
//
// Dive into each package's doc.go for contracts, complexity notes, and
// runnable examples.
//
//	go get github.com/katalvlaran/lvlcoll
package lvlcoll
