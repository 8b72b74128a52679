// Package dfs defines types and options for depth-first traversal:
// visit hooks, depth limiting, neighbor filtering, and forest mode.
package dfs

import "errors"

// Node visitation states for cycle detection and topological sorting.
const (
	white = iota // not visited yet
	gray         // on the exploration stack
	black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS,
	// TopologicalSort, or HasCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates the start identity does not exist.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")

	// ErrCycleDetected indicates a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNotDirected is returned by TopologicalSort and HasCycle on an
	// undirected graph, where back-edges to the parent are not cycles.
	ErrNotDirected = errors.New("dfs: directed graph required")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity stays O(V+E) when filters and hooks are O(1).
type Options struct {
	// OnVisit, if non-nil, is invoked when a node is first discovered
	// (pre-order). Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// MaxDepth, if non-negative, limits descent to the given depth.
	// Depth 0 visits only the start node. Default -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is consulted before descending into a
	// neighbor. Return false to skip it.
	FilterNeighbor func(id string) bool

	// FullTraversal, if true, restarts DFS from every unvisited node in
	// sorted identity order, covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns Options with no hooks, no depth limit, no
// filtering, and single-source traversal.
func DefaultOptions() Options {
	return Options{MaxDepth: -1}
}

// WithOnVisit installs fn as the pre-order discovery hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithMaxDepth limits traversal depth; 0 visits only the start node.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal enables forest traversal across disconnected
// components.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records nodes in discovery (pre-order) sequence.
	Order []string

	// Depth maps each node to its edge distance from its tree root.
	Depth map[string]int

	// Parent maps each node to the node it was discovered from.
	// Tree roots do not appear.
	Parent map[string]string

	// Visited flags the nodes reached during the traversal.
	Visited map[string]bool
}
