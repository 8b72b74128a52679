// Package graph declares Graph, Edge, construction options, and the
// sentinel errors of the node/edge lifecycle.
package graph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrEmptyNodeID indicates an operation received the empty string as
	// a node identity.
	ErrEmptyNodeID = errors.New("graph: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("graph: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted while loops
	// are disabled.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")
)

// Edge represents a connection between two nodes.
// For undirected graphs a single logical edge serves both directions;
// Neighbors returns it oriented outward from the queried node.
type Edge struct {
	// From is the source node identity.
	From string

	// To is the destination node identity.
	To string

	// Weight is the cost of the edge. Shortest-path queries require
	// non-negative weights; violation is reported, never silently fixed.
	Weight int64

	// Directed reports whether the edge is one-way.
	Directed bool
}

// Option configures behavior of a Graph before creation.
type Option func(g *graphConfig)

type graphConfig struct {
	directed   bool
	weighted   bool
	allowLoops bool
}

// WithDirected sets the directedness of all edges
// (true = directed, false = undirected; default undirected).
func WithDirected(directed bool) Option {
	return func(g *graphConfig) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights.
func WithWeighted() Option {
	return func(g *graphConfig) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() Option {
	return func(g *graphConfig) { g.allowLoops = true }
}

// Graph is the in-memory node/edge catalog with insertion-ordered
// adjacency. V is the node payload type.
type Graph[V any] struct {
	directed   bool
	weighted   bool
	allowLoops bool

	nodes     map[string]V
	adjacency map[string][]*Edge // per node, incident edges in insertion order
	edges     []*Edge            // global insertion order

	// gen counts structural mutations for traversal invalidation.
	gen uint64
}

// New creates an empty Graph with the given options.
// By default the graph is undirected, unweighted, and rejects loops.
// Complexity: O(1).
func New[V any](opts ...Option) *Graph[V] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[V]{
		directed:   cfg.directed,
		weighted:   cfg.weighted,
		allowLoops: cfg.allowLoops,
		nodes:      make(map[string]V),
		adjacency:  make(map[string][]*Edge),
	}
}

// Directed reports whether edges are one-way.
func (g *Graph[V]) Directed() bool { return g.directed }

// Weighted reports whether non-zero weights are permitted.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
func (g *Graph[V]) Weighted() bool { return g.weighted }

// Looped reports whether self-loops are permitted.
func (g *Graph[V]) Looped() bool { return g.allowLoops }

// Generation returns the structural mutation counter. Traversal
// sequences snapshot it at creation and compare on every pull.
func (g *Graph[V]) Generation() uint64 { return g.gen }
