package dijkstra

import (
	"errors"
	"math"
)

var (
	// ErrGraphNil is returned when the graph argument is nil.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph is returned for graphs not configured with
	// weights; shortest paths are meaningless without them.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrNodeNotFound is returned when the source or destination node
	// does not exist in the graph.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrNegativeWeight is returned when any edge carries a negative
	// weight. Detected by an upfront scan, never silently mis-ranked.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnreachable is returned by ShortestPath when no path connects
	// the source to the destination.
	ErrUnreachable = errors.New("dijkstra: destination unreachable from source")

	// ErrOptionViolation is returned when an option carries an invalid
	// value, e.g. a negative MaxDistance.
	ErrOptionViolation = errors.New("dijkstra: invalid option value")
)

// Unreachable marks a node with no path from the source in the
// distance map returned by Distances.
const Unreachable = int64(math.MaxInt64)

// Option adjusts the search configuration.
type Option func(*Options)

// Options configures a shortest-path run.
type Options struct {
	// MaxDistance caps exploration: nodes whose settled distance would
	// exceed it are never expanded. Default math.MaxInt64 (no cap).
	MaxDistance int64
}

// DefaultOptions returns the baseline configuration: unbounded search.
func DefaultOptions() Options {
	return Options{MaxDistance: math.MaxInt64}
}

// WithMaxDistance bounds the search radius; nodes farther than limit
// from the source stay unsettled. Negative limits are rejected at run
// time with ErrOptionViolation.
func WithMaxDistance(limit int64) Option {
	return func(o *Options) { o.MaxDistance = limit }
}

func (o Options) validate() error {
	if o.MaxDistance < 0 {
		return ErrOptionViolation
	}

	return nil
}
