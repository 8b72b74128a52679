// Package avl defines the tree's public types, sentinel errors, and
// construction options.
package avl

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlcoll/arena"
)

// ErrEmptyTree is returned by Min and Max on a tree with no elements.
var ErrEmptyTree = errors.New("avl: empty tree")

// Pair couples a key with its stored value; the element type of every
// tree iteration sequence.
type Pair[K constraints.Ordered, V any] struct {
	Key   K
	Value V
}

// node is the arena payload: key, value, balance metadata, and handle
// links. The parent link is a non-owning back-reference used for
// iterative rebalancing.
type node[K constraints.Ordered, V any] struct {
	key    K
	val    V
	left   arena.Handle
	right  arena.Handle
	parent arena.Handle
	height int
}

// Option configures a Tree before first use.
type Option func(*config)

type config struct {
	capacity int
}

// WithCapacity pre-sizes the node arena for n elements.
// Non-positive n is ignored.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// Tree is a height-balanced binary search tree mapping unique keys of
// type K to values of type V. The zero Tree is not usable; construct
// with New.
type Tree[K constraints.Ordered, V any] struct {
	nodes *arena.Arena[node[K, V]]
	root  arena.Handle
	size  int

	// gen counts structural mutations; live iterators compare against
	// their creation snapshot to detect concurrent modification.
	gen uint64
}

// New creates an empty tree owning a fresh node arena.
func New[K constraints.Ordered, V any](opts ...Option) *Tree[K, V] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Tree[K, V]{
		nodes: arena.New[node[K, V]](arena.WithCapacity(cfg.capacity)),
	}
}
