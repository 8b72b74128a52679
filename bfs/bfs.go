package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvlcoll/deque"
	"github.com/katalvlaran/lvlcoll/graph"
	"github.com/katalvlaran/lvlcoll/iterator"
)

// queueItem pairs a node identity with its hop depth and parent.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for the start node
}

// walker encapsulates mutable BFS state.
type walker[V any] struct {
	graph   *graph.Graph[V]
	opts    Options
	queue   deque.Deque[queueItem]
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first traversal on g from startID, applying any
// number of functional Options. A node enters the frontier at most
// once, so graphs with cycles terminate after visiting each reachable
// node exactly once.
//
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit hook error.
func BFS[V any](g *graph.Graph[V], startID string, opts ...Option) (*Result, error) {
	w, err := newWalker(g, startID, opts...)
	if err != nil {
		return nil, err
	}

	for w.queue.Len() > 0 {
		item, qErr := w.queue.PopFront()
		if qErr != nil {
			break // unreachable: guarded by Len
		}
		if err = w.visit(item); err != nil {
			return w.res, err
		}
		if err = w.enqueueNeighbors(item); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// newWalker validates inputs, applies options, and seeds the frontier
// with the start node at depth 0.
func newWalker[V any](g *graph.Graph[V], startID string, opts ...Option) (*walker[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(startID) {
		return nil, ErrStartNodeNotFound
	}

	n := g.NodeCount()
	w := &walker[V]{
		graph:   g,
		opts:    o,
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(startID, 0, "")

	return w, nil
}

// enqueue marks id visited at depth d, records its parent, and adds it
// to the frontier.
func (w *walker[V]) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue.PushBack(queueItem{id: id, depth: d, parent: parent})
}

// visit records the node in Order and calls OnVisit.
func (w *walker[V]) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each
// unseen neighbor in edge insertion order.
func (w *walker[V]) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
	}
	for _, e := range neighbors {
		nbr := e.To
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}

	return nil
}

// Iterate returns a lazy BFS-order sequence of node identities from
// startID. The sequence snapshots the graph's generation counter and
// fails with iterator.ErrConcurrentModification on the first pull after
// any structural mutation.
func Iterate[V any](g *graph.Graph[V], startID string) (iterator.Iterator[string], error) {
	w, err := newWalker(g, startID)
	if err != nil {
		return nil, err
	}

	return &bfsIter[V]{w: w, gen: g.Generation()}, nil
}

type bfsIter[V any] struct {
	w   *walker[V]
	gen uint64
	cur string
	err error
}

func (it *bfsIter[V]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.gen != it.w.graph.Generation() {
		it.err = iterator.ErrConcurrentModification

		return false
	}
	item, err := it.w.queue.PopFront()
	if err != nil {
		return false // frontier drained: normal termination
	}
	it.cur = item.id
	if err = it.w.enqueueNeighbors(item); err != nil {
		it.err = err

		return false
	}

	return true
}

func (it *bfsIter[V]) Value() string { return it.cur }

func (it *bfsIter[V]) Err() error { return it.err }
