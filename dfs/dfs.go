package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvlcoll/deque"
	"github.com/katalvlaran/lvlcoll/graph"
	"github.com/katalvlaran/lvlcoll/iterator"
)

// frame is one pending descent on the explicit stack.
type frame struct {
	id     string
	depth  int
	parent string // empty for tree roots
}

// dfsWalker encapsulates state during DFS.
type dfsWalker[V any] struct {
	graph *graph.Graph[V]
	opts  Options
	stack deque.Deque[frame]
	res   *Result
}

// DFS performs depth-first traversal of g in pre-order. With
// WithFullTraversal it covers all disconnected components, restarting
// from unvisited nodes in sorted identity order; otherwise it explores
// only from startID. Neighbor descent follows edge insertion order, so
// the output is reproducible. Cycles terminate naturally: a visited
// node is never expanded twice.
//
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input, or any
// error returned by the OnVisit hook.
func DFS[V any](g *graph.Graph[V], startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if !dopts.FullTraversal && !g.HasNode(startID) {
		return nil, ErrStartNodeNotFound
	}

	n := g.NodeCount()
	w := &dfsWalker[V]{
		graph: g,
		opts:  dopts,
		res: &Result{
			Order:   make([]string, 0, n),
			Depth:   make(map[string]int, n),
			Parent:  make(map[string]string, n),
			Visited: make(map[string]bool, n),
		},
	}

	if dopts.FullTraversal {
		for _, id := range g.Nodes() {
			if !w.res.Visited[id] {
				if err := w.explore(id); err != nil {
					return w.res, err
				}
			}
		}
	} else if err := w.explore(startID); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// explore drains one DFS tree rooted at rootID.
func (w *dfsWalker[V]) explore(rootID string) error {
	w.stack.PushBack(frame{id: rootID})
	for w.stack.Len() > 0 {
		f, err := w.stack.PopBack()
		if err != nil {
			break // unreachable: guarded by Len
		}
		if _, err = w.expand(f); err != nil {
			return err
		}
	}

	return nil
}

// expand visits f (unless already seen) and pushes its unvisited
// neighbors. Returns whether the node was freshly visited.
func (w *dfsWalker[V]) expand(f frame) (bool, error) {
	if w.res.Visited[f.id] {
		return false, nil
	}
	w.res.Visited[f.id] = true
	w.res.Depth[f.id] = f.depth
	if f.parent != "" {
		w.res.Parent[f.id] = f.parent
	}
	w.res.Order = append(w.res.Order, f.id)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(f.id); err != nil {
			return true, fmt.Errorf("dfs: OnVisit hook for %q: %w", f.id, err)
		}
	}

	if w.opts.MaxDepth >= 0 && f.depth >= w.opts.MaxDepth {
		return true, nil
	}

	neighbors, err := w.graph.Neighbors(f.id)
	if err != nil {
		return true, fmt.Errorf("dfs: neighbors of %q: %w", f.id, err)
	}
	// Push in reverse so the first-inserted edge is descended first.
	for i := len(neighbors) - 1; i >= 0; i-- {
		nbr := neighbors[i].To
		if nbr == f.id {
			continue // self-loop contributes nothing to traversal
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr) {
			continue
		}
		if !w.res.Visited[nbr] {
			w.stack.PushBack(frame{id: nbr, depth: f.depth + 1, parent: f.id})
		}
	}

	return true, nil
}

// Iterate returns a lazy DFS-order sequence of node identities from
// startID. The sequence snapshots the graph's generation counter and
// fails with iterator.ErrConcurrentModification on the first pull after
// any structural mutation.
func Iterate[V any](g *graph.Graph[V], startID string) (iterator.Iterator[string], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(startID) {
		return nil, ErrStartNodeNotFound
	}

	n := g.NodeCount()
	w := &dfsWalker[V]{
		graph: g,
		opts:  DefaultOptions(),
		res: &Result{
			Depth:   make(map[string]int, n),
			Parent:  make(map[string]string, n),
			Visited: make(map[string]bool, n),
		},
	}
	w.stack.PushBack(frame{id: startID})

	return &dfsIter[V]{w: w, gen: g.Generation()}, nil
}

type dfsIter[V any] struct {
	w   *dfsWalker[V]
	gen uint64
	cur string
	err error
}

func (it *dfsIter[V]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.gen != it.w.graph.Generation() {
		it.err = iterator.ErrConcurrentModification

		return false
	}
	for it.w.stack.Len() > 0 {
		f, err := it.w.stack.PopBack()
		if err != nil {
			break
		}
		visited, err := it.w.expand(f)
		if err != nil {
			it.err = err

			return false
		}
		if visited {
			it.cur = f.id

			return true
		}
	}

	return false // stack drained: normal termination
}

func (it *dfsIter[V]) Value() string { return it.cur }

func (it *dfsIter[V]) Err() error { return it.err }
