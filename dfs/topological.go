// Cycle detection and topological sorting: depth-first search with
// three-color marking and back-edge detection, run on an explicit
// stack. Both require a directed graph; in an undirected graph the
// edge back to the parent is not a cycle.
//
// Complexity: O(V + E) time, O(V) memory for both.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlcoll/deque"
	"github.com/katalvlaran/lvlcoll/graph"
)

// colorFrame drives the two-phase (discover/finish) stack walk.
type colorFrame struct {
	id       string
	expanded bool
}

// TopologicalSort computes a linear ordering of all nodes such that for
// every directed edge u→v, u appears before v. Roots are seeded in
// sorted identity order, so the ordering is deterministic.
//
// Returns ErrGraphNil for a nil graph, ErrNotDirected for an undirected
// one, and ErrCycleDetected when no such ordering exists.
func TopologicalSort[V any](g *graph.Graph[V]) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}

	nodes := g.Nodes()
	state := make(map[string]int, len(nodes))
	order := make([]string, 0, len(nodes))

	for _, id := range nodes {
		if state[id] != white {
			continue
		}
		if err := colorWalk(g, id, state, func(finished string) {
			order = append(order, finished)
		}); err != nil {
			return nil, err
		}
	}

	// Reverse the post-order to obtain the topological order.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}

// HasCycle reports whether the directed graph g contains a cycle.
// Returns ErrGraphNil or ErrNotDirected for invalid input.
func HasCycle[V any](g *graph.Graph[V]) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.Directed() {
		return false, ErrNotDirected
	}

	state := make(map[string]int, g.NodeCount())
	for _, id := range g.Nodes() {
		if state[id] != white {
			continue
		}
		if err := colorWalk(g, id, state, func(string) {}); err != nil {
			if errors.Is(err, ErrCycleDetected) {
				return true, nil
			}

			return false, err
		}
	}

	return false, nil
}

// colorWalk runs a three-color DFS from root on an explicit stack,
// calling onFinish for each node as it turns black (post-order).
// A gray→gray edge is a back edge and yields ErrCycleDetected.
func colorWalk[V any](g *graph.Graph[V], root string, state map[string]int, onFinish func(string)) error {
	var stack deque.Deque[colorFrame]
	stack.PushBack(colorFrame{id: root})

	for stack.Len() > 0 {
		f, err := stack.PopBack()
		if err != nil {
			break // unreachable: guarded by Len
		}
		if f.expanded {
			state[f.id] = black
			onFinish(f.id)

			continue
		}
		if state[f.id] != white {
			continue // reached again through another path
		}
		state[f.id] = gray
		stack.PushBack(colorFrame{id: f.id, expanded: true})

		neighbors, err := g.Neighbors(f.id)
		if err != nil {
			return fmt.Errorf("dfs: neighbors of %q: %w", f.id, err)
		}
		for i := len(neighbors) - 1; i >= 0; i-- {
			nbr := neighbors[i].To
			switch state[nbr] {
			case gray:
				return ErrCycleDetected // back edge
			case white:
				stack.PushBack(colorFrame{id: nbr})
			}
		}
	}

	return nil
}
