package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvlcoll/graph"
)

// ShortestPath computes the minimum-weight path from src to dst.
//
// Returns the node sequence including both endpoints and the total
// path weight. A query with src == dst returns the one-node path with
// weight 0.
//
// Errors: ErrGraphNil, ErrUnweightedGraph, ErrNodeNotFound when either
// endpoint is absent, ErrNegativeWeight from the upfront edge scan,
// ErrUnreachable when no path exists.
// Complexity: O((V + E) log V).
func ShortestPath[V any](g *graph.Graph[V], src, dst string, opts ...Option) ([]string, int64, error) {
	r, err := newRunner(g, src, opts)
	if err != nil {
		return nil, 0, err
	}
	if !g.HasNode(dst) {
		return nil, 0, fmt.Errorf("%w: %q", ErrNodeNotFound, dst)
	}

	r.run()

	if r.dist[dst] == Unreachable {
		return nil, 0, fmt.Errorf("%w: %q from %q", ErrUnreachable, dst, src)
	}

	// Backtrack dst → src through the predecessor map, then reverse.
	path := []string{dst}
	for cur := dst; cur != src; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, r.dist[dst], nil
}

// Distances computes shortest distances from src to every node.
//
// Returns the distance map (Unreachable for nodes with no path) and
// the predecessor map (prev[v] is the node v was settled from; absent
// for src and unreachable nodes).
//
// Errors: ErrGraphNil, ErrUnweightedGraph, ErrNodeNotFound,
// ErrNegativeWeight, ErrOptionViolation.
// Complexity: O((V + E) log V).
func Distances[V any](g *graph.Graph[V], src string, opts ...Option) (map[string]int64, map[string]string, error) {
	r, err := newRunner(g, src, opts)
	if err != nil {
		return nil, nil, err
	}

	r.run()

	return r.dist, r.prev, nil
}

// runner holds the mutable state of one search.
type runner[V any] struct {
	graph   *graph.Graph[V]
	opts    Options
	src     string
	dist    map[string]int64
	prev    map[string]string
	settled map[string]bool
	pq      nodePQ
}

// newRunner validates inputs in a fixed order and prepares the state.
func newRunner[V any](g *graph.Graph[V], src string, opts []Option) (*runner[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if err := dopts.validate(); err != nil {
		return nil, err
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if !g.HasNode(src) {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, src)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s->%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	n := g.NodeCount()
	r := &runner[V]{
		graph:   g,
		opts:    dopts,
		src:     src,
		dist:    make(map[string]int64, n),
		prev:    make(map[string]string, n),
		settled: make(map[string]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for _, id := range g.Nodes() {
		r.dist[id] = Unreachable
	}
	r.dist[src] = 0

	return r, nil
}

// run drains the priority queue, settling one node per iteration and
// relaxing its outgoing edges. Stale heap entries (already settled or
// superseded by a shorter push) are skipped on pop.
func (r *runner[V]) run() {
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.src, dist: 0})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.settled[item.id] {
			continue
		}
		if item.dist > r.opts.MaxDistance {
			// Everything left in the heap is at least this far away.
			break
		}
		r.settled[item.id] = true
		r.relax(item.id)
	}
}

// relax offers dist[u]+w to every neighbor of u, recording strictly
// shorter paths. Neighbors already visits edges in insertion order and
// oriented outward, so ties settle deterministically.
func (r *runner[V]) relax(u string) {
	neighbors, _ := r.graph.Neighbors(u) // u is a settled node, lookup cannot fail
	for _, e := range neighbors {
		if r.settled[e.To] {
			continue
		}
		candidate := r.dist[u] + e.Weight
		if candidate > r.opts.MaxDistance || candidate >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = candidate
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: candidate})
	}
}

// nodeItem is one heap entry: a node and the distance it was pushed at.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending. Shorter
// rediscoveries push fresh entries instead of re-keying old ones; the
// stale entries are filtered by the settled check in run.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
