// Node and edge lifecycle plus the deterministic query surfaces.
package graph

import "sort"

// AddNode registers id with the given payload. Re-adding an existing
// identity replaces its payload in place: an upsert, not a structural
// change. Returns ErrEmptyNodeID for the empty identity.
// Complexity: O(1).
func (g *Graph[V]) AddNode(id string, v V) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if _, exists := g.nodes[id]; !exists {
		g.adjacency[id] = nil
		g.gen++
	}
	g.nodes[id] = v

	return nil
}

// HasNode reports whether id exists (empty ID ⇒ false). O(1).
func (g *Graph[V]) HasNode(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// Node returns the payload stored under id; false when absent.
func (g *Graph[V]) Node(id string) (V, bool) {
	v, ok := g.nodes[id]

	return v, ok
}

// RemoveNode deletes id and cascades removal of every incident edge, so
// no dangling adjacency reference survives. Returns ErrNodeNotFound if
// the identity is absent.
// Complexity: O(E); a node removal is a topology rewrite.
func (g *Graph[V]) RemoveNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if _, exists := g.nodes[id]; !exists {
		return ErrNodeNotFound
	}

	g.edges = filterEdges(g.edges, id)
	for other, adj := range g.adjacency {
		if other == id {
			continue
		}
		g.adjacency[other] = filterEdges(adj, id)
	}
	delete(g.adjacency, id)
	delete(g.nodes, id)
	g.gen++

	return nil
}

// filterEdges drops every edge incident to id, preserving order.
func filterEdges(edges []*Edge, id string) []*Edge {
	kept := edges[:0]
	for _, e := range edges {
		if e.From != id && e.To != id {
			kept = append(kept, e)
		}
	}

	return kept
}

// spliceEdge removes the single edge e from edges, preserving order.
func spliceEdge(edges []*Edge, e *Edge) []*Edge {
	kept := edges[:0]
	for _, cur := range edges {
		if cur != e {
			kept = append(kept, cur)
		}
	}

	return kept
}

// AddEdge connects src to dst with the given weight. Missing endpoints
// are registered with a zero payload. Re-adding an existing (src,dst)
// pair updates the weight in place, mirroring node upserts.
//
// Errors: ErrEmptyNodeID for empty endpoints, ErrBadWeight for a
// non-zero weight on an unweighted graph, ErrLoopNotAllowed for
// src == dst while loops are disabled.
// Complexity: O(deg(src)) for the duplicate check.
func (g *Graph[V]) AddEdge(src, dst string, weight int64) error {
	if src == "" || dst == "" {
		return ErrEmptyNodeID
	}
	if weight != 0 && !g.weighted {
		return ErrBadWeight
	}
	if src == dst && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	if e := g.findEdge(src, dst); e != nil {
		if e.Weight != weight {
			e.Weight = weight
			g.gen++
		}

		return nil
	}

	var zero V
	if _, ok := g.nodes[src]; !ok {
		g.nodes[src] = zero
	}
	if _, ok := g.nodes[dst]; !ok {
		g.nodes[dst] = zero
	}

	e := &Edge{From: src, To: dst, Weight: weight, Directed: g.directed}
	g.edges = append(g.edges, e)
	g.adjacency[src] = append(g.adjacency[src], e)
	if !e.Directed && src != dst {
		g.adjacency[dst] = append(g.adjacency[dst], e)
	}
	g.gen++

	return nil
}

// RemoveEdge deletes the edge src→dst (either orientation for
// undirected graphs). Returns ErrEdgeNotFound when no such edge exists.
func (g *Graph[V]) RemoveEdge(src, dst string) error {
	e := g.findEdge(src, dst)
	if e == nil {
		return ErrEdgeNotFound
	}

	g.edges = spliceEdge(g.edges, e)
	g.adjacency[e.From] = spliceEdge(g.adjacency[e.From], e)
	if !e.Directed && e.From != e.To {
		g.adjacency[e.To] = spliceEdge(g.adjacency[e.To], e)
	}
	g.gen++

	return nil
}

// HasEdge reports whether an edge src→dst exists (honoring orientation
// for directed graphs).
func (g *Graph[V]) HasEdge(src, dst string) bool {
	return g.findEdge(src, dst) != nil
}

// findEdge locates the stored edge serving src→dst, or nil.
func (g *Graph[V]) findEdge(src, dst string) *Edge {
	for _, e := range g.adjacency[src] {
		if e.From == src && e.To == dst {
			return e
		}
		if !e.Directed && e.From == dst && e.To == src {
			return e
		}
	}

	return nil
}

// Neighbors returns the edges leaving id, oriented outward (From == id)
// and in edge insertion order, the determinism traversals rely on.
// Returns ErrNodeNotFound for an unknown identity.
// Complexity: O(deg(id)).
func (g *Graph[V]) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}

	adj := g.adjacency[id]
	out := make([]Edge, 0, len(adj))
	for _, e := range adj {
		oriented := *e
		if !e.Directed && e.To == id && e.From != id {
			// Present the undirected edge as leaving the queried node.
			oriented.From, oriented.To = id, e.From
		}
		out = append(out, oriented)
	}

	return out, nil
}

// Nodes returns all node identities sorted lexicographically ascending —
// the stable enumeration surface for reproducible traversal seeds.
// Complexity: O(V log V).
func (g *Graph[V]) Nodes() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns copies of every edge in insertion order. O(E).
func (g *Graph[V]) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}

	return out
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph[V]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of logical edges (an undirected edge
// counts once). O(1).
func (g *Graph[V]) EdgeCount() int { return len(g.edges) }

// Equal reports structural equality with o: identical node identity
// sets and identical edge sets (endpoints, weight, directedness —
// undirected endpoints compared orientation-free). Payloads and
// insertion order are not compared.
func (g *Graph[V]) Equal(o *Graph[V]) bool {
	if o == nil || len(g.nodes) != len(o.nodes) || len(g.edges) != len(o.edges) {
		return false
	}
	for id := range g.nodes {
		if _, ok := o.nodes[id]; !ok {
			return false
		}
	}
	index := make(map[Edge]int, len(o.edges))
	for _, e := range o.edges {
		index[canonical(*e)]++
	}
	for _, e := range g.edges {
		k := canonical(*e)
		if index[k] == 0 {
			return false
		}
		index[k]--
	}

	return true
}

// canonical normalizes an undirected edge so (A—B) and (B—A) compare equal.
func canonical(e Edge) Edge {
	if !e.Directed && e.To < e.From {
		e.From, e.To = e.To, e.From
	}

	return e
}
