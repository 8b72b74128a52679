package graph_test

import (
	"fmt"

	"github.com/katalvlaran/lvlcoll/graph"
)

// ExampleGraph builds a small undirected friendship graph and lists
// one node's neighbors in insertion order.
func ExampleGraph() {
	g := graph.New[string]()
	_ = g.AddNode("alice", "engineer")
	_ = g.AddEdge("alice", "bob", 0)
	_ = g.AddEdge("alice", "carol", 0)

	nbrs, _ := g.Neighbors("alice")
	for _, e := range nbrs {
		fmt.Println(e.To)
	}
	// Output:
	// bob
	// carol
}

// ExampleGraph_AddEdge shows the weight upsert on a duplicate pair.
func ExampleGraph_AddEdge() {
	g := graph.New[int](graph.WithDirected(true), graph.WithWeighted())
	_ = g.AddEdge("A", "B", 7)
	_ = g.AddEdge("A", "B", 3) // same pair, new weight

	fmt.Println(g.EdgeCount())
	edges := g.Edges()
	fmt.Println(edges[0].Weight)
	// Output:
	// 1
	// 3
}
