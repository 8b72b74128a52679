package dfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcoll/dfs"
	"github.com/katalvlaran/lvlcoll/graph"
	"github.com/katalvlaran/lvlcoll/iterator"
)

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS[int](nil, "A")
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	g := graph.New[int]()
	_, err = dfs.DFS(g, "missing")
	require.ErrorIs(t, err, dfs.ErrStartNodeNotFound)
}

func TestDFS_PreOrderDeterministic(t *testing.T) {
	//   A → B → C
	//   A → D
	g := graph.New[int](graph.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("A", "D", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	// First-inserted edge is descended first, exhaustively, before backtracking.
	require.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	require.Equal(t, "B", res.Parent["C"])
	require.Equal(t, 2, res.Depth["C"])
}

// TestDFS_CycleTerminates visits {A,B} exactly once each and stops.
func TestDFS_CycleTerminates(t *testing.T) {
	g := graph.New[int](graph.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "A", 0))

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, res.Order)
}

func TestDFS_MaxDepth(t *testing.T) {
	g := graph.New[int](graph.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))

	res, err := dfs.DFS(g, "A", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, res.Order)

	res, err = dfs.DFS(g, "A", dfs.WithMaxDepth(0))
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, res.Order, "depth 0 visits only the start node")
}

func TestDFS_FilterNeighbor(t *testing.T) {
	g := graph.New[int](graph.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("A", "C", 0))

	res, err := dfs.DFS(g, "A", dfs.WithFilterNeighbor(func(id string) bool {
		return id != "B"
	}))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C"}, res.Order)
}

func TestDFS_OnVisitAborts(t *testing.T) {
	g := graph.New[int](graph.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 0))

	boom := errors.New("halt")
	_, err := dfs.DFS(g, "A", dfs.WithOnVisit(func(id string) error {
		if id == "B" {
			return boom
		}

		return nil
	}))
	require.ErrorIs(t, err, boom)
}

func TestDFS_FullTraversalCoversComponents(t *testing.T) {
	g := graph.New[int]()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("X", "Y", 0))

	res, err := dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	require.Len(t, res.Order, 4)
	require.True(t, res.Visited["A"] && res.Visited["B"] && res.Visited["X"] && res.Visited["Y"])
}

func TestDFS_UndirectedBacktrack(t *testing.T) {
	// A - B - C: undirected edges must not bounce back to the parent forever.
	g := graph.New[int]()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, res.Order)
}

func TestIterate_LazyOrderMatchesEager(t *testing.T) {
	g := graph.New[int](graph.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))
	require.NoError(t, g.AddEdge("A", "D", 0))

	eager, err := dfs.DFS(g, "A")
	require.NoError(t, err)

	it, err := dfs.Iterate(g, "A")
	require.NoError(t, err)
	lazy, err := iterator.Collect(it)
	require.NoError(t, err)

	require.Equal(t, eager.Order, lazy)
}

func TestIterate_InvalidatedByMutation(t *testing.T) {
	g := graph.New[int]()
	require.NoError(t, g.AddEdge("A", "B", 0))

	it, err := dfs.Iterate(g, "A")
	require.NoError(t, err)
	require.True(t, it.Next())

	require.NoError(t, g.RemoveEdge("A", "B"))

	require.False(t, it.Next())
	require.ErrorIs(t, it.Err(), iterator.ErrConcurrentModification)
}

func TestTopologicalSort_Linearizes(t *testing.T) {
	g := graph.New[int](graph.WithDirected(true))
	require.NoError(t, g.AddEdge("shirt", "tie", 0))
	require.NoError(t, g.AddEdge("tie", "jacket", 0))
	require.NoError(t, g.AddEdge("pants", "shoes", 0))
	require.NoError(t, g.AddEdge("pants", "jacket", 0))

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, 5)

	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	for _, e := range g.Edges() {
		require.Less(t, pos[e.From], pos[e.To], "edge %s→%s out of order", e.From, e.To)
	}
}

func TestTopologicalSort_CycleDetected(t *testing.T) {
	g := graph.New[int](graph.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))
	require.NoError(t, g.AddEdge("C", "A", 0))

	_, err := dfs.TopologicalSort(g)
	require.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestTopologicalSort_RequiresDirected(t *testing.T) {
	g := graph.New[int]()
	_, err := dfs.TopologicalSort(g)
	require.ErrorIs(t, err, dfs.ErrNotDirected)
}

func TestHasCycle(t *testing.T) {
	acyclic := graph.New[int](graph.WithDirected(true))
	require.NoError(t, acyclic.AddEdge("A", "B", 0))
	require.NoError(t, acyclic.AddEdge("B", "C", 0))
	require.NoError(t, acyclic.AddEdge("A", "C", 0)) // diamond shortcut, still a DAG

	got, err := dfs.HasCycle(acyclic)
	require.NoError(t, err)
	require.False(t, got)

	cyclic := graph.New[int](graph.WithDirected(true), graph.WithLoops())
	require.NoError(t, cyclic.AddEdge("A", "A", 0)) // self-loop is the smallest cycle

	got, err = dfs.HasCycle(cyclic)
	require.NoError(t, err)
	require.True(t, got)
}
