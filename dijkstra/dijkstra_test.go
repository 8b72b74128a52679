package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcoll/dijkstra"
	"github.com/katalvlaran/lvlcoll/graph"
)

func weighted(opts ...graph.Option) *graph.Graph[int] {
	return graph.New[int](append([]graph.Option{graph.WithWeighted(), graph.WithDirected(true)}, opts...)...)
}

// TestShortestPath_Triangle checks that the cheap detour beats the
// direct edge: A→B(1), B→C(2) against A→C(5).
func TestShortestPath_Triangle(t *testing.T) {
	g := weighted()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 5))

	path, weight, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, path)
	require.Equal(t, int64(3), weight)
}

func TestShortestPath_Validation(t *testing.T) {
	_, _, err := dijkstra.ShortestPath[int](nil, "A", "B")
	require.ErrorIs(t, err, dijkstra.ErrGraphNil)

	unweighted := graph.New[int](graph.WithDirected(true))
	require.NoError(t, unweighted.AddEdge("A", "B", 0))
	_, _, err = dijkstra.ShortestPath(unweighted, "A", "B")
	require.ErrorIs(t, err, dijkstra.ErrUnweightedGraph)

	g := weighted()
	require.NoError(t, g.AddEdge("A", "B", 1))
	_, _, err = dijkstra.ShortestPath(g, "missing", "B")
	require.ErrorIs(t, err, dijkstra.ErrNodeNotFound)
	_, _, err = dijkstra.ShortestPath(g, "A", "missing")
	require.ErrorIs(t, err, dijkstra.ErrNodeNotFound)

	_, _, err = dijkstra.ShortestPath(g, "A", "B", dijkstra.WithMaxDistance(-1))
	require.ErrorIs(t, err, dijkstra.ErrOptionViolation)
}

func TestShortestPath_NegativeWeightFailsFast(t *testing.T) {
	g := weighted()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", -2))

	_, _, err := dijkstra.ShortestPath(g, "A", "C")
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := weighted()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddNode("island", 0))

	_, _, err := dijkstra.ShortestPath(g, "A", "island")
	require.ErrorIs(t, err, dijkstra.ErrUnreachable)

	// Directed edges do not run backwards.
	_, _, err = dijkstra.ShortestPath(g, "B", "A")
	require.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

func TestShortestPath_SourceEqualsDestination(t *testing.T) {
	g := weighted()
	require.NoError(t, g.AddEdge("A", "B", 1))

	path, weight, err := dijkstra.ShortestPath(g, "A", "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, path)
	require.Equal(t, int64(0), weight)
}

func TestShortestPath_Undirected(t *testing.T) {
	g := graph.New[int](graph.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 4))
	require.NoError(t, g.AddEdge("B", "C", 1))

	// The undirected edge carries traffic both ways.
	path, weight, err := dijkstra.ShortestPath(g, "C", "A")
	require.NoError(t, err)
	require.Equal(t, []string{"C", "B", "A"}, path)
	require.Equal(t, int64(5), weight)
}

func TestDistances_AllTargets(t *testing.T) {
	g := weighted()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 4))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("C", "D", 1))
	require.NoError(t, g.AddNode("island", 0))

	dist, prev, err := dijkstra.Distances(g, "A")
	require.NoError(t, err)

	require.Equal(t, int64(0), dist["A"])
	require.Equal(t, int64(1), dist["B"])
	require.Equal(t, int64(3), dist["C"])
	require.Equal(t, int64(4), dist["D"])
	require.Equal(t, dijkstra.Unreachable, dist["island"])

	require.Equal(t, "B", prev["C"])
	require.Equal(t, "C", prev["D"])
	_, hasIsland := prev["island"]
	require.False(t, hasIsland)
}

func TestDistances_MaxDistanceBoundsSearch(t *testing.T) {
	g := weighted()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	dist, _, err := dijkstra.Distances(g, "A", dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	require.Equal(t, int64(2), dist["C"])
	require.Equal(t, dijkstra.Unreachable, dist["D"], "nodes beyond the cap stay unsettled")
}

// TestShortestPath_RelaxUsesStrictImprovement pins tie-breaking: with
// two equal-cost routes the first-inserted edge wins.
func TestShortestPath_RelaxUsesStrictImprovement(t *testing.T) {
	g := weighted()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("B", "D", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	path, weight, err := dijkstra.ShortestPath(g, "A", "D")
	require.NoError(t, err)
	require.Equal(t, int64(2), weight)
	require.Equal(t, []string{"A", "B", "D"}, path)
}

func TestShortestPath_ZeroWeightEdges(t *testing.T) {
	g := weighted()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))

	path, weight, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, path)
	require.Equal(t, int64(0), weight)
}
