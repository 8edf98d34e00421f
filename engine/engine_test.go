package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zdcount/zdcount/engine"
	"github.com/zdcount/zdcount/pgraph"
	"github.com/zdcount/zdcount/polyhedra"
)

func TestRun_Phase4Only(t *testing.T) {
	g := pgraph.New([][2]int{{0, 1}, {1, 2}, {0, 2}})

	result, err := engine.Run(g, "triangle.txt")
	require.NoError(t, err)
	require.Equal(t, "triangle.txt", result.InputFile)
	require.Equal(t, 3, result.Vertices)
	require.Equal(t, 3, result.Edges)
	require.Equal(t, "3", result.Phase4.SpanningTreeCount)
	require.Nil(t, result.Phase5)
	require.Nil(t, result.Phase6)
}

func TestRun_WithMOPEFilter(t *testing.T) {
	g := pgraph.New([][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})

	result, err := engine.Run(g, "square.txt", engine.WithMOPEs([][]int{{0, 1, 2, 3}}))
	require.NoError(t, err)
	require.Equal(t, "4", result.Phase4.SpanningTreeCount)
	require.NotNil(t, result.Phase5)
	require.True(t, result.Phase5.FilterApplied)
	require.Equal(t, 1, result.Phase5.NumMopes)
}

func TestRun_WithAutomorphisms(t *testing.T) {
	g := pgraph.New([][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})

	perms := [][]int{{0, 1, 2, 3}, {1, 2, 3, 0}}
	result, err := engine.Run(g, "square.txt", engine.WithAutomorphisms(2, perms, nil))
	require.NoError(t, err)
	require.NotNil(t, result.Phase6)
	require.True(t, result.Phase6.BurnsideApplied)
	require.Equal(t, "4", result.Phase6.BurnsideSum)
	require.Equal(t, "2", result.Phase6.NonisomorphicCount)
}

func TestRun_Partitioned_MatchesUnpartitioned(t *testing.T) {
	edges := [][2]int{
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
	}
	g := pgraph.New(edges)

	flat, err := engine.Run(g, "k4.txt")
	require.NoError(t, err)

	split, err := engine.Run(g, "k4.txt", engine.WithSplitDepth(2))
	require.NoError(t, err)

	require.Equal(t, flat.Phase4.SpanningTreeCount, split.Phase4.SpanningTreeCount)
	require.NotNil(t, split.SplitDepth)
	require.Equal(t, 2, *split.SplitDepth)
}

func TestRun_TetrahedronMatchesCayleyFormula(t *testing.T) {
	g, err := polyhedra.Graph(polyhedra.Tetrahedron)
	require.NoError(t, err)

	result, err := engine.Run(g, "tetrahedron.txt")
	require.NoError(t, err)
	require.Equal(t, "16", result.Phase4.SpanningTreeCount)
}

func TestRun_DisconnectedGraphShortCircuits(t *testing.T) {
	g := pgraph.New([][2]int{{0, 1}, {2, 3}})

	result, err := engine.Run(g, "disconnected.txt", engine.WithMOPEs([][]int{{0}}))
	require.NoError(t, err)
	require.Equal(t, "0", result.Phase4.SpanningTreeCount)
	require.Equal(t, "0", result.Phase5.NonOverlappingCount)
}

func TestRun_AutomorphismsWithoutGroupOrder(t *testing.T) {
	g := pgraph.New([][2]int{{0, 1}, {1, 2}, {0, 2}})

	_, err := engine.Run(g, "triangle.txt", engine.WithAutomorphisms(0, [][]int{{0, 1, 2}}, nil))
	require.ErrorIs(t, err, engine.ErrAutomorphismsWithoutGroupOrder)
}
