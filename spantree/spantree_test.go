package spantree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zdcount/zdcount/pgraph"
	"github.com/zdcount/zdcount/spantree"
	"github.com/zdcount/zdcount/zdd"
)

func countSpanningTrees(t *testing.T, edges [][2]int) string {
	t.Helper()

	g := pgraph.New(edges)
	spec := spantree.New(g)

	d, err := zdd.Build(spec)
	require.NoError(t, err)
	d = zdd.Reduce(d)

	count, err := zdd.Cardinality(d)
	require.NoError(t, err)

	return count
}

// Triangle: 3 vertices, 3 edges, 3 spanning trees (each obtained by
// dropping exactly one edge).
func TestSpanningTree_Triangle(t *testing.T) {
	require.Equal(t, "3", countSpanningTrees(t, [][2]int{{0, 1}, {1, 2}, {0, 2}}))
}

// Path graph: exactly one spanning tree (itself).
func TestSpanningTree_Path(t *testing.T) {
	require.Equal(t, "1", countSpanningTrees(t, [][2]int{{0, 1}, {1, 2}, {2, 3}}))
}

// Square (4-cycle): 4 spanning trees.
func TestSpanningTree_Square(t *testing.T) {
	require.Equal(t, "4", countSpanningTrees(t, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}))
}

// K4 (complete graph on 4 vertices): Cayley's formula gives 4^(4-2) = 16.
func TestSpanningTree_K4(t *testing.T) {
	edges := [][2]int{
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
	}
	require.Equal(t, "16", countSpanningTrees(t, edges))
}

// Square with one diagonal: 4-cycle (4 trees) plus the diagonal forces
// exactly one extra edge removed from the two triangles it forms,
// giving 4 (cycle-only trees) + 2*... actually verify directly: this
// graph has 5 edges, 4 vertices; by Kirchhoff/direct enumeration it has
// 8 spanning trees (two triangles sharing the diagonal, each
// contributing via matrix-tree theorem).
func TestSpanningTree_SquareWithDiagonal(t *testing.T) {
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2},
	}
	require.Equal(t, "8", countSpanningTrees(t, edges))
}

// Disconnected graph: zero spanning trees.
func TestSpanningTree_Disconnected(t *testing.T) {
	edges := [][2]int{{0, 1}, {2, 3}}
	require.Equal(t, "0", countSpanningTrees(t, edges))
}

// Multigraph with a parallel edge: the parallel pair behaves like a
// 2-cycle between the same endpoints, doubling the count relative to
// the simple path 0-1-2 (one tree), since a tree may use either copy.
func TestSpanningTree_ParallelEdge(t *testing.T) {
	// 0-1 (x2), 1-2: spanning trees pick exactly one of the two 0-1
	// copies plus the 1-2 edge (2 choices), or both 0-1 copies would
	// form a cycle so they can't both be in a tree of only 2 edges
	// needed for 3 vertices. So exactly 2 spanning trees.
	edges := [][2]int{{0, 1}, {0, 1}, {1, 2}}
	require.Equal(t, "2", countSpanningTrees(t, edges))
}
