package polyhedra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zdcount/zdcount/polyhedra"
	"github.com/zdcount/zdcount/spantree"
	"github.com/zdcount/zdcount/zdd"
)

func TestGraph_VertexAndEdgeCounts(t *testing.T) {
	cases := []struct {
		name  polyhedra.Name
		verts int
		edges int
	}{
		{polyhedra.Tetrahedron, 4, 6},
		{polyhedra.Cube, 8, 12},
		{polyhedra.Octahedron, 6, 12},
		{polyhedra.Dodecahedron, 20, 30},
		{polyhedra.Icosahedron, 12, 30},
	}

	for _, c := range cases {
		g, err := polyhedra.Graph(c.name)
		require.NoError(t, err)
		require.Equal(t, c.verts, g.VertexCount(), c.name.String())
		require.Equal(t, c.edges, g.EdgeCount(), c.name.String())
	}
}

func TestGraph_UnknownSolid(t *testing.T) {
	_, err := polyhedra.Graph(polyhedra.Name(99))
	require.Error(t, err)
}

func countSpanningTrees(t *testing.T, name polyhedra.Name) string {
	t.Helper()
	g, err := polyhedra.Graph(name)
	require.NoError(t, err)

	d, err := zdd.Build(spantree.New(g))
	require.NoError(t, err)
	d = zdd.Reduce(d)

	count, err := zdd.Cardinality(d)
	require.NoError(t, err)

	return count
}

// Expected counts are cross-checked via Kirchhoff's matrix-tree theorem
// on each solid's Laplacian eigenvalues.
func TestSpanningTreeCount_Tetrahedron(t *testing.T) {
	require.Equal(t, "16", countSpanningTrees(t, polyhedra.Tetrahedron))
}

func TestSpanningTreeCount_Cube(t *testing.T) {
	require.Equal(t, "384", countSpanningTrees(t, polyhedra.Cube))
}

func TestSpanningTreeCount_Octahedron(t *testing.T) {
	require.Equal(t, "384", countSpanningTrees(t, polyhedra.Octahedron))
}

func TestSpanningTreeCount_LargeSolidsAreNonzero(t *testing.T) {
	require.NotEqual(t, "0", countSpanningTrees(t, polyhedra.Dodecahedron))
	require.NotEqual(t, "0", countSpanningTrees(t, polyhedra.Icosahedron))
}
