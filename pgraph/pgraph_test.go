package pgraph_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zdcount/zdcount/pgraph"
)

// ------------------------------------------------------------------------
// 1. ReadGraph: happy path and derived V/E.
// ------------------------------------------------------------------------

func TestReadGraph_Triangle(t *testing.T) {
	g, err := pgraph.ReadGraph(strings.NewReader("0 1\n1 2\n2 0\n"))
	require.NoError(t, err)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
	u, v := g.Endpoints(0)
	require.Equal(t, 0, u)
	require.Equal(t, 1, v)
}

func TestReadGraph_SkipsBlankLines(t *testing.T) {
	g, err := pgraph.ReadGraph(strings.NewReader("0 1\n\n1 2\n"))
	require.NoError(t, err)
	require.Equal(t, 2, g.EdgeCount())
}

func TestReadGraph_ParallelEdges(t *testing.T) {
	// Single-edge multigraph from spec.md §8 boundary behavior.
	g, err := pgraph.ReadGraph(strings.NewReader("0 1\n0 1\n"))
	require.NoError(t, err)
	require.Equal(t, 2, g.VertexCount())
	require.Equal(t, 2, g.EdgeCount())
}

// ------------------------------------------------------------------------
// 2. ReadGraph: error paths.
// ------------------------------------------------------------------------

func TestReadGraph_Empty(t *testing.T) {
	_, err := pgraph.ReadGraph(strings.NewReader(""))
	require.True(t, errors.Is(err, pgraph.ErrEmptyGraph))
}

func TestReadGraph_MalformedLine(t *testing.T) {
	_, err := pgraph.ReadGraph(strings.NewReader("0 1 2\n"))
	require.True(t, errors.Is(err, pgraph.ErrMalformedLine))
}

func TestReadGraph_NonNumeric(t *testing.T) {
	_, err := pgraph.ReadGraph(strings.NewReader("a b\n"))
	require.True(t, errors.Is(err, pgraph.ErrMalformedLine))
}

func TestReadGraph_NegativeVertex(t *testing.T) {
	_, err := pgraph.ReadGraph(strings.NewReader("-1 2\n"))
	require.True(t, errors.Is(err, pgraph.ErrNegativeVertex))
}

// ------------------------------------------------------------------------
// 3. New: in-memory construction used by other packages' tests.
// ------------------------------------------------------------------------

func TestNew_PathGraph(t *testing.T) {
	// P_4 from spec.md S4: V=4, E=3.
	g := pgraph.New([][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
}

// ------------------------------------------------------------------------
// 4. IsConnected.
// ------------------------------------------------------------------------

func TestIsConnected_Triangle(t *testing.T) {
	g := pgraph.New([][2]int{{0, 1}, {1, 2}, {2, 0}})
	require.True(t, g.IsConnected())
}

func TestIsConnected_TwoComponents(t *testing.T) {
	g := pgraph.New([][2]int{{0, 1}, {2, 3}})
	require.False(t, g.IsConnected())
}

func TestIsConnected_SingleVertex(t *testing.T) {
	g := pgraph.New([][2]int{{0, 0}})
	require.True(t, g.IsConnected())
}
