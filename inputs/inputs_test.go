package inputs_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zdcount/zdcount/inputs"
)

func TestReadMOPEs_Basic(t *testing.T) {
	src := `{"edges":[0,1]}
{"edges":[2]}
`
	mopes, warnings, err := inputs.ReadMOPEs(strings.NewReader(src), 3)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Len(t, mopes, 2)
	require.Equal(t, []int{0, 1}, mopes[0].Edges)
	require.Equal(t, []int{2}, mopes[1].Edges)
}

func TestReadMOPEs_SkipsBlankLines(t *testing.T) {
	src := "{\"edges\":[0]}\n\n   \n{\"edges\":[1]}\n"
	mopes, warnings, err := inputs.ReadMOPEs(strings.NewReader(src), 2)
	require.NoError(t, err)
	require.Len(t, mopes, 2)
	require.NotEmpty(t, warnings)
}

func TestReadMOPEs_DeduplicatesAndWarns(t *testing.T) {
	mopes, warnings, err := inputs.ReadMOPEs(strings.NewReader(`{"edges":[0,0,1]}`), 2)
	require.NoError(t, err)
	require.Len(t, mopes, 1)
	require.Equal(t, []int{0, 1}, mopes[0].Edges)
	require.NotEmpty(t, warnings)
}

func TestReadMOPEs_OutOfRange(t *testing.T) {
	_, _, err := inputs.ReadMOPEs(strings.NewReader(`{"edges":[5]}`), 2)
	require.ErrorIs(t, err, inputs.ErrEdgeOutOfRange)
}

func TestReadMOPEs_Malformed(t *testing.T) {
	_, _, err := inputs.ReadMOPEs(strings.NewReader(`not json`), 2)
	require.ErrorIs(t, err, inputs.ErrMalformedMOPE)
}

func TestReadAutomorphisms_Basic(t *testing.T) {
	src := `{
  "group_order": 2,
  "edge_permutations": [[0,1,2],[1,2,0]],
  "zero_flags": [false, false]
}`
	auto, warnings, err := inputs.ReadAutomorphisms(strings.NewReader(src), 3)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, 2, auto.GroupOrder)
	require.Len(t, auto.EdgePermutations, 2)
	require.Equal(t, []bool{false, false}, auto.ZeroFlags)
}

func TestReadAutomorphisms_GroupOrderMismatchWarns(t *testing.T) {
	src := `{"group_order": 5, "edge_permutations": [[0,1],[1,0]]}`
	_, warnings, err := inputs.ReadAutomorphisms(strings.NewReader(src), 2)
	require.NoError(t, err)
	require.NotEmpty(t, warnings)
}

func TestReadAutomorphisms_MissingIdentity(t *testing.T) {
	src := `{"group_order": 1, "edge_permutations": [[1,0]]}`
	_, _, err := inputs.ReadAutomorphisms(strings.NewReader(src), 2)
	require.ErrorIs(t, err, inputs.ErrMissingIdentity)
}

func TestReadAutomorphisms_BadPermutationLength(t *testing.T) {
	src := `{"group_order": 1, "edge_permutations": [[0,1,2]]}`
	_, _, err := inputs.ReadAutomorphisms(strings.NewReader(src), 2)
	require.ErrorIs(t, err, inputs.ErrPermutationLength)
}
