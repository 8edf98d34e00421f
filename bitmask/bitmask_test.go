// Package bitmask_test exercises both Mask implementations through the
// shared Factory entry point, so the same table drives the narrow and
// wide code paths.
package bitmask_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zdcount/zdcount/bitmask"
)

// ------------------------------------------------------------------------
// 1. Dispatch: width selection and the unsupported-width boundary.
// ------------------------------------------------------------------------

func TestNewFactory_Dispatch(t *testing.T) {
	cases := []struct {
		name      string
		e         int
		wantWidth int
		wantErr   error
	}{
		{"tiny", 3, 64, nil},
		{"exact64", 64, 64, nil},
		{"just over 64", 65, 128, nil},
		{"exact448", 448, 448, nil},
		{"too wide", 449, 0, bitmask.ErrUnsupportedWidth},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := bitmask.NewFactory(tc.e)
			if tc.wantErr != nil {
				require.True(t, errors.Is(err, tc.wantErr))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantWidth, f.Width())
		})
	}
}

// ------------------------------------------------------------------------
// 2. Algebra: OrAssign/AndAssign/Not/And/Equal/IsZero/Bit, both widths.
// ------------------------------------------------------------------------

func TestMask_Algebra(t *testing.T) {
	for _, e := range []int{10, 200} { // narrow (word64) and wide
		f, err := bitmask.NewFactory(e)
		require.NoError(t, err)

		z := f.Zero()
		require.True(t, z.IsZero())

		b3 := z.Bit(3)
		b5 := z.Bit(5)
		require.False(t, b3.IsZero())

		union := z.Clone()
		union.OrAssign(b3)
		union.OrAssign(b5)
		require.False(t, union.IsZero())

		inter := union.Clone()
		inter.AndAssign(b3)
		require.True(t, inter.Equal(b3))

		and := union.And(b5)
		require.True(t, and.Equal(b5))

		notB3 := b3.Not()
		require.False(t, notB3.Equal(b3))

		// Bit ^ Bit.Not() spans the whole width; AND of the two is zero.
		back := notB3.And(b3)
		require.True(t, back.IsZero())
	}
}

func TestMask_BitOutOfRange(t *testing.T) {
	f, err := bitmask.NewFactory(10)
	require.NoError(t, err)
	z := f.Zero()
	require.True(t, z.Bit(-1).IsZero())
	require.True(t, z.Bit(1000).IsZero())
}

func TestMask_CloneIsIndependent(t *testing.T) {
	f, err := bitmask.NewFactory(200)
	require.NoError(t, err)
	a := f.Zero().Bit(150)
	b := a.Clone()
	b.AndAssign(f.Zero())
	require.False(t, a.IsZero())
	require.True(t, b.IsZero())
}
