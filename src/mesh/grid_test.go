package mesh

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGridAtSet(t *testing.T) {
	g := NewGrid(3, 4)
	require.Equal(t, 3, g.Rows())
	require.Equal(t, 4, g.Cols())

	id := 0
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			g.Set(i, j, id)
			id++
		}
	}
	require.Equal(t, 0, g.At(0, 0))
	require.Equal(t, 7, g.At(1, 3))
	require.Equal(t, 11, g.At(2, 3))
}

func TestGridBounds(t *testing.T) {
	g := NewGrid(2, 3)
	for idx, tc := range []struct {
		row, col int
		in       bool
	}{
		{0, 0, true},
		{1, 2, true},
		{-1, 0, false},
		{0, -1, false},
		{2, 0, false},
		{0, 3, false},
	} {
		t.Run(fmt.Sprintf("%d/(%d,%d)", idx, tc.row, tc.col), func(t *testing.T) {
			require.Equal(t, tc.in, g.InBounds(tc.row, tc.col))
			if !tc.in {
				require.Panics(t, func() { g.At(tc.row, tc.col) })
				require.Panics(t, func() { g.Set(tc.row, tc.col, 0) })
			}
		})
	}
}

func TestGridEmpty(t *testing.T) {
	g := NewGrid(0, 5)
	require.Equal(t, 0, g.Rows())
	require.Equal(t, 5, g.Cols())
	require.False(t, g.InBounds(0, 0))
	require.Panics(t, func() { NewGrid(-1, 2) })
}
