package array_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ndarray/array"
	"github.com/stretchr/testify/require"
)

// TestStrides verifies the first-dimension-fastest stride formula.
func TestStrides(t *testing.T) {
	cases := []struct {
		name    string
		extents []int
		want    []int
	}{
		{"1D", []int{7}, []int{1}},
		{"2D", []int{5, 4}, []int{1, 5}},
		{"3D", []int{3, 4, 2}, []int{1, 3, 12}},
		{"unit dims", []int{1, 6, 1, 2}, []int{1, 1, 6, 6}},
		{"empty", []int{}, []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, array.Strides(tc.extents))
		})
	}
}

// TestSizeValidation covers rank, extent and overflow rejection.
func TestSizeValidation(t *testing.T) {
	n, err := array.Size([]int{5, 4, 3})
	require.NoError(t, err)
	require.Equal(t, 60, n)

	_, err = array.Size(nil)
	require.ErrorIs(t, err, array.ErrZeroRank)

	_, err = array.Size([]int{3, 0})
	require.ErrorIs(t, err, array.ErrInvalidExtent)

	_, err = array.Size([]int{-1})
	require.ErrorIs(t, err, array.ErrInvalidExtent)

	_, err = array.Size([]int{math.MaxInt, 2})
	require.ErrorIs(t, err, array.ErrSizeOverflow)

	n, err = array.Size([]int{math.MaxInt, 1})
	require.NoError(t, err) // exact fit is not an overflow
	require.Equal(t, math.MaxInt, n)
}

// TestOffsetBijection checks that Offset maps the valid multi-indices one-to-one
// onto 0..N-1, and that Unravel is its inverse.
func TestOffsetBijection(t *testing.T) {
	shapes := [][]int{{1}, {9}, {5, 4}, {3, 4, 2}, {2, 1, 3, 2}}
	for _, extents := range shapes {
		n, err := array.Size(extents)
		require.NoError(t, err)
		strides := array.Strides(extents)

		seen := make(map[int]bool, n)
		for k := 0; k < n; k++ {
			idx := array.Unravel(extents, k)
			for i, v := range idx {
				require.GreaterOrEqual(t, v, 0)
				require.Less(t, v, extents[i])
			}
			off := array.Offset(strides, idx)
			require.Equal(t, k, off, "extents %v index %v", extents, idx)
			require.False(t, seen[off], "offset %d produced twice", off)
			seen[off] = true
		}
		require.Len(t, seen, n)
	}
}

// TestOffsetIsPure documents that Offset performs no validation.
func TestOffsetIsPure(t *testing.T) {
	strides := array.Strides([]int{5, 4})
	// out of dimension, still computed
	require.Equal(t, 5, array.Offset(strides, []int{5, 0}))
	// shorter index: prefix only
	require.Equal(t, 3, array.Offset(strides, []int{3}))
	// extra entries ignored
	require.Equal(t, 8, array.Offset(strides, []int{3, 1, 9}))
}
