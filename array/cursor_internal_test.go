package array

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestOdometerCarry walks a 2×3×2 counter and checks every carry.
func TestOdometerCarry(t *testing.T) {
	o := newOdometer([]int{2, 3, 2})
	want := [][]int{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}, {0, 2, 0}, {1, 2, 0},
		{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1}, {0, 2, 1}, {1, 2, 1},
	}
	for i, w := range want {
		require.Equal(t, w, o.coord, "step %d", i)
		o.advance()
	}
	// Past the end only the last dimension moves on; the buffer stops the walk.
	require.Equal(t, []int{0, 0, 2}, o.coord)
}

// TestOdometerRank1 checks the degenerate single-dimension counter.
func TestOdometerRank1(t *testing.T) {
	o := newOdometer([]int{3})
	for i := 0; i < 5; i++ {
		require.Equal(t, []int{i}, o.coord)
		o.advance()
	}
}

// TestOdometerUnitExtents: extents of 1 always carry immediately.
func TestOdometerUnitExtents(t *testing.T) {
	o := newOdometer([]int{1, 2, 1})
	o.advance()
	require.Equal(t, []int{0, 1, 0}, o.coord)
	o.advance()
	require.Equal(t, []int{0, 0, 1}, o.coord)
}

// TestOdometerZeroRank: a cursor over zero dimensions is rejected up front.
func TestOdometerZeroRank(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		require.True(t, errors.Is(err, ErrZeroRank))
	}()
	newOdometer(nil)
}

// TestLinearNext checks the one-shot buffer walk.
func TestLinearNext(t *testing.T) {
	l := linear[int]{buf: []int{4, 5}}
	p, ok := l.next()
	require.True(t, ok)
	require.Equal(t, 4, *p)
	p, ok = l.next()
	require.True(t, ok)
	require.Equal(t, 5, *p)
	_, ok = l.next()
	require.False(t, ok)
}
