package array_test

import (
	"testing"

	"github.com/katalvlaran/ndarray/alloc"
	"github.com/katalvlaran/ndarray/array"
	"github.com/stretchr/testify/require"
)

// TestWithAllocatorNilPanics: a nil strategy is a programmer error.
func TestWithAllocatorNilPanics(t *testing.T) {
	require.PanicsWithValue(t, "array: WithAllocator: allocator must not be nil", func() {
		array.WithAllocator[int](nil)
	})
}

// TestOptionsLastWins: later options override earlier ones; nil options are skipped.
func TestOptionsLastWins(t *testing.T) {
	first := alloc.NewPool[int](1)
	second := alloc.NewPool[int](1)

	a, err := array.New[int]([]int{3}, array.WithAllocator[int](first), nil, array.WithAllocator[int](second))
	require.NoError(t, err)
	a.Release()

	require.Equal(t, 0, first.Cached())
	require.Equal(t, 1, second.Cached())
}

// TestAllocatorDoesNotAffectLayout: same constructor, different strategies,
// identical arrays.
func TestAllocatorDoesNotAffectLayout(t *testing.T) {
	arena, err := alloc.NewArena[int](64)
	require.NoError(t, err)
	fill := func(i int) int { return i * 7 }

	onHeap, err := array.NewByEnumeration([]int{4, 2, 3}, fill)
	require.NoError(t, err)
	onPool, err := array.NewByEnumeration([]int{4, 2, 3}, fill, array.WithAllocator[int](alloc.NewPool[int](0)))
	require.NoError(t, err)
	onArena, err := array.NewByEnumeration([]int{4, 2, 3}, fill, array.WithAllocator[int](arena))
	require.NoError(t, err)

	require.True(t, array.Equal(onHeap, onPool))
	require.True(t, array.Equal(onHeap, onArena))

	var a, b [][]int
	for c := range onHeap.All() {
		a = append(a, c)
	}
	for c := range onArena.All() {
		b = append(b, c)
	}
	require.Equal(t, a, b)
}
