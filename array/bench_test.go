// Package array_test provides benchmarks for element access and cursor
// iteration over large 2-D arrays.
package array_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/ndarray/array"
)

// benchExtents are the shapes to benchmark.
var benchExtents = [][]int{{500, 400}, {5000, 400}}

// sinks to defeat dead-code elimination
var (
	sinkI int
	sinkA *array.Array[int]
)

func mustArray(b *testing.B, extents []int) *array.Array[int] {
	b.Helper()
	a, err := array.NewWith(extents, 0)
	if err != nil {
		b.Fatal(err)
	}

	return a
}

func BenchmarkNewWith(b *testing.B) {
	b.ReportAllocs()
	for _, ext := range benchExtents {
		b.Run(fmt.Sprintf("%dx%d", ext[0], ext[1]), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkA = mustArray(b, ext)
			}
		})
	}
}

// BenchmarkIterMutFilter mirrors the speed demo: mutate column x == 1.
func BenchmarkIterMutFilter(b *testing.B) {
	b.ReportAllocs()
	for _, ext := range benchExtents {
		b.Run(fmt.Sprintf("%dx%d", ext[0], ext[1]), func(b *testing.B) {
			a := mustArray(b, ext)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for c, p := range a.AllMut() {
					if c[0] == 1 {
						*p += c[1]
					}
				}
			}
		})
	}
}

func BenchmarkMustAt(b *testing.B) {
	for _, ext := range benchExtents {
		b.Run(fmt.Sprintf("%dx%d", ext[0], ext[1]), func(b *testing.B) {
			a := mustArray(b, ext)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s := 0
				for y := 0; y < ext[1]; y++ {
					for x := 0; x < ext[0]; x++ {
						s += a.MustAt(x, y)
					}
				}
				sinkI = s
			}
		})
	}
}

func BenchmarkUncheckedAt(b *testing.B) {
	for _, ext := range benchExtents {
		b.Run(fmt.Sprintf("%dx%d", ext[0], ext[1]), func(b *testing.B) {
			a := mustArray(b, ext)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s := 0
				for y := 0; y < ext[1]; y++ {
					for x := 0; x < ext[0]; x++ {
						s += a.UncheckedAt(x, y)
					}
				}
				sinkI = s
			}
		})
	}
}
