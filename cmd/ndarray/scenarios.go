package main

import (
	"fmt"
	"io"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/katalvlaran/ndarray/alloc"
	"github.com/katalvlaran/ndarray/array"
	"github.com/katalvlaran/ndarray/internal/config"
)

// newAllocator maps a config allocator kind to a strategy.
func newAllocator(kind string, poolSize int) (alloc.Allocator[int], error) {
	switch kind {
	case config.AllocatorHeap:
		return alloc.Heap[int]{}, nil
	case config.AllocatorPool:
		return alloc.NewPool[int](poolSize), nil
	default:
		return nil, fmt.Errorf("%q: %w", kind, config.ErrUnknownAllocator)
	}
}

// printGrid writes the top-left w×h corner of a 2-D (or higher) array, one
// row of dimension 1 per line, trailing dimensions at 0.
func printGrid(w io.Writer, a *array.Array[int], width, height int) {
	size := a.Size()
	width = min(width, size[0])
	if len(size) > 1 {
		height = min(height, size[1])
	} else {
		height = 1
	}

	index := make([]int, len(size))
	for y := 0; y < height; y++ {
		if len(size) > 1 {
			index[1] = y
		}
		for x := 0; x < width; x++ {
			index[0] = x
			fmt.Fprint(w, a.MustAt(index...))
		}
		fmt.Fprintln(w)
	}
}

// runIndexing writes a 2×2 array through the indexing operator and prints it.
func runIndexing(w io.Writer, al alloc.Allocator[int]) error {
	a, err := array.NewWith([]int{2, 2}, 0, array.WithAllocator(al))
	if err != nil {
		return err
	}
	defer a.Release()

	a.MustSet(1, 0, 0)
	a.MustSet(2, 1, 0)
	a.MustSet(3, 0, 1)
	a.MustSet(4, 1, 1)
	printGrid(w, a, 2, 2)

	return nil
}

// runIterators adds coord[1] to every cell of column x == column of a 5×4
// array, echoing each visited cell, then prints the grid and flat buffer.
func runIterators(w io.Writer, al alloc.Allocator[int], column int) error {
	a, err := array.NewWith([]int{5, 4}, 0, array.WithAllocator(al))
	if err != nil {
		return err
	}
	defer a.Release()
	if column < 0 || column >= a.Size()[0] {
		return fmt.Errorf("column %d: %w", column, config.ErrBadColumn)
	}

	for c, p := range a.AllMut() {
		if c[0] != column {
			continue
		}
		fmt.Fprintf(w, "(%v, %d)\n", c, *p)
		*p += c[1]
	}
	printGrid(w, a, 5, 4)
	fmt.Fprintln(w, a.AsFlattened())

	return nil
}

// speedResult is what one speed run measured.
type speedResult struct {
	Trials []time.Duration
	Sum    int
}

// runSpeed times the filtered mutate pass over cfg.Extents, once per trial.
// Each trial allocates a fresh array and releases it, so a pool strategy
// recycles the buffer from the second trial on.
func runSpeed(w io.Writer, cfg *config.Config, al alloc.Allocator[int]) (speedResult, error) {
	var res speedResult
	for trial := 0; trial < cfg.Trials; trial++ {
		start := time.Now()
		a, err := array.NewWith(cfg.Extents, 0, array.WithAllocator(al))
		if err != nil {
			return res, err
		}
		for c, p := range a.AllMut() {
			if c[0] == cfg.Column {
				*p += c[1]
			}
		}
		elapsed := time.Since(start)
		res.Trials = append(res.Trials, elapsed)

		if trial == 0 {
			printGrid(w, a, 5, 4)
		}
		res.Sum = 0
		for _, v := range a.AsFlattened() {
			res.Sum += v
		}
		a.Release()

		fmt.Fprintf(w, "Took %dms.\n", elapsed.Milliseconds())
	}

	return res, nil
}

// plotTrials renders per-trial timings in milliseconds.
func plotTrials(trials []time.Duration) string {
	ms := make([]float64, len(trials))
	for i, d := range trials {
		ms[i] = float64(d.Microseconds()) / 1000
	}

	return asciigraph.Plot(ms, asciigraph.Height(10), asciigraph.Caption("trial time (ms)"))
}
