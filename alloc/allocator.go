// SPDX-License-Identifier: MIT

package alloc

import (
	"fmt"
	"sync"
)

// Allocator obtains and releases flat element buffers.
//
// Contract:
//   - Allocate(n) returns a slice with len == n whose elements hold the zero
//     value of T, or an error (ErrInvalidSize, ErrExhausted, ...).
//   - Release(buf) hands a buffer previously returned by Allocate back to the
//     strategy. The caller must not touch buf afterwards.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Release(buf []T)
}

// Stats contains allocation statistics, counted in elements (not bytes).
type Stats struct {
	Allocations  uint64 // number of successful Allocate calls
	Reuses       uint64 // allocations served from released buffers
	Releases     uint64 // number of Release calls accepted
	LiveElems    uint64 // elements handed out and not yet released
	LargestAlloc uint64 // largest single allocation
}

// record updates counters for one allocation of n elements.
func (s *Stats) record(n int, reused bool) {
	s.Allocations++
	if reused {
		s.Reuses++
	}
	s.LiveElems += uint64(n)
	if uint64(n) > s.LargestAlloc {
		s.LargestAlloc = uint64(n)
	}
}

// ---------- Heap ----------

// Heap is the default strategy: a fresh make([]T, n) per call.
// The zero value is ready to use.
type Heap[T any] struct{}

var _ Allocator[int] = Heap[int]{}

// Allocate returns make([]T, n).
func (Heap[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("Heap.Allocate(%d): %w", n, ErrInvalidSize)
	}

	return make([]T, n), nil
}

// Release is a no-op; the garbage collector reclaims the buffer.
func (Heap[T]) Release([]T) {}

// ---------- Pool ----------

// DefaultPoolMaxPerSize bounds how many released buffers of one length a Pool keeps.
const DefaultPoolMaxPerSize = 8

// Pool recycles released buffers keyed by their exact length.
//
// Buffers are cleared on reuse, so Allocate always observes zero values.
// At most maxPerSize buffers per length are retained; extra releases are
// dropped for the GC.
type Pool[T any] struct {
	mu         sync.Mutex
	free       map[int][][]T
	maxPerSize int
	stats      Stats
}

var _ Allocator[int] = (*Pool[int])(nil)

// NewPool creates a Pool retaining at most maxPerSize buffers per length.
// maxPerSize <= 0 selects DefaultPoolMaxPerSize.
func NewPool[T any](maxPerSize int) *Pool[T] {
	if maxPerSize <= 0 {
		maxPerSize = DefaultPoolMaxPerSize
	}

	return &Pool[T]{
		free:       make(map[int][][]T),
		maxPerSize: maxPerSize,
	}
}

// Allocate returns a recycled buffer of length n when one is available,
// otherwise a fresh one.
func (p *Pool[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("Pool.Allocate(%d): %w", n, ErrInvalidSize)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if bucket := p.free[n]; len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		bucket[len(bucket)-1] = nil
		p.free[n] = bucket[:len(bucket)-1]
		clear(buf)
		p.stats.record(n, true)

		return buf, nil
	}
	p.stats.record(n, false)

	return make([]T, n), nil
}

// Release keeps buf for a later Allocate of the same length.
func (p *Pool[T]) Release(buf []T) {
	if buf == nil {
		return
	}
	n := len(buf)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.stats.Releases++
	if p.stats.LiveElems >= uint64(n) {
		p.stats.LiveElems -= uint64(n)
	}
	if len(p.free[n]) >= p.maxPerSize {
		return
	}
	// Full-capacity slice: a recycled buffer never exposes a caller's extra capacity.
	p.free[n] = append(p.free[n], buf[:n:n])
}

// Stats returns a snapshot of the pool counters.
func (p *Pool[T]) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.stats
}

// Cached reports how many released buffers are currently retained.
func (p *Pool[T]) Cached() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	total := 0
	for _, bucket := range p.free {
		total += len(bucket)
	}

	return total
}

// ---------- Arena ----------

// Arena hands out consecutive windows of one preallocated slab.
//
// Allocation is append-only: Release does not reclaim space, only Reset
// does. Windows are capped at their own length (three-index slicing), so an
// append on one buffer can never spill into its neighbour.
type Arena[T any] struct {
	mu    sync.Mutex
	slab  []T
	off   int
	stats Stats
}

var _ Allocator[int] = (*Arena[int])(nil)

// NewArena creates an Arena with room for capacity elements.
func NewArena[T any](capacity int) (*Arena[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("NewArena(%d): %w", capacity, ErrInvalidCapacity)
	}

	return &Arena[T]{slab: make([]T, capacity)}, nil
}

// Allocate carves the next n elements out of the slab.
func (a *Arena[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("Arena.Allocate(%d): %w", n, ErrInvalidSize)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if n > len(a.slab)-a.off {
		return nil, fmt.Errorf("Arena.Allocate(%d): %d of %d used: %w", n, a.off, len(a.slab), ErrExhausted)
	}
	buf := a.slab[a.off : a.off+n : a.off+n]
	a.off += n
	a.stats.record(n, false)

	return buf, nil
}

// Release only updates statistics; space comes back on Reset.
func (a *Arena[T]) Release(buf []T) {
	if buf == nil {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.stats.Releases++
	if a.stats.LiveElems >= uint64(len(buf)) {
		a.stats.LiveElems -= uint64(len(buf))
	}
}

// Reset zeroes the slab and rewinds the allocation offset.
// Every buffer handed out before Reset must be out of use.
func (a *Arena[T]) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	clear(a.slab[:a.off])
	a.off = 0
	a.stats.LiveElems = 0
}

// Used reports how many elements have been handed out since the last Reset.
func (a *Arena[T]) Used() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.off
}

// Cap reports the slab capacity in elements.
func (a *Arena[T]) Cap() int { return len(a.slab) }

// Stats returns a snapshot of the arena counters.
func (a *Arena[T]) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.stats
}
