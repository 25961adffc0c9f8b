// SPDX-License-Identifier: MIT

// Package array - cursor iteration with odometer carry.
//
// A cursor pairs a linear walk over the flat buffer with a multi-index that
// advances in lock-step. After each element is pulled, the multi-index is
// incremented like a mixed-radix counter: dimension 0 first, carrying into
// dimension 1 on overflow, and so on. Exhaustion is decided by the buffer,
// never by the counter, which is why the last dimension may run past its
// extent after the final element.
//
// Ordering guarantee:
//   - The k-th yielded coordinate is the multi-index whose offset is k, the
//     same order New/NewBy/NewByEnumeration populate the buffer in.
//
// Complexity:
//   - Next: amortized O(1) carry work, plus O(D) to copy the coordinate out.

package array

import (
	"fmt"
	"iter"
	"slices"
)

// odometer tracks the coordinate of the next element to be yielded.
type odometer struct {
	extents []int // read-only
	coord   []int
}

// newOdometer starts a counter at all zeros.
// Rank 0 is a programmer error here: constructors already reject it.
func newOdometer(extents []int) odometer {
	if len(extents) == 0 {
		panic(fmt.Errorf("array: cursor over zero dimensions: %w", ErrZeroRank))
	}

	return odometer{extents: extents, coord: make([]int, len(extents))}
}

// advance increments the coordinate by one element with carry propagation.
func (o *odometer) advance() {
	last := len(o.coord) - 1
	for d := 0; d < last; d++ {
		o.coord[d]++
		if o.coord[d] < o.extents[d] {
			return
		}
		o.coord[d] = 0
	}
	// The last dimension never wraps; the buffer bounds the walk.
	o.coord[last]++
}

// linear is a one-shot forward walk over a flat buffer.
type linear[T any] struct {
	buf []T
	pos int
}

// next returns a pointer to the next element, or ok=false once exhausted.
func (l *linear[T]) next() (*T, bool) {
	if l.pos >= len(l.buf) {
		return nil, false
	}
	p := &l.buf[l.pos]
	l.pos++

	return p, true
}

// Iter is a read-only cursor yielding (coordinate, value) pairs.
// It is one-shot: once Next reports false it never yields again.
type Iter[T any] struct {
	inner linear[T]
	odo   odometer
	done  bool
}

// Next returns the coordinate and value of the next cell.
// The coordinate slice is freshly allocated and owned by the caller.
func (it *Iter[T]) Next() (coord []int, value T, ok bool) {
	if it.done {
		return nil, value, false
	}
	p, ok := it.inner.next()
	if !ok {
		it.done = true
		return nil, value, false
	}
	coord = slices.Clone(it.odo.coord)
	it.odo.advance()

	return coord, *p, true
}

// Remaining reports how many cells are left to yield.
func (it *Iter[T]) Remaining() int {
	if it.done {
		return 0
	}

	return len(it.inner.buf) - it.inner.pos
}

// IterMut is the mutating cursor: it yields a pointer to each cell so the
// caller can update it in place. Same ordering and exhaustion rules as Iter.
type IterMut[T any] struct {
	inner linear[T]
	odo   odometer
	done  bool
}

// Next returns the coordinate of the next cell and a pointer into the buffer.
func (it *IterMut[T]) Next() (coord []int, ptr *T, ok bool) {
	if it.done {
		return nil, nil, false
	}
	p, ok := it.inner.next()
	if !ok {
		it.done = true
		return nil, nil, false
	}
	coord = slices.Clone(it.odo.coord)
	it.odo.advance()

	return coord, p, true
}

// Remaining reports how many cells are left to yield.
func (it *IterMut[T]) Remaining() int {
	if it.done {
		return 0
	}

	return len(it.inner.buf) - it.inner.pos
}

// mustLive panics when a cursor is requested on a released array.
func (a *Array[T]) mustLive(method string) {
	if a.released {
		panic(fmt.Errorf("Array.%s: %w", method, ErrReleased))
	}
}

// Iter starts a read-only cursor at coordinate (0, ..., 0).
// Panics with ErrReleased on a released array.
func (a *Array[T]) Iter() *Iter[T] {
	a.mustLive("Iter")

	return &Iter[T]{
		inner: linear[T]{buf: a.data},
		odo:   newOdometer(a.extents),
	}
}

// IterMut starts a mutating cursor at coordinate (0, ..., 0).
// The array must not be accessed through other means while the cursor's
// pointers are being written.
func (a *Array[T]) IterMut() *IterMut[T] {
	a.mustLive("IterMut")

	return &IterMut[T]{
		inner: linear[T]{buf: a.data},
		odo:   newOdometer(a.extents),
	}
}

// All returns a range-over-func sequence of (coordinate, value) pairs:
//
//	for coord, v := range a.All() { ... }
//
// Each call starts a fresh cursor; breaking out of the loop is allowed.
func (a *Array[T]) All() iter.Seq2[[]int, T] {
	return func(yield func([]int, T) bool) {
		it := a.Iter()
		for {
			coord, v, ok := it.Next()
			if !ok || !yield(coord, v) {
				return
			}
		}
	}
}

// AllMut is the mutating form of All, yielding pointers into the buffer.
func (a *Array[T]) AllMut() iter.Seq2[[]int, *T] {
	return func(yield func([]int, *T) bool) {
		it := a.IterMut()
		for {
			coord, p, ok := it.Next()
			if !ok || !yield(coord, p) {
				return
			}
		}
	}
}

// Entry is one (coordinate, value) pair of an eager listing.
type Entry[T any] struct {
	Index []int
	Value T
}

// EntryRef is one (coordinate, pointer) pair of an eager mutable listing.
type EntryRef[T any] struct {
	Index []int
	Ref   *T
}

// Entries lists every cell eagerly, in storage order.
// Coordinates come from Unravel (div/mod), independent of the cursor.
func (a *Array[T]) Entries() []Entry[T] {
	a.mustLive("Entries")

	out := make([]Entry[T], len(a.data))
	for i, v := range a.data {
		out[i] = Entry[T]{Index: Unravel(a.extents, i), Value: v}
	}

	return out
}

// EntriesMut lists a pointer to every cell eagerly, in storage order.
func (a *Array[T]) EntriesMut() []EntryRef[T] {
	a.mustLive("EntriesMut")

	out := make([]EntryRef[T], len(a.data))
	for i := range a.data {
		out[i] = EntryRef[T]{Index: Unravel(a.extents, i), Ref: &a.data[i]}
	}

	return out
}
