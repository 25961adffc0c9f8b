// SPDX-License-Identifier: MIT

// Package array - Array storage: construction, ownership and the flat buffer.
//
// Purpose:
//   - Own one contiguous buffer of length product(extents), addressed by
//     first-dimension-fastest strides.
//   - Keep the rank and extents immutable for the array's lifetime.
//   - Hand the buffer out zero-copy (AsFlattened, IntoFlattened) and adopt one
//     zero-copy (FromFlat).
//
// Complexity quicksheet:
//   - New*/Clone: O(N); FromFlat/IntoFlattened/AsFlattened: O(D) or O(1).

package array

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/ndarray/alloc"
)

// ---------- error context tags ----------

const (
	ctxNew     = "New"
	ctxFrom    = "FromFlat"
	ctxClone   = "Clone"
	ctxAt      = "At"
	ctxPtr     = "Ptr"
	ctxSet     = "Set"
	ctxMust    = "MustAt"
	ctxMustSet = "MustSet"
	ctxElem    = "Elem"
)

// Array is a dense D-dimensional array of T over a single flat buffer.
//
// Invariants (observable after any constructor returns successfully):
//   - len(extents) == len(strides) == D >= 1 and every extent > 0.
//   - len(data) == product(extents).
//   - strides[0] == 1, strides[i] == strides[i-1]*extents[i-1].
//
// An Array is not safe for concurrent mutation; synchronize externally.
type Array[T any] struct {
	extents  []int
	strides  []int
	data     []T
	alloc    alloc.Allocator[T]
	released bool
}

var _ fmt.Stringer = (*Array[int])(nil)

// newArray validates extents and obtains a zero-valued buffer from the
// configured allocator. All filling constructors start here.
func newArray[T any](extents []int, opts []Option[T]) (*Array[T], error) {
	n, err := validateExtents(extents)
	if err != nil {
		return nil, fmt.Errorf("Array.%s: %w", ctxNew, err)
	}
	o := gatherOptions(opts...)

	buf, err := o.allocator.Allocate(n)
	if err != nil {
		return nil, fmt.Errorf("Array.%s(%v): %w", ctxNew, extents, err)
	}
	ext := slices.Clone(extents)

	return &Array[T]{
		extents: ext,
		strides: Strides(ext),
		data:    buf,
		alloc:   o.allocator,
	}, nil
}

// New creates an array whose every cell holds the zero value of T.
//
// Errors:
//   - ErrZeroRank, ErrInvalidExtent, ErrSizeOverflow (shape contract).
//   - Any allocator error (e.g. alloc.ErrExhausted), wrapped.
//
// Complexity:
//   - Time O(N), Space O(N).
func New[T any](extents []int, opts ...Option[T]) (*Array[T], error) {
	return newArray(extents, opts)
}

// NewWith creates an array whose every cell is a copy of value.
// The copy is a Go assignment: for T holding pointers, slices or maps every
// cell shares the referenced data.
func NewWith[T any](extents []int, value T, opts ...Option[T]) (*Array[T], error) {
	a, err := newArray(extents, opts)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = value
	}

	return a, nil
}

// NewBy creates an array by calling supplier once per cell in flat order.
func NewBy[T any](extents []int, supplier func() T, opts ...Option[T]) (*Array[T], error) {
	a, err := newArray(extents, opts)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = supplier()
	}

	return a, nil
}

// NewByEnumeration creates an array by calling supplier with each flat index
// 0..N-1 in increasing order. Unravel(extents, i) recovers the coordinate.
func NewByEnumeration[T any](extents []int, supplier func(int) T, opts ...Option[T]) (*Array[T], error) {
	a, err := newArray(extents, opts)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = supplier(i)
	}

	return a, nil
}

// FromFlat reinterprets buf as an array with the given extents, without copying.
//
// The array takes ownership of buf: the caller must not keep using it except
// through the array. With WithAllocator, buf must have come from that
// allocator, since Release hands it back there.
//
// Errors:
//   - shape errors as for New.
//   - ErrLengthMismatch when len(buf) != product(extents).
func FromFlat[T any](buf []T, extents []int, opts ...Option[T]) (*Array[T], error) {
	n, err := validateExtents(extents)
	if err != nil {
		return nil, fmt.Errorf("Array.%s: %w", ctxFrom, err)
	}
	if len(buf) != n {
		return nil, fmt.Errorf("Array.%s: len %d, extents %v want %d: %w", ctxFrom, len(buf), extents, n, ErrLengthMismatch)
	}
	o := gatherOptions(opts...)
	ext := slices.Clone(extents)

	return &Array[T]{
		extents: ext,
		strides: Strides(ext),
		data:    buf,
		alloc:   o.allocator,
	}, nil
}

// IntoFlattened gives up the flat buffer, unchanged and uncopied, and leaves
// the array released. It is the inverse of FromFlat: ownership moves to the
// caller, so the buffer is NOT returned to the allocator.
//
// Calling it on an already released array returns nil.
func (a *Array[T]) IntoFlattened() []T {
	if a.released {
		return nil
	}
	buf := a.data
	a.markReleased()

	return buf
}

// AsFlattened exposes the underlying buffer in storage order, zero-copy.
// Writes through the returned slice are writes to the array.
// Returns nil for a released array.
func (a *Array[T]) AsFlattened() []T { return a.data }

// Release returns the buffer to the allocator and leaves the array unusable.
// Releasing twice is a no-op.
func (a *Array[T]) Release() {
	if a.released {
		return
	}
	a.alloc.Release(a.data)
	a.markReleased()
}

func (a *Array[T]) markReleased() {
	a.data = nil
	a.extents = nil
	a.strides = nil
	a.released = true
}

// Released reports whether Release or IntoFlattened has been called.
func (a *Array[T]) Released() bool { return a.released }

// Size returns a copy of the extents.
func (a *Array[T]) Size() []int { return slices.Clone(a.extents) }

// Strides returns a copy of the strides.
func (a *Array[T]) Strides() []int { return slices.Clone(a.strides) }

// Rank returns D, or 0 for a released array.
func (a *Array[T]) Rank() int { return len(a.extents) }

// Len returns the number of cells, product(extents).
func (a *Array[T]) Len() int { return len(a.data) }

// Fill overwrites every cell with v.
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Clone returns a deep copy of the buffer (shallow per element) obtained from
// the same allocator.
func (a *Array[T]) Clone() (*Array[T], error) {
	if a.released {
		return nil, fmt.Errorf("Array.%s: %w", ctxClone, ErrReleased)
	}
	buf, err := a.alloc.Allocate(len(a.data))
	if err != nil {
		return nil, fmt.Errorf("Array.%s: %w", ctxClone, err)
	}
	copy(buf, a.data)

	return &Array[T]{
		extents: slices.Clone(a.extents),
		strides: slices.Clone(a.strides),
		data:    buf,
		alloc:   a.alloc,
	}, nil
}

// String renders the extents and the flat buffer, e.g. "Array[2 2][1 2 3 4]".
// Intended for diagnostics, not for hot paths.
func (a *Array[T]) String() string {
	if a.released {
		return "Array(released)"
	}

	return fmt.Sprintf("Array%v%v", a.extents, a.data)
}

// Equal reports whether a and b have identical extents and identical cells
// in storage order. Released arrays are equal only to each other.
func Equal[T comparable](a, b *Array[T]) bool {
	if a.released || b.released {
		return a.released == b.released
	}

	return slices.Equal(a.extents, b.extents) && slices.Equal(a.data, b.data)
}
