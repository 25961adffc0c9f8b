// SPDX-License-Identifier: MIT

// Package array - element access.
//
// Three accessor families share one address mapping:
//   - Recoverable: At, Ptr, Set, CheckedOffset return errors, never panic.
//   - Fatal-by-contract: MustAt, MustSet, Elem behave like an indexing
//     operator and panic with *IndexError on an out-of-range index.
//   - Unchecked: UncheckedAt, UncheckedPtr skip every per-dimension check.

package array

import (
	"errors"
	"fmt"
)

// CheckedOffset validates index against the array shape and returns its flat offset.
//
// Implementation:
//   - Stage 1: reject released arrays and len(index) != D.
//   - Stage 2: per-dimension check 0 <= index[i] < extents[i]; the first
//     offending dimension is reported as *IndexError (1-based Dim).
//   - Stage 3: accumulate index[i]*strides[i].
//
// Errors:
//   - ErrReleased, ErrRankMismatch, *IndexError (matches ErrOutOfRange).
//
// Complexity:
//   - Time O(D), Space O(1).
func (a *Array[T]) CheckedOffset(index ...int) (int, error) {
	if a.released {
		return 0, ErrReleased
	}
	if len(index) != len(a.extents) {
		return 0, fmt.Errorf("got %d indices for rank %d: %w", len(index), len(a.extents), ErrRankMismatch)
	}

	off := 0
	for i, v := range index {
		if v < 0 || v >= a.extents[i] {
			return 0, &IndexError{Dim: i + 1, Extent: a.extents[i], Value: v}
		}
		off += v * a.strides[i]
	}

	return off, nil
}

// Offset computes the flat offset of index without any validation.
// It is the standalone address mapping: Offset(a.Strides(), index).
func (a *Array[T]) Offset(index ...int) int {
	return Offset(a.strides, index)
}

// InBounds reports whether index addresses a cell of a.
func (a *Array[T]) InBounds(index ...int) bool {
	_, err := a.CheckedOffset(index...)

	return err == nil
}

// At returns the value at index.
//
// Errors:
//   - ErrReleased, ErrRankMismatch, ErrOutOfRange (via *IndexError), wrapped
//     with the method and index.
func (a *Array[T]) At(index ...int) (T, error) {
	off, err := a.CheckedOffset(index...)
	if err != nil {
		var zero T
		return zero, arrayErrorf(ctxAt, index, err)
	}

	return a.data[off], nil
}

// Ptr returns a pointer to the cell at index, for in-place mutation.
// The pointer stays valid until the array is released.
func (a *Array[T]) Ptr(index ...int) (*T, error) {
	off, err := a.CheckedOffset(index...)
	if err != nil {
		return nil, arrayErrorf(ctxPtr, index, err)
	}

	return &a.data[off], nil
}

// Set stores v at index.
func (a *Array[T]) Set(v T, index ...int) error {
	off, err := a.CheckedOffset(index...)
	if err != nil {
		return arrayErrorf(ctxSet, index, err)
	}
	a.data[off] = v

	return nil
}

// mustOffset is the panicking twin of CheckedOffset.
// An out-of-range index panics with the bare *IndexError so its message is
// exactly "array: index of dimension d is out of bounds: ..."; rank and
// released misuse panic with a wrapped sentinel.
func (a *Array[T]) mustOffset(method string, index []int) int {
	off, err := a.CheckedOffset(index...)
	if err != nil {
		var ie *IndexError
		if errors.As(err, &ie) {
			panic(ie)
		}
		panic(arrayErrorf(method, index, err))
	}

	return off
}

// MustAt is the read side of the indexing operator.
// It panics with *IndexError naming the 1-based dimension, its extent and the
// supplied value when index is out of range.
func (a *Array[T]) MustAt(index ...int) T {
	return a.data[a.mustOffset(ctxMust, index)]
}

// MustSet is the write side of the indexing operator; it panics like MustAt.
func (a *Array[T]) MustSet(v T, index ...int) {
	a.data[a.mustOffset(ctxMustSet, index)] = v
}

// Elem returns a pointer to the cell at index and panics like MustAt.
// Use it for read-modify-write: *a.Elem(x, y) += 1.
func (a *Array[T]) Elem(index ...int) *T {
	return &a.data[a.mustOffset(ctxElem, index)]
}

// UncheckedAt returns the value at index without per-dimension checks.
//
// Precondition (caller's responsibility):
//   - len(index) == Rank() and 0 <= index[i] < Size()[i] for every i.
//
// Violations are not clamped or wrapped: an index outside its dimension
// silently addresses another cell when the flat offset still lands inside the
// buffer, and panics with a runtime bounds error when it does not.
func (a *Array[T]) UncheckedAt(index ...int) T {
	return a.data[Offset(a.strides, index)]
}

// UncheckedPtr is the pointer form of UncheckedAt, with the same precondition.
func (a *Array[T]) UncheckedPtr(index ...int) *T {
	return &a.data[Offset(a.strides, index)]
}
