// SPDX-License-Identifier: MIT
// Package array: sentinel error set.
// Recoverable paths (At/Ptr/Set/FromFlat/constructors) return these sentinels,
// possibly wrapped with context; tests and callers match them via errors.Is.
// The fatal-by-contract indexing path (MustAt/MustSet/Elem) panics with an
// *IndexError, which also unwraps to ErrOutOfRange.

package array

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroRank is returned when an array is requested with no dimensions.
	ErrZeroRank = errors.New("array: rank must be > 0")

	// ErrInvalidExtent indicates a dimension extent that is not positive.
	ErrInvalidExtent = errors.New("array: extents must be > 0")

	// ErrSizeOverflow indicates that the product of extents does not fit in an int.
	ErrSizeOverflow = errors.New("array: size overflows int")

	// ErrLengthMismatch is returned by FromFlat when len(buf) != product(extents).
	ErrLengthMismatch = errors.New("array: buffer length does not match extents")

	// ErrRankMismatch indicates a multi-index whose length differs from the array rank.
	ErrRankMismatch = errors.New("array: index rank mismatch")

	// ErrOutOfRange indicates that some index[i] is outside 0..extents[i].
	ErrOutOfRange = errors.New("array: index out of range")

	// ErrReleased is returned when an array is used after Release or IntoFlattened.
	ErrReleased = errors.New("array: use of released array")
)

// IndexError describes the first offending dimension of a multi-index.
// Dim is 1-based, matching the message users see.
type IndexError struct {
	Dim    int // 1-based dimension number
	Extent int // declared extent of that dimension
	Value  int // supplied index value
}

// Error implements error.
func (e *IndexError) Error() string {
	return fmt.Sprintf("array: index of dimension %d is out of bounds: 0..%d does not contain %d",
		e.Dim, e.Extent, e.Value)
}

// Unwrap lets errors.Is(err, ErrOutOfRange) match.
func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// arrayErrorf wraps err with the method name and the offending multi-index.
func arrayErrorf(method string, index []int, err error) error {
	return fmt.Errorf("Array.%s(%v): %w", method, index, err)
}
