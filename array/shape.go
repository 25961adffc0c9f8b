// SPDX-License-Identifier: MIT

// Package array - shape arithmetic: extents validation, strides and offsets.
//
// Layout:
//   - First-dimension-fastest: strides[0] = 1, strides[i] = strides[i-1]*extents[i-1].
//   - offset(index) = Σ index[i]*strides[i].
//
// Overflow policy:
//   - The total size is computed with checked multiplication; a product that
//     does not fit in int is rejected with ErrSizeOverflow before any
//     allocation. Every stride is bounded by the total size, so once the size
//     is valid no stride or in-range offset can overflow.

package array

import (
	"fmt"
	"math"
)

// checkedMul returns a*b or ok=false when the product overflows int.
// Both operands must be positive.
func checkedMul(a, b int) (int, bool) {
	if a > math.MaxInt/b {
		return 0, false
	}

	return a * b, true
}

// validateExtents checks rank and extents and returns the total element count.
//
// Errors:
//   - ErrZeroRank when len(extents) == 0.
//   - ErrInvalidExtent when some extent is <= 0.
//   - ErrSizeOverflow when the product does not fit in int.
//
// Complexity:
//   - Time O(D), Space O(1).
func validateExtents(extents []int) (int, error) {
	if len(extents) == 0 {
		return 0, ErrZeroRank
	}

	n := 1
	var ok bool
	for i, e := range extents {
		if e <= 0 {
			return 0, fmt.Errorf("dimension %d has extent %d: %w", i+1, e, ErrInvalidExtent)
		}
		if n, ok = checkedMul(n, e); !ok {
			return 0, fmt.Errorf("extents %v: %w", extents, ErrSizeOverflow)
		}
	}

	return n, nil
}

// Size returns the product of extents, validated like the constructors do.
func Size(extents []int) (int, error) {
	return validateExtents(extents)
}

// Strides computes first-dimension-fastest strides for extents.
//
// The caller is expected to pass extents that passed validation; for
// arbitrary input use Size first. An empty extents yields an empty result.
//
// Complexity:
//   - Time O(D), Space O(D).
func Strides(extents []int) []int {
	strides := make([]int, len(extents))
	if len(extents) == 0 {
		return strides
	}
	strides[0] = 1
	for i := 1; i < len(extents); i++ {
		strides[i] = strides[i-1] * extents[i-1]
	}

	return strides
}

// Offset computes Σ index[i]*strides[i] with no validation at all.
//
// This is the pure address mapping: it does not check len(index) against
// len(strides) beyond iterating the shorter of the two, and it does not
// check per-dimension bounds. Use Array.CheckedOffset for a validated offset.
//
// Complexity:
//   - Time O(D), Space O(1).
func Offset(strides, index []int) int {
	n := min(len(strides), len(index))
	off := 0
	for i := 0; i < n; i++ {
		off += index[i] * strides[i]
	}

	return off
}

// Unravel is the inverse of Offset for valid offsets: it decomposes a flat
// offset into a multi-index by repeated div/mod over extents.
//
// Preconditions:
//   - 0 <= offset < product(extents); extents valid.
//
// Complexity:
//   - Time O(D), Space O(D).
func Unravel(extents []int, offset int) []int {
	index := make([]int, len(extents))
	for i, e := range extents {
		index[i] = offset % e
		offset /= e
	}

	return index
}
