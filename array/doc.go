// SPDX-License-Identifier: MIT

// Package array provides Array[T], a dense array of fixed rank D backed by a
// single flat buffer.
//
// 🚀 What is it?
//
//	A container whose shape (extents) is fixed at construction, addressed by a
//	multi-index in O(D):
//
//		offset(index) = Σ index[i] * strides[i],  strides[0] = 1,
//		strides[i]    = strides[i-1] * extents[i-1]
//
//	Dimension 0 varies fastest in memory. For a 2-D array of extents [W, H],
//	cell (x, y) lives at x + y*W.
//
// Access families:
//
//   - At / Ptr / Set / CheckedOffset — recoverable: return errors
//     (ErrOutOfRange via *IndexError, ErrRankMismatch, ErrReleased).
//   - MustAt / MustSet / Elem — the indexing operator: panic with *IndexError,
//     e.g. "array: index of dimension 2 is out of bounds: 0..4 does not contain 7".
//   - UncheckedAt / UncheckedPtr — skip the per-dimension checks; the caller
//     guarantees the precondition.
//
// Iteration:
//
//	Iter/IterMut are one-shot cursors yielding (coordinate, element) pairs in
//	storage order; All/AllMut expose them as range-over-func sequences:
//
//		a, _ := array.NewWith([]int{5, 4}, 0)
//		for c, p := range a.AllMut() {
//			if c[0] == 1 {
//				*p += c[1]
//			}
//		}
//
// Construction:
//
//	New (zero values), NewWith (copies of one value), NewBy (supplier),
//	NewByEnumeration (supplier of the flat index), FromFlat (adopt a buffer).
//	IntoFlattened gives the buffer back. WithAllocator plugs a strategy from
//	package alloc.
//
// Concurrency:
//
//	Arrays carry no locks. Concurrent readers are fine; any writer needs
//	external synchronization.
package array
