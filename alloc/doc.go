// SPDX-License-Identifier: MIT

// Package alloc provides pluggable buffer allocation strategies for the
// flat storage behind array.Array.
//
// A strategy decides where the flat []T buffer comes from and what happens
// to it when the owning array is released. It never affects addressing or
// iteration order: an array built on Pool or Arena is element-for-element
// identical to one built on Heap.
//
// Strategies:
//   - Heap  — the default; make([]T, n), release is left to the GC.
//   - Pool  — reuses released buffers of the same length (clears them first).
//   - Arena — append-only bump allocation out of one fixed slab.
//
// All strategies are safe for concurrent use. The arrays built on top of
// them are not; see package array.
package alloc
