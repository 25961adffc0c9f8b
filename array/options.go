// SPDX-License-Identifier: MIT

// Package array: functional configuration for array construction.
// This file defines:
//   - Option[T] (functional options over an unexported options[T]),
//   - documented defaults,
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// The allocator is the only construction-time option. It decides where the
// flat buffer comes from and where Release sends it; it never affects
// addressing or iteration order.

package array

import "github.com/katalvlaran/ndarray/alloc"

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicAllocatorNil = "array: WithAllocator: allocator must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option[T any] func(*options[T])

// options stores the effective configuration after applying Option setters.
type options[T any] struct {
	allocator alloc.Allocator[T] // default: alloc.Heap[T]{}
}

// WithAllocator selects the buffer allocation strategy.
//
// Behavior highlights:
//   - Panics when a is nil (programmer error).
//   - The array keeps a and hands its buffer back on Release.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithAllocator[T any](a alloc.Allocator[T]) Option[T] {
	if a == nil {
		panic(panicAllocatorNil)
	}

	return func(o *options[T]) { o.allocator = a }
}

// defaultOptions returns the zero-configuration options (heap allocation).
func defaultOptions[T any]() options[T] {
	return options[T]{allocator: alloc.Heap[T]{}}
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions[T any](opts ...Option[T]) options[T] {
	o := defaultOptions[T]()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
