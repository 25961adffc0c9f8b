// SPDX-License-Identifier: MIT
// Package alloc: sentinel error set.
// Strategies return these sentinels (optionally wrapped with %w); callers
// match them with errors.Is.

package alloc

import "errors"

var (
	// ErrInvalidSize is returned when a negative element count is requested.
	ErrInvalidSize = errors.New("alloc: invalid size")

	// ErrExhausted indicates that a bounded strategy (Arena) has no room left
	// for the requested element count.
	ErrExhausted = errors.New("alloc: capacity exhausted")

	// ErrInvalidCapacity is returned by constructors given a non-positive capacity.
	ErrInvalidCapacity = errors.New("alloc: capacity must be > 0")
)
