// Package ndarray is a small toolkit for dense, fixed-rank N-dimensional
// arrays stored in one flat contiguous buffer.
//
// Under the hood, everything is organized under subpackages:
//
//	array/           — Array[T]: construction, strided addressing, checked /
//	                   panicking / unchecked accessors, odometer cursors
//	alloc/           — pluggable buffer strategies: Heap, Pool, Arena
//	internal/config/ — YAML scenarios for the demo CLI
//	cmd/ndarray/     — demo CLI: indexing, iterators, speed
//
// Quick ASCII example, a 3×2 array (dimension 0 fastest):
//
//	          x=0 x=1 x=2
//	    y=0 [  0   1   2 ]
//	    y=1 [  3   4   5 ]     flat buffer: 0 1 2 3 4 5
//
//	go get github.com/katalvlaran/ndarray/array
package ndarray
