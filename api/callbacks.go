// File: api/callbacks.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Capabilities injected into containers by the caller. None of them are
// implemented by the library itself except the default comparator.

package api

import "cmp"

// Comparator defines a total order over two items: negative when a < b,
// zero when equal, positive when a > b.
type Comparator[T any] func(a, b T) int

// Destructor releases whatever an item refers to. It is invoked at most once
// per item, and only when the item is irrevocably removed from a container.
type Destructor[T any] func(item T)

// Predicate selects items for filter, partition, any and all. Per-call user
// state is captured by the closure.
type Predicate[T any] func(item T) bool

// Transform replaces an item during map. Freeing the old item, if needed,
// is the transform's own business.
type Transform[T any] func(item T) T

// Visitor is called for each item during traversal together with its index.
// Returning false stops the traversal.
type Visitor[T any] func(item T, index int) bool

// Ordered returns the natural comparator for ordered types.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}
