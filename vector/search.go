// File: vector/search.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vector

import (
	"slices"

	"github.com/momentics/hiovec/internal/normalize"
)

// NotFound is returned by the search functions when nothing matches.
const NotFound = -1

// LinearSearch returns the index of the first item equal to item, or
// NotFound.
func (v *Vector[T]) LinearSearch(item T) int {
	return v.LinearSearchSection(item, 0, v.length)
}

// LinearSearchSection searches [index1, index2), clamped, and returns an
// absolute index or NotFound.
func (v *Vector[T]) LinearSearchSection(item T, index1, index2 int) int {
	lo, hi := normalize.Section(v.length, index1, index2)
	for i := lo; i < hi; i++ {
		if v.cmp(item, v.items[i]) == 0 {
			return i
		}
	}
	return NotFound
}

// BinarySearch returns the index of some item equal to item, or NotFound.
// The vector must be sorted by its comparator; this is not checked.
func (v *Vector[T]) BinarySearch(item T) int {
	lo, hi := 0, v.length
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := v.cmp(v.items[mid], item); {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid
		default:
			return mid
		}
	}
	return NotFound
}

// Contains reports whether an item equal to item is present, by binary
// search when sorted is true and linear search otherwise.
func (v *Vector[T]) Contains(item T, sorted bool) bool {
	if sorted {
		return v.BinarySearch(item) != NotFound
	}
	return v.LinearSearch(item) != NotFound
}

// IsSorted reports whether the items are in non-decreasing order.
func (v *Vector[T]) IsSorted() bool {
	for i := 1; i < v.length; i++ {
		if v.cmp(v.items[i-1], v.items[i]) > 0 {
			return false
		}
	}
	return true
}

// Sort orders the items by the comparator. The sort is not stable.
func (v *Vector[T]) Sort() *Vector[T] {
	return v.SortSection(0, v.length)
}

// SortSection sorts [index1, index2), clamped.
func (v *Vector[T]) SortSection(index1, index2 int) *Vector[T] {
	lo, hi := normalize.Section(v.length, index1, index2)
	if hi-lo > 1 {
		slices.SortFunc(v.items[lo:hi], v.cmp)
	}
	return v
}
