// File: vector/functional.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Higher-order passes over the items: map, filter, partition, traversal and
// aggregate queries.

package vector

import (
	"github.com/cockroachdb/errors"

	"github.com/momentics/hiovec/api"
	"github.com/momentics/hiovec/internal/normalize"
)

// Map replaces every item with fn(item). Nothing is destructed.
func (v *Vector[T]) Map(fn api.Transform[T]) *Vector[T] {
	for i, item := range v.items[:v.length] {
		v.items[i] = fn(item)
	}
	return v
}

// Filter keeps the items satisfying keep, in order, and destructs the rest.
func (v *Vector[T]) Filter(keep api.Predicate[T]) *Vector[T] {
	n := 0
	for _, item := range v.items[:v.length] {
		if keep(item) {
			v.items[n] = item
			n++
		} else if v.destroy != nil {
			v.destroy(item)
		}
	}
	v.vacate(n, v.length)
	v.length = n
	return v
}

// Partition keeps the items satisfying keep at the front of v and moves the
// others, in their original order, into a new vector that inherits v's
// destructor. On allocation failure v is untouched.
func (v *Vector[T]) Partition(keep api.Predicate[T]) (*Vector[T], error) {
	rest, err := v.derive(v.length)
	if err != nil {
		return nil, errors.Wrap(err, "partition")
	}
	rest.destroy = v.destroy
	n := 0
	for _, item := range v.items[:v.length] {
		if keep(item) {
			v.items[n] = item
			n++
		} else {
			rest.items[rest.length] = item
			rest.length++
		}
	}
	v.vacate(n, v.length)
	v.length = n
	return rest, nil
}

// Foreach calls fn on each item from first to last until fn returns false.
func (v *Vector[T]) Foreach(fn api.Visitor[T]) *Vector[T] {
	for i := 0; i < v.length; i++ {
		if !fn(v.items[i], i) {
			break
		}
	}
	return v
}

// RForeach calls fn on each item from last to first until fn returns false.
func (v *Vector[T]) RForeach(fn api.Visitor[T]) *Vector[T] {
	for i := v.length - 1; i >= 0; i-- {
		if !fn(v.items[i], i) {
			break
		}
	}
	return v
}

// ForSection is Foreach restricted to [index1, index2), clamped.
func (v *Vector[T]) ForSection(fn api.Visitor[T], index1, index2 int) *Vector[T] {
	lo, hi := normalize.Section(v.length, index1, index2)
	for i := lo; i < hi; i++ {
		if !fn(v.items[i], i) {
			break
		}
	}
	return v
}

// Any reports whether some item satisfies pred. False when empty.
func (v *Vector[T]) Any(pred api.Predicate[T]) bool {
	for _, item := range v.items[:v.length] {
		if pred(item) {
			return true
		}
	}
	return false
}

// All reports whether every item satisfies pred. True when empty.
func (v *Vector[T]) All(pred api.Predicate[T]) bool {
	for _, item := range v.items[:v.length] {
		if !pred(item) {
			return false
		}
	}
	return true
}

// Count returns how many items compare equal to item.
func (v *Vector[T]) Count(item T) int {
	n := 0
	for _, it := range v.items[:v.length] {
		if v.cmp(item, it) == 0 {
			n++
		}
	}
	return n
}

// Equal reports whether both vectors hold the same number of items and every
// pair compares equal under v's comparator.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if other == nil || v.length != other.length {
		return false
	}
	for i := 0; i < v.length; i++ {
		if v.cmp(v.items[i], other.items[i]) != 0 {
			return false
		}
	}
	return true
}

// Max returns the greatest item, the first one on ties.
func (v *Vector[T]) Max() (T, bool) {
	return v.extreme(1)
}

// Min returns the least item, the first one on ties.
func (v *Vector[T]) Min() (T, bool) {
	return v.extreme(-1)
}

func (v *Vector[T]) extreme(sign int) (T, bool) {
	if v.length == 0 {
		var zero T
		return zero, false
	}
	best := v.items[0]
	for _, item := range v.items[1:v.length] {
		if v.cmp(item, best)*sign > 0 {
			best = item
		}
	}
	return best, true
}
