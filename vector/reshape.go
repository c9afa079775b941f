// File: vector/reshape.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// In-place structural edits: reversal, rotation, gap insertion and range
// removal.

package vector

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/momentics/hiovec/api"
	"github.com/momentics/hiovec/internal/normalize"
)

func (v *Vector[T]) reverseSpan(lo, hi int) {
	for l, r := lo, hi-1; l < r; l, r = l+1, r-1 {
		v.items[l], v.items[r] = v.items[r], v.items[l]
	}
}

// Reverse reverses the order of all items.
func (v *Vector[T]) Reverse() *Vector[T] {
	v.reverseSpan(0, v.length)
	return v
}

// ReverseSection reverses [index1, index2). index1 must address an item and
// index2 must lie within [0, Len()]; an inverted section is a no-op.
func (v *Vector[T]) ReverseSection(index1, index2 int) error {
	lo, hi, ok := normalize.StrictSection(v.length, index1, index2)
	if !ok {
		return errors.Wrapf(api.ErrOutOfRange, "reverse [%d, %d) of %d", index1, index2, v.length)
	}
	v.reverseSpan(lo, hi)
	return nil
}

// Rotate moves every item k places to the right, wrapping around; negative k
// rotates left.
func (v *Vector[T]) Rotate(k int) *Vector[T] {
	n := v.length
	if n == 0 {
		return v
	}
	k %= n
	if k < 0 {
		k += n
	}
	if k == 0 {
		return v
	}
	v.reverseSpan(0, n)
	v.reverseSpan(0, k)
	v.reverseSpan(k, n)
	return v
}

// Shift edits the sequence at index (which may equal Len()).
//
// For n > 0 it opens a gap of n zero-valued slots at index, moving the items
// from index onwards n places right and growing storage if needed; a failed
// growth leaves the vector untouched. For n < 0 it destructs and removes
// min(-n, Len()-index) items starting at index and closes the gap. n == 0 is
// a no-op.
func (v *Vector[T]) Shift(index, n int) error {
	if n == 0 {
		return nil
	}
	off := normalize.Offset(v.length, index)
	if !normalize.Bound(v.length, off) {
		return errors.Wrapf(api.ErrOutOfRange, "shift at %d of %d", index, v.length)
	}
	if n > 0 {
		return v.openGap(off, n)
	}
	m := v.length - off
	if n > -m {
		m = -n
	}
	v.closeGap(off, m)
	return nil
}

func (v *Vector[T]) openGap(off, n int) error {
	old := v.length
	if n > math.MaxInt-old {
		return errors.Wrapf(api.ErrAllocFailed, "gap of %d after %d items", n, old)
	}
	if err := v.reserve(old + n); err != nil {
		return err
	}
	copy(v.items[off+n:], v.items[off:old])
	clear(v.items[off : off+n])
	v.length = old + n
	return nil
}

func (v *Vector[T]) closeGap(off, m int) {
	if v.destroy != nil {
		for _, item := range v.items[off : off+m] {
			v.destroy(item)
		}
	}
	copy(v.items[off:], v.items[off+m:v.length])
	v.vacate(v.length-m, v.length)
	v.length -= m
}

// Discard destructs and removes up to n items from the tail and returns how
// many were removed.
func (v *Vector[T]) Discard(n int) int {
	n = min(max(n, 0), v.length)
	v.truncate(v.length - n)
	return n
}

// Clear destructs and removes every item. Capacity is kept.
func (v *Vector[T]) Clear() *Vector[T] {
	v.truncate(0)
	return v
}

// DestroyItem runs the destructor, if any, on item. item need not belong to
// the vector.
func (v *Vector[T]) DestroyItem(item T) *Vector[T] {
	if v.destroy != nil {
		v.destroy(item)
	}
	return v
}
