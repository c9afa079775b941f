// File: vector/copy.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Copies, slices and transfers between vectors. Derived vectors share the
// comparator, context, allocator, pool and logger of their source but never
// the destructor: two vectors holding the same items must not both clean
// them up.

package vector

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/momentics/hiovec/api"
	"github.com/momentics/hiovec/internal/normalize"
)

// derive creates an empty owned sibling with room for n items.
func (v *Vector[T]) derive(n int) (*Vector[T], error) {
	st, err := newOwned(n, v.alloc, v.pool)
	if err != nil {
		v.log.Debug("derived vector refused", zap.Int("want", max(1, n)), zap.Error(err))
		return nil, err
	}
	return &Vector[T]{
		store:   st,
		items:   st.slots(),
		cmp:     v.cmp,
		context: v.context,
		alloc:   v.alloc,
		pool:    v.pool,
		log:     v.log,
	}, nil
}

// Copy returns an owned copy sized to Len() (at least one slot). The
// destructor is not copied.
func (v *Vector[T]) Copy() (*Vector[T], error) {
	return v.Slice(0, v.length)
}

// Slice returns an owned copy of [index1, index2), clamped to the vector.
// The destructor is not copied.
func (v *Vector[T]) Slice(index1, index2 int) (*Vector[T], error) {
	lo, hi := normalize.Section(v.length, index1, index2)
	out, err := v.derive(hi - lo)
	if err != nil {
		return nil, errors.Wrapf(err, "slice [%d, %d)", index1, index2)
	}
	out.length = copy(out.items, v.items[lo:hi])
	return out, nil
}

// RSlice is Slice with the copied items in reverse order.
func (v *Vector[T]) RSlice(index1, index2 int) (*Vector[T], error) {
	out, err := v.Slice(index1, index2)
	if err != nil {
		return nil, errors.Wrap(err, "rslice")
	}
	return out.Reverse(), nil
}

// Extend moves every item of other onto the tail of v and leaves other
// empty. Nothing is destructed. Extending a vector with itself is a no-op.
func (v *Vector[T]) Extend(other *Vector[T]) error {
	if other == v {
		return nil
	}
	n := other.length
	if err := v.reserve(v.length + n); err != nil {
		return errors.Wrap(err, "extend")
	}
	copy(v.items[v.length:], other.items[:n])
	v.length += n
	other.vacate(0, n)
	other.length = 0
	return nil
}

// Concat copies every item of other onto the tail of v; other is left
// untouched. other may be v itself.
func (v *Vector[T]) Concat(other *Vector[T]) error {
	n := other.length
	if err := v.reserve(v.length + n); err != nil {
		return errors.Wrap(err, "concat")
	}
	// other.items is read after reserve: for v == other it is the new buffer.
	copy(v.items[v.length:v.length+n], other.items[:n])
	v.length += n
	return nil
}

// reserve grows capacity to exactly n when it is smaller. A negative n is a
// length sum that overflowed.
func (v *Vector[T]) reserve(n int) error {
	if n < 0 {
		return errors.Wrap(api.ErrAllocFailed, "length overflows int")
	}
	if n <= len(v.items) {
		return nil
	}
	return v.setCapacity(n)
}
