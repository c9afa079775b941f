// File: vector/vector.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Vector type, construction, destruction and single-item access.

package vector

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/momentics/hiovec/api"
	"github.com/momentics/hiovec/internal/normalize"
	"github.com/momentics/hiovec/pool"
)

// DefaultCapacity is the capacity New starts with.
const DefaultCapacity = 7

// Vector is a contiguous sequence of items. The zero value is not usable;
// construct with New, NewSized or Overlay.
type Vector[T any] struct {
	store  storage[T]
	items  []T // store.slots(), cached
	length int

	cmp     api.Comparator[T]
	destroy api.Destructor[T]
	context any
	locked  bool

	alloc api.Allocator
	pool  *pool.SlicePool[T]
	log   *zap.Logger
}

// New creates an owned vector with DefaultCapacity slots.
func New[T any](opts ...Option[T]) (*Vector[T], error) {
	return NewSized(DefaultCapacity, opts...)
}

// NewSized creates an owned vector with room for size items (at least one).
func NewSized[T any](size int, opts ...Option[T]) (*Vector[T], error) {
	v := blank[T](opts)
	st, err := newOwned(size, v.alloc, v.pool)
	if err != nil {
		v.log.Debug("vector allocation refused", zap.Int("want", max(1, size)), zap.Error(err))
		return nil, errors.Wrapf(err, "new vector of %d slots", size)
	}
	v.store = st
	v.items = st.slots()
	return v, nil
}

// Overlay wraps items without taking ownership. The first length slots are
// the contents (length is clamped into [0, len(items)]) and len(items) is the
// capacity ceiling. The overlay is locked for good: it never grows, and
// Destroy runs the destructor but leaves items to the caller.
func Overlay[T any](items []T, length int, opts ...Option[T]) *Vector[T] {
	v := blank[T](opts)
	v.store = &borrowedBuffer[T]{buf: items}
	v.items = items
	v.length = normalize.Clamp(len(items), length)
	v.locked = true
	return v
}

func blank[T any](opts []Option[T]) *Vector[T] {
	v := &Vector[T]{
		cmp:   Identity[T],
		alloc: CurrentAllocator(),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Destroy runs the destructor over the remaining items, last to first,
// releases owned storage and hands back the context. The vector is empty and
// locked afterwards; a second Destroy returns nil.
func (v *Vector[T]) Destroy() any {
	v.truncate(0)
	if v.store.borrowed() {
		v.log.Debug("overlay destroyed, buffer left to owner", zap.Int("cap", len(v.items)))
	}
	v.store.release()
	v.store = spentBuffer[T]{}
	v.items = nil
	v.locked = true
	ctx := v.context
	v.context = nil
	return ctx
}

// truncate drops items from the tail down to n, destructing each.
func (v *Vector[T]) truncate(n int) {
	old := v.length
	for v.length > n {
		v.length--
		if v.destroy != nil {
			v.destroy(v.items[v.length])
		}
	}
	v.vacate(v.length, old)
}

// vacate zeroes slots no longer holding items so the collector can reclaim
// what they referenced. Borrowed memory belongs to the caller and is left
// as is.
func (v *Vector[T]) vacate(lo, hi int) {
	if lo < hi && !v.store.borrowed() {
		clear(v.items[lo:hi])
	}
}

// setCapacity moves storage to exactly n slots (at least one).
func (v *Vector[T]) setCapacity(n int) error {
	if v.locked {
		v.log.Debug("capacity change on locked vector",
			zap.Int("cap", len(v.items)), zap.Int("want", n), zap.Bool("overlay", v.store.borrowed()))
		return errors.Wrapf(api.ErrAllocFailed, "capacity %d -> %d", len(v.items), n)
	}
	if err := v.store.resize(n); err != nil {
		v.log.Debug("vector resize refused",
			zap.Int("len", v.length), zap.Int("cap", len(v.items)), zap.Int("want", n), zap.Error(err))
		return errors.Wrapf(err, "capacity %d -> %d", len(v.items), n)
	}
	v.items = v.store.slots()
	return nil
}

// Resize sets the capacity to size (at least one). Items at and beyond size
// are destructed and dropped first; that happens even when the allocation
// that follows fails. A locked vector refuses without touching anything.
func (v *Vector[T]) Resize(size int) error {
	if size < 0 {
		return errors.Wrapf(api.ErrInvalidArgument, "resize to %d", size)
	}
	if v.locked {
		return v.setCapacity(size)
	}
	v.truncate(size)
	return v.setCapacity(max(1, size))
}

// Push appends item, growing capacity to (cap<<1)|1 when full.
func (v *Vector[T]) Push(item T) error {
	if v.length == len(v.items) {
		next := grownCapacity(len(v.items), maxSlots[T]())
		if next <= len(v.items) {
			return errors.Wrapf(api.ErrAllocFailed, "capacity %d at limit", len(v.items))
		}
		if err := v.setCapacity(next); err != nil {
			return err
		}
	}
	v.items[v.length] = item
	v.length++
	return nil
}

// Pop removes and returns the last item without destructing it.
func (v *Vector[T]) Pop() (T, bool) {
	var zero T
	if v.length == 0 {
		return zero, false
	}
	v.length--
	item := v.items[v.length]
	v.vacate(v.length, v.length+1)
	return item, true
}

// Top returns the last item without removing it.
func (v *Vector[T]) Top() (T, bool) {
	if v.length == 0 {
		var zero T
		return zero, false
	}
	return v.items[v.length-1], true
}

// Len returns the number of items.
func (v *Vector[T]) Len() int { return v.length }

// Cap returns the number of items that fit without resizing.
func (v *Vector[T]) Cap() int { return len(v.items) }

// At returns the item at index; false when index is out of range.
func (v *Vector[T]) At(index int) (T, bool) {
	off := normalize.Offset(v.length, index)
	if !normalize.Valid(v.length, off) {
		var zero T
		return zero, false
	}
	return v.items[off], true
}

// Set overwrites the item at index. The old item is not destructed.
func (v *Vector[T]) Set(index int, item T) error {
	off := normalize.Offset(v.length, index)
	if !normalize.Valid(v.length, off) {
		return errors.Wrapf(api.ErrOutOfRange, "set %d of %d", index, v.length)
	}
	v.items[off] = item
	return nil
}

// Swap exchanges two items.
func (v *Vector[T]) Swap(index1, index2 int) error {
	i1 := normalize.Offset(v.length, index1)
	i2 := normalize.Offset(v.length, index2)
	if !normalize.Valid(v.length, i1) || !normalize.Valid(v.length, i2) {
		return errors.Wrapf(api.ErrOutOfRange, "swap %d, %d of %d", index1, index2, v.length)
	}
	v.items[i1], v.items[i2] = v.items[i2], v.items[i1]
	return nil
}

// Data is a live view of the items. Writes through it are visible to the
// vector. The view goes stale once capacity changes or the vector is
// destroyed; with WithPool the old buffer is zeroed and may then back another
// vector, so a view kept past that point aliases someone else's items.
func (v *Vector[T]) Data() []T { return v.items[:v.length:v.length] }

// SetComparator installs c, or the identity ordering when c is nil.
func (v *Vector[T]) SetComparator(c api.Comparator[T]) *Vector[T] {
	if c == nil {
		c = Identity[T]
	}
	v.cmp = c
	return v
}

// Comparator returns the active ordering; never nil.
func (v *Vector[T]) Comparator() api.Comparator[T] { return v.cmp }

// SetDestructor installs d; nil disables cleanup.
func (v *Vector[T]) SetDestructor(d api.Destructor[T]) *Vector[T] {
	v.destroy = d
	return v
}

// Destructor returns the cleanup callback, possibly nil.
func (v *Vector[T]) Destructor() api.Destructor[T] { return v.destroy }

// SetContext stores an opaque user value.
func (v *Vector[T]) SetContext(ctx any) *Vector[T] {
	v.context = ctx
	return v
}

// Context returns the user value.
func (v *Vector[T]) Context() any { return v.context }

// Lock forbids capacity changes.
func (v *Vector[T]) Lock() *Vector[T] {
	v.locked = true
	return v
}

// Unlock permits capacity changes again. Overlays stay locked.
func (v *Vector[T]) Unlock() *Vector[T] {
	if !v.store.borrowed() {
		v.locked = false
	}
	return v
}

// Locked reports whether capacity changes are refused.
func (v *Vector[T]) Locked() bool { return v.locked }

// IsOverlay reports whether the storage is borrowed.
func (v *Vector[T]) IsOverlay() bool { return v.store.borrowed() }

// MarshalLogObject lets a vector be logged with zap.Object.
func (v *Vector[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("len", v.length)
	enc.AddInt("cap", len(v.items))
	enc.AddBool("locked", v.locked)
	enc.AddBool("overlay", v.store.borrowed())
	return nil
}

var _ zapcore.ObjectMarshaler = (*Vector[any])(nil)
