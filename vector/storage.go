// File: vector/storage.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Storage manager. Ownership is decided by the storage implementation, not
// by a flag: ownedBuffer is admitted by an allocator and may be resized and
// released; borrowedBuffer wraps caller memory and can do neither.

package vector

import (
	"math"
	"unsafe"

	"github.com/cockroachdb/errors"

	"github.com/momentics/hiovec/api"
	"github.com/momentics/hiovec/pool"
)

// maxBufferBytes bounds a single owned buffer. Larger requests are refused
// before they reach the allocator.
const maxBufferBytes = min(math.MaxInt, 1<<47)

// maxSlots is the largest owned buffer of T items.
func maxSlots[T any]() int {
	var zero T
	if size := int(unsafe.Sizeof(zero)); size > 0 {
		return maxBufferBytes / size
	}
	return math.MaxInt
}

func checkSlots[T any](n int) error {
	if limit := maxSlots[T](); n > limit {
		return errors.Wrapf(api.ErrAllocFailed, "%d slots exceed the limit of %d", n, limit)
	}
	return nil
}

// grownCapacity is (c<<1)|1 saturated at limit.
func grownCapacity(c, limit int) int {
	if c >= (limit-1)>>1 {
		return limit
	}
	return (c << 1) | 1
}

type storage[T any] interface {
	// slots returns the whole buffer; its length is the capacity.
	slots() []T
	// resize moves the buffer to exactly n slots keeping the common prefix.
	resize(n int) error
	// release gives the buffer back. The storage is empty afterwards.
	release()
	borrowed() bool
}

type ownedBuffer[T any] struct {
	buf   []T
	alloc api.Allocator
	pool  *pool.SlicePool[T]
}

func newOwned[T any](n int, alloc api.Allocator, p *pool.SlicePool[T]) (*ownedBuffer[T], error) {
	n = max(1, n)
	if err := checkSlots[T](n); err != nil {
		return nil, err
	}
	if err := alloc.Allocate(n); err != nil {
		return nil, errors.Mark(err, api.ErrAllocFailed)
	}
	return &ownedBuffer[T]{buf: obtain(p, n), alloc: alloc, pool: p}, nil
}

func obtain[T any](p *pool.SlicePool[T], n int) []T {
	if p != nil {
		if buf := p.Get(n); buf != nil {
			return buf
		}
	}
	return make([]T, n)
}

func (o *ownedBuffer[T]) slots() []T { return o.buf }

func (o *ownedBuffer[T]) resize(n int) error {
	n = max(1, n)
	if n == len(o.buf) {
		return nil
	}
	if err := checkSlots[T](n); err != nil {
		return err
	}
	if err := o.alloc.Reallocate(len(o.buf), n); err != nil {
		return errors.Mark(err, api.ErrAllocFailed)
	}
	nb := obtain(o.pool, n)
	copy(nb, o.buf)
	o.recycle()
	o.buf = nb
	return nil
}

func (o *ownedBuffer[T]) release() {
	if o.buf == nil {
		return
	}
	o.alloc.Release(len(o.buf))
	o.recycle()
	o.buf = nil
}

func (o *ownedBuffer[T]) recycle() {
	if o.pool != nil {
		o.pool.Put(o.buf)
	}
}

func (o *ownedBuffer[T]) borrowed() bool { return false }

type borrowedBuffer[T any] struct {
	buf []T
}

func (b *borrowedBuffer[T]) slots() []T { return b.buf }

func (b *borrowedBuffer[T]) resize(n int) error {
	return errors.Wrapf(api.ErrAllocFailed, "borrowed buffer cannot move to %d slots", n)
}

// release forgets the buffer; the caller still owns it.
func (b *borrowedBuffer[T]) release() { b.buf = nil }

func (b *borrowedBuffer[T]) borrowed() bool { return true }

// spentBuffer stands in after Destroy. It holds nothing and refuses to grow.
type spentBuffer[T any] struct{}

func (spentBuffer[T]) slots() []T { return nil }

func (spentBuffer[T]) resize(int) error {
	return errors.Wrap(api.ErrAllocFailed, "vector destroyed")
}

func (spentBuffer[T]) release() {}

func (spentBuffer[T]) borrowed() bool { return false }

var (
	_ storage[any] = (*ownedBuffer[any])(nil)
	_ storage[any] = (*borrowedBuffer[any])(nil)
	_ storage[any] = spentBuffer[any]{}
)
