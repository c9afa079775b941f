// File: vector/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vector

import (
	"go.uber.org/zap"

	"github.com/momentics/hiovec/api"
	"github.com/momentics/hiovec/pool"
)

// Option configures a Vector at construction.
type Option[T any] func(*Vector[T])

// WithComparator sets the ordering. nil keeps the identity ordering.
func WithComparator[T any](c api.Comparator[T]) Option[T] {
	return func(v *Vector[T]) { v.SetComparator(c) }
}

// WithDestructor sets the cleanup callback.
func WithDestructor[T any](d api.Destructor[T]) Option[T] {
	return func(v *Vector[T]) { v.destroy = d }
}

// WithContext stores an opaque user value.
func WithContext[T any](ctx any) Option[T] {
	return func(v *Vector[T]) { v.context = ctx }
}

// WithLogger routes storage diagnostics to l.
func WithLogger[T any](l *zap.Logger) Option[T] {
	return func(v *Vector[T]) {
		if l != nil {
			v.log = l
		}
	}
}

// WithAllocator overrides the process allocator for this vector and every
// vector derived from it.
func WithAllocator[T any](a api.Allocator) Option[T] {
	return func(v *Vector[T]) {
		if a != nil {
			v.alloc = a
		}
	}
}

// WithPool makes the vector take its buffers from p and hand replaced ones
// back to it.
func WithPool[T any](p *pool.SlicePool[T]) Option[T] {
	return func(v *Vector[T]) { v.pool = p }
}

// Locked creates the vector already locked.
func Locked[T any]() Option[T] {
	return func(v *Vector[T]) { v.locked = true }
}
