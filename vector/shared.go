// File: vector/shared.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Reference-counted handle over a Vector. The counter is a plain int: Retain
// and Release are NOT safe for concurrent use, callers sharing a handle
// across goroutines must serialize them together with every mutation.

package vector

// Shared counts owners of a vector and destroys it when the last one lets go.
type Shared[T any] struct {
	v    *Vector[T]
	refs int
}

// Share wraps v with a reference count of one.
func Share[T any](v *Vector[T]) *Shared[T] {
	return &Shared[T]{v: v, refs: 1}
}

// Vector returns the wrapped vector, nil once destroyed.
func (s *Shared[T]) Vector() *Vector[T] { return s.v }

// Refs returns the current count.
func (s *Shared[T]) Refs() int { return s.refs }

// Retain adds an owner.
func (s *Shared[T]) Retain() *Shared[T] {
	if s.v != nil {
		s.refs++
	}
	return s
}

// Release drops an owner. The last release destroys the vector and returns
// its context with destroyed set.
func (s *Shared[T]) Release() (ctx any, destroyed bool) {
	if s.v == nil {
		return nil, false
	}
	s.refs--
	if s.refs > 0 {
		return nil, false
	}
	ctx = s.v.Destroy()
	s.v = nil
	s.refs = 0
	return ctx, true
}
