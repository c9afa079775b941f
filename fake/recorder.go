// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import "github.com/momentics/hiovec/api"

// Recorder collects the items passed to its destructor, in call order.
type Recorder[T any] struct {
	Items []T
}

// Destructor returns a destructor appending to r.
func (r *Recorder[T]) Destructor() api.Destructor[T] {
	return func(item T) { r.Items = append(r.Items, item) }
}

// Len returns how many items were destructed.
func (r *Recorder[T]) Len() int { return len(r.Items) }

// Reset forgets everything recorded so far.
func (r *Recorder[T]) Reset() { r.Items = r.Items[:0] }
