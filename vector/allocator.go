// File: vector/allocator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Process-wide allocator hook.

package vector

import (
	"sync/atomic"

	"github.com/momentics/hiovec/api"
	"github.com/momentics/hiovec/pool"
)

type allocatorBox struct {
	a api.Allocator
}

var (
	heapAllocator    = pool.NewHeapAllocator()
	processAllocator atomic.Pointer[allocatorBox]
)

// SetAllocator installs the allocator used by every vector created
// afterwards. Vectors keep the allocator they were created with, so install
// it before creating any vector. nil restores the heap allocator.
func SetAllocator(a api.Allocator) {
	if a == nil {
		a = heapAllocator
	}
	processAllocator.Store(&allocatorBox{a: a})
}

// CurrentAllocator returns the allocator new vectors will use.
func CurrentAllocator() api.Allocator {
	if b := processAllocator.Load(); b != nil {
		return b.a
	}
	return heapAllocator
}
