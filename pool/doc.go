// Package pool
// Author: momentics <momentics@gmail.com>
//
// Memory layer for hiovec vectors.
// Allocators account item slots (HeapAllocator, BudgetAllocator), SlicePool
// recycles released buffers by exact size over eapache/queue free lists,
// Manager keeps one SlicePool per item type and Region maps anonymous memory
// for overlays.
// See allocator.go, slab_pool.go, region.go for implementation details.
package pool
