// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Defines abstract allocation APIs: slot accounting for container storage and
// slice reuse statistics.

package api

// Allocator admits or refuses storage for container item slots. The Go
// runtime owns the memory itself; an Allocator decides whether a container
// may obtain it and keeps the books. All three methods form one unit and are
// always installed together.
//
// Implementations must be safe for concurrent use: one allocator is shared by
// every container in the process.
type Allocator interface {
	// Allocate admits a fresh buffer of the given number of slots.
	Allocate(slots int) error

	// Reallocate admits moving a buffer from oldSlots to newSlots.
	Reallocate(oldSlots, newSlots int) error

	// Release returns a buffer of the given number of slots.
	Release(slots int)
}

// AllocatorStats aggregates allocation accounting.
type AllocatorStats struct {
	InUse         int64 // slots currently admitted
	Peak          int64 // highest InUse observed
	Limit         int64 // zero when unlimited
	Allocations   int64
	Reallocations int64
	Releases      int64
	Failures      int64
}

// StatsAllocator is an Allocator exposing its accounting.
type StatsAllocator interface {
	Allocator
	Stats() AllocatorStats
}

// PoolStats aggregates slice pool reuse statistics.
type PoolStats struct {
	Hits     int64 // Get served from a free list
	Misses   int64 // Get found no buffer of the requested size
	Recycled int64 // Put accepted a buffer
	Dropped  int64 // Put discarded a buffer because its class was full
	Pooled   int64 // buffers currently held
}

// StatsPool is anything reporting slice pool statistics.
type StatsPool interface {
	Stats() PoolStats
}
