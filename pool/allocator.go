// File: pool/allocator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Slot allocators backing container storage. HeapAllocator admits every
// request and only keeps the books; BudgetAllocator enforces a slot quota so
// that allocation failure becomes a real, observable outcome.

package pool

import (
	"sync/atomic"

	"github.com/cockroachdb/errors"

	"github.com/momentics/hiovec/api"
)

// ledger is the shared accounting core of the allocators.
type ledger struct {
	inUse    atomic.Int64
	peak     atomic.Int64
	allocs   atomic.Int64
	reallocs atomic.Int64
	releases atomic.Int64
	failures atomic.Int64
}

func (l *ledger) grow(delta int64) {
	now := l.inUse.Add(delta)
	for {
		p := l.peak.Load()
		if now <= p || l.peak.CompareAndSwap(p, now) {
			return
		}
	}
}

func (l *ledger) stats(limit int64) api.AllocatorStats {
	return api.AllocatorStats{
		InUse:         l.inUse.Load(),
		Peak:          l.peak.Load(),
		Limit:         limit,
		Allocations:   l.allocs.Load(),
		Reallocations: l.reallocs.Load(),
		Releases:      l.releases.Load(),
		Failures:      l.failures.Load(),
	}
}

// HeapAllocator admits every request; the Go heap is the only limit.
type HeapAllocator struct {
	l ledger
}

// NewHeapAllocator returns the default process allocator.
func NewHeapAllocator() *HeapAllocator { return &HeapAllocator{} }

func (h *HeapAllocator) Allocate(slots int) error {
	if slots < 0 {
		h.l.failures.Add(1)
		return errors.Wrapf(api.ErrAllocFailed, "negative slot count %d", slots)
	}
	h.l.allocs.Add(1)
	h.l.grow(int64(slots))
	return nil
}

func (h *HeapAllocator) Reallocate(oldSlots, newSlots int) error {
	if newSlots < 0 {
		h.l.failures.Add(1)
		return errors.Wrapf(api.ErrAllocFailed, "negative slot count %d", newSlots)
	}
	h.l.reallocs.Add(1)
	h.l.grow(int64(newSlots - oldSlots))
	return nil
}

func (h *HeapAllocator) Release(slots int) {
	h.l.releases.Add(1)
	h.l.inUse.Add(-int64(slots))
}

// Stats reports accounting since creation.
func (h *HeapAllocator) Stats() api.AllocatorStats { return h.l.stats(0) }

// BudgetAllocator refuses any request that would push the number of admitted
// slots over its limit. A limit of zero or below means unlimited.
type BudgetAllocator struct {
	l     ledger
	limit atomic.Int64
}

// NewBudgetAllocator creates an allocator admitting at most limit slots.
func NewBudgetAllocator(limit int64) *BudgetAllocator {
	b := &BudgetAllocator{}
	b.limit.Store(limit)
	return b
}

// SetLimit changes the quota. Slots already admitted are unaffected even
// when they exceed the new limit; only future growth is refused.
func (b *BudgetAllocator) SetLimit(limit int64) { b.limit.Store(limit) }

// Limit returns the current quota.
func (b *BudgetAllocator) Limit() int64 { return b.limit.Load() }

// admit reserves delta slots against the quota.
func (b *BudgetAllocator) admit(delta int64) bool {
	for {
		cur := b.l.inUse.Load()
		limit := b.limit.Load()
		next := cur + delta
		if delta > 0 && limit > 0 && next > limit {
			return false
		}
		if b.l.inUse.CompareAndSwap(cur, next) {
			b.l.grow(0)
			return true
		}
	}
}

func (b *BudgetAllocator) Allocate(slots int) error {
	if slots < 0 || !b.admit(int64(slots)) {
		b.l.failures.Add(1)
		return errors.Wrapf(api.ErrAllocFailed, "budget: %d slots requested, %d of %d in use",
			slots, b.l.inUse.Load(), b.limit.Load())
	}
	b.l.allocs.Add(1)
	return nil
}

func (b *BudgetAllocator) Reallocate(oldSlots, newSlots int) error {
	if newSlots < 0 || !b.admit(int64(newSlots-oldSlots)) {
		b.l.failures.Add(1)
		return errors.Wrapf(api.ErrAllocFailed, "budget: resize %d -> %d slots, %d of %d in use",
			oldSlots, newSlots, b.l.inUse.Load(), b.limit.Load())
	}
	b.l.reallocs.Add(1)
	return nil
}

func (b *BudgetAllocator) Release(slots int) {
	b.l.releases.Add(1)
	b.l.inUse.Add(-int64(slots))
}

// Stats reports accounting since creation.
func (b *BudgetAllocator) Stats() api.AllocatorStats { return b.l.stats(b.limit.Load()) }

var (
	_ api.StatsAllocator = (*HeapAllocator)(nil)
	_ api.StatsAllocator = (*BudgetAllocator)(nil)
)
