// File: pool/slab_pool.go
// Package pool implements slot allocators and size-class slice recycling.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/hiovec/api"
)

const defaultMaxPerClass = 64

// SlicePool recycles container backing slices by exact slot count. Vector
// growth produces sizes of the form 2^k-1, so a handful of classes covers
// almost all traffic.
type SlicePool[T any] struct {
	mu          sync.Mutex
	classes     map[int]*queue.Queue // Key: slot count
	maxPerClass int

	hits     atomic.Int64
	misses   atomic.Int64
	recycled atomic.Int64
	dropped  atomic.Int64
	pooled   atomic.Int64
}

// NewSlicePool creates a pool keeping at most maxPerClass slices per size
// class. Non-positive values select the default.
func NewSlicePool[T any](maxPerClass int) *SlicePool[T] {
	if maxPerClass <= 0 {
		maxPerClass = defaultMaxPerClass
	}
	return &SlicePool[T]{
		classes:     make(map[int]*queue.Queue),
		maxPerClass: maxPerClass,
	}
}

// Get returns a zeroed slice of exactly n slots, or nil when none is pooled.
func (p *SlicePool[T]) Get(n int) []T {
	if n <= 0 {
		return nil
	}
	p.mu.Lock()
	q, ok := p.classes[n]
	if !ok || q.Length() == 0 {
		p.mu.Unlock()
		p.misses.Add(1)
		return nil
	}
	buf := q.Remove().([]T)
	p.mu.Unlock()
	p.hits.Add(1)
	p.pooled.Add(-1)
	return buf
}

// Put zeroes buf and files it under its capacity. The caller must not touch
// buf afterwards.
func (p *SlicePool[T]) Put(buf []T) {
	buf = buf[:cap(buf)]
	if len(buf) == 0 {
		return
	}
	clear(buf)
	p.mu.Lock()
	q, ok := p.classes[len(buf)]
	if !ok {
		q = queue.New()
		p.classes[len(buf)] = q
	}
	if q.Length() >= p.maxPerClass {
		p.mu.Unlock()
		p.dropped.Add(1)
		return
	}
	q.Add(buf)
	p.mu.Unlock()
	p.recycled.Add(1)
	p.pooled.Add(1)
}

// Stats reports reuse counters.
func (p *SlicePool[T]) Stats() api.PoolStats {
	return api.PoolStats{
		Hits:     p.hits.Load(),
		Misses:   p.misses.Load(),
		Recycled: p.recycled.Load(),
		Dropped:  p.dropped.Load(),
		Pooled:   p.pooled.Load(),
	}
}

var _ api.StatsPool = (*SlicePool[any])(nil)
