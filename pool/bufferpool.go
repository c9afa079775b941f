// File: pool/bufferpool.go
// Author: momentics <momentics@gmail.com>
//
// Per-item-type SlicePool manager. A SlicePool is generic, so a process that
// stores several item types keeps one pool per type and looks them up here.

package pool

import (
	"reflect"
	"sync"

	"github.com/momentics/hiovec/api"
)

// Manager provides one SlicePool per item type.
type Manager struct {
	mu          sync.RWMutex
	pools       map[reflect.Type]api.StatsPool // Key: item type
	maxPerClass int
}

// NewManager creates a manager whose pools keep at most maxPerClass slices
// per size class.
func NewManager(maxPerClass int) *Manager {
	return &Manager{
		pools:       make(map[reflect.Type]api.StatsPool),
		maxPerClass: maxPerClass,
	}
}

// For obtains or creates the SlicePool for item type T.
func For[T any](m *Manager) *SlicePool[T] {
	key := reflect.TypeOf((*T)(nil)).Elem()
	m.mu.RLock()
	p, ok := m.pools[key]
	m.mu.RUnlock()
	if ok {
		return p.(*SlicePool[T])
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.pools[key]; ok {
		return p.(*SlicePool[T])
	}
	sp := NewSlicePool[T](m.maxPerClass)
	m.pools[key] = sp
	return sp
}

// Stats sums the statistics of every pool.
func (m *Manager) Stats() api.PoolStats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out api.PoolStats
	for _, p := range m.pools {
		s := p.Stats()
		out.Hits += s.Hits
		out.Misses += s.Misses
		out.Recycled += s.Recycled
		out.Dropped += s.Dropped
		out.Pooled += s.Pooled
	}
	return out
}

// Len returns the number of item types with a pool.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.pools)
}

var _ api.StatsPool = (*Manager)(nil)
