// slab_pool_test.go: size-class recycling of backing slices.
package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlicePool_GetPut(t *testing.T) {
	p := NewSlicePool[*int](2)

	assert.Nil(t, p.Get(7), "empty pool misses")

	x := 1
	buf := make([]*int, 7)
	buf[3] = &x
	p.Put(buf)

	got := p.Get(7)
	require.Len(t, got, 7)
	assert.Nil(t, got[3], "recycled slices come back zeroed")
	assert.Nil(t, p.Get(7))

	s := p.Stats()
	assert.Equal(t, int64(1), s.Hits)
	assert.Equal(t, int64(2), s.Misses)
	assert.Equal(t, int64(1), s.Recycled)
	assert.Zero(t, s.Pooled)
}

func TestSlicePool_ExactClasses(t *testing.T) {
	p := NewSlicePool[int](0)
	p.Put(make([]int, 15))
	assert.Nil(t, p.Get(7))
	assert.Nil(t, p.Get(31))
	assert.Len(t, p.Get(15), 15)
}

func TestSlicePool_DropsWhenClassFull(t *testing.T) {
	p := NewSlicePool[int](1)
	p.Put(make([]int, 3))
	p.Put(make([]int, 3))
	s := p.Stats()
	assert.Equal(t, int64(1), s.Recycled)
	assert.Equal(t, int64(1), s.Dropped)
	assert.Equal(t, int64(1), s.Pooled)
}

func TestSlicePool_IgnoresEmpty(t *testing.T) {
	p := NewSlicePool[int](1)
	p.Put(nil)
	assert.Nil(t, p.Get(0))
	assert.Zero(t, p.Stats().Recycled)
}

func TestManager_PerType(t *testing.T) {
	m := NewManager(4)
	ints := For[int](m)
	assert.Same(t, ints, For[int](m))
	strs := For[string](m)
	assert.Equal(t, 2, m.Len())

	ints.Put(make([]int, 3))
	strs.Put(make([]string, 3))
	_ = ints.Get(3)

	s := m.Stats()
	assert.Equal(t, int64(2), s.Recycled)
	assert.Equal(t, int64(1), s.Hits)
	assert.Equal(t, int64(1), s.Pooled)
}
