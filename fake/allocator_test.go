package fake

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocator_SetFail(t *testing.T) {
	a := NewAllocator()
	require.NoError(t, a.Allocate(3))
	a.SetFail(true)
	assert.Error(t, a.Reallocate(3, 7))
	a.SetFail(false)
	require.NoError(t, a.Reallocate(3, 7))
	a.Release(7)

	assert.Equal(t, []Call{
		{Op: "allocate", Slots: 3},
		{Op: "reallocate", OldSlots: 3, Slots: 7},
		{Op: "reallocate", OldSlots: 3, Slots: 7},
		{Op: "release", Slots: 7},
	}, a.Calls())
	assert.Equal(t, 2, a.Count("reallocate"))
}

func TestAllocator_SetFailAfter(t *testing.T) {
	a := NewAllocator()
	require.NoError(t, a.Allocate(1))

	a.SetFailAfter(2)
	require.NoError(t, a.Allocate(1))
	require.NoError(t, a.Reallocate(1, 3))
	assert.Error(t, a.Allocate(1))

	a.SetFailAfter(0)
	assert.NoError(t, a.Allocate(1))
}

func TestAllocator_ScriptedConcurrently(t *testing.T) {
	a := NewAllocator()
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_ = a.Allocate(1)
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				a.SetFail(i%2 == 0)
				a.SetFailAfter(i % 3)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 400, a.Count("allocate"))
}
