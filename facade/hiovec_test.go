package facade_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/momentics/hiovec/api"
	"github.com/momentics/hiovec/control"
	"github.com/momentics/hiovec/facade"
	"github.com/momentics/hiovec/pool"
	"github.com/momentics/hiovec/vector"
)

func budgetConfig(slots int64) *control.Config {
	cfg := control.DefaultConfig()
	cfg.DefaultCapacity = 3
	cfg.Allocator.Kind = control.AllocatorBudget
	cfg.Allocator.BudgetSlots = slots
	return cfg
}

func TestNew_Defaults(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	h, err := facade.New(nil, facade.WithLogger(zap.New(core)))
	require.NoError(t, err)
	defer h.Close()

	assert.Same(t, h.Allocator(), vector.CurrentAllocator())
	assert.NotNil(t, h.Pools())
	assert.Equal(t, 1, logs.FilterMessage("hiovec ready").Len())

	v, err := facade.NewVector[string](h)
	require.NoError(t, err)
	assert.Equal(t, 7, v.Cap())
	assert.Equal(t, int64(7), h.Allocator().Stats().InUse)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := control.DefaultConfig()
	cfg.Allocator.Kind = "arena"
	_, err := facade.New(cfg, facade.WithLogger(zap.NewNop()))
	assert.True(t, errors.Is(err, api.ErrInvalidArgument))
}

func TestNewVector_Budget(t *testing.T) {
	h, err := facade.New(budgetConfig(9), facade.WithLogger(zap.NewNop()))
	require.NoError(t, err)
	defer h.Close()

	v, err := facade.NewVector[int](h)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, v.Push(i))
	}
	// 3 -> 7 fits the budget of 9, 7 -> 15 does not.
	for i := 3; i < 7; i++ {
		require.NoError(t, v.Push(i))
	}
	err = v.Push(7)
	assert.True(t, errors.Is(err, api.ErrAllocFailed))
	assert.Equal(t, 7, v.Len())

	_, err = facade.NewVector[int](h)
	assert.True(t, errors.Is(err, api.ErrAllocFailed), "3 more slots exceed the budget")

	cfg := budgetConfig(32)
	require.NoError(t, h.Reload(cfg))
	assert.Equal(t, int64(32), h.Config().Allocator.BudgetSlots)
	require.NoError(t, v.Push(7))
	assert.Equal(t, 15, v.Cap())

	stats := h.Allocator().Stats()
	assert.Equal(t, int64(15), stats.InUse)
	assert.Equal(t, int64(32), stats.Limit)
	assert.Equal(t, int64(2), stats.Failures)

	v.Destroy()
	assert.Zero(t, h.Allocator().Stats().InUse)
}

func TestNewVector_Pooled(t *testing.T) {
	h, err := facade.New(nil, facade.WithLogger(zap.NewNop()))
	require.NoError(t, err)
	defer h.Close()

	v, err := facade.NewVector[int](h)
	require.NoError(t, err)
	v.Destroy()

	w, err := facade.NewVector[int](h)
	require.NoError(t, err)
	assert.Equal(t, int64(1), h.Pools().Stats().Hits)
	assert.Equal(t, 1, h.Pools().Len())
	w.Destroy()
}

func TestNewVector_OptionsOverride(t *testing.T) {
	h, err := facade.New(nil, facade.WithLogger(zap.NewNop()))
	require.NoError(t, err)
	defer h.Close()

	own := pool.NewBudgetAllocator(1)
	_, err = facade.NewVector(h, vector.WithAllocator[int](own))
	assert.True(t, errors.Is(err, api.ErrAllocFailed))
	assert.Zero(t, h.Allocator().Stats().Allocations)
}

func TestReload(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	h, err := facade.New(budgetConfig(10), facade.WithLogger(zap.New(core)))
	require.NoError(t, err)
	defer h.Close()

	bad := budgetConfig(0)
	assert.Error(t, h.Reload(bad))
	assert.Equal(t, int64(10), h.Config().Allocator.BudgetSlots)

	require.NoError(t, h.Reload(control.DefaultConfig()))
	assert.Equal(t, 1, logs.FilterMessage("allocator kind or pooling changed; restart required").Len())
	assert.Equal(t, 1, logs.FilterMessage("configuration reloaded").Len())
}

func TestRegistry(t *testing.T) {
	h, err := facade.New(nil, facade.WithLogger(zap.NewNop()))
	require.NoError(t, err)
	defer h.Close()

	families, err := h.Registry().Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "hiovec_allocator_slots_in_use")
	assert.Contains(t, names, "hiovec_pool_hits_total")
	n, err := testutil.GatherAndCount(h.Registry())
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}

func TestDumpStateAndClose(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h, err := facade.New(nil, facade.WithLogger(zap.New(core)))
	require.NoError(t, err)

	h.RegisterProbe("app.vectors", func() any { return 2 })
	state := h.DumpState()
	assert.Equal(t, 2, state["app.vectors"])
	assert.Contains(t, state, "allocator")
	assert.Contains(t, state, "pool")

	require.NoError(t, h.Close())
	require.NoError(t, h.Close())
	assert.Equal(t, 1, logs.FilterMessage("debug state").Len())
	_, ok := vector.CurrentAllocator().(*pool.HeapAllocator)
	assert.True(t, ok)
	assert.NotSame(t, h.Allocator(), vector.CurrentAllocator())
}
