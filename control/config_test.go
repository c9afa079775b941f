package control

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hiovec/api"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfig_Overrides(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
default_capacity: 31
allocator:
  kind: budget
  budget_slots: 4096
pool:
  enabled: false
log:
  level: debug
  development: true
metrics:
  namespace: worker
`))
	require.NoError(t, err)
	assert.Equal(t, 31, cfg.DefaultCapacity)
	assert.Equal(t, AllocatorBudget, cfg.Allocator.Kind)
	assert.Equal(t, int64(4096), cfg.Allocator.BudgetSlots)
	assert.False(t, cfg.Pool.Enabled)
	assert.Equal(t, 64, cfg.Pool.MaxPerClass, "unset fields keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, "worker", cfg.Metrics.Namespace)
}

func TestParseConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"capacity":      "default_capacity: 0",
		"kind":          "allocator: {kind: arena}",
		"budget":        "allocator: {kind: budget}",
		"max per class": "pool: {max_per_class: -1}",
		"level":         "log: {level: loud}",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig([]byte(doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, api.ErrInvalidArgument))

			var apiErr *api.Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, api.ErrCodeInvalidArgument, apiErr.Code)
		})
	}

	_, err := ParseConfig([]byte("default_capacity: [1"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hiovec.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_capacity: 15\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.DefaultCapacity)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfigStore(t *testing.T) {
	cs := NewConfigStore(nil)
	assert.Equal(t, *DefaultConfig(), cs.Snapshot())

	var seen []int
	cs.OnReload(func(c Config) { seen = append(seen, c.DefaultCapacity) })
	cs.OnReload(func(c Config) { seen = append(seen, -c.DefaultCapacity) })

	next := DefaultConfig()
	next.DefaultCapacity = 3
	require.NoError(t, cs.Set(next))
	assert.Equal(t, []int{3, -3}, seen)
	assert.Equal(t, 3, cs.Snapshot().DefaultCapacity)

	next.DefaultCapacity = 9
	assert.Equal(t, 3, cs.Snapshot().DefaultCapacity, "snapshot is a copy")

	bad := DefaultConfig()
	bad.Log.Level = "verbose"
	assert.Error(t, cs.Set(bad))
	assert.Equal(t, 3, cs.Snapshot().DefaultCapacity)
	assert.Len(t, seen, 2, "listeners skipped on rejected config")
}
