package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDebugProbes(t *testing.T) {
	dp := NewDebugProbes()
	calls := 0
	dp.RegisterProbe("vectors", func() any {
		calls++
		return calls
	})

	state := dp.DumpState()
	assert.Contains(t, state, "runtime.version")
	assert.Contains(t, state, "runtime.gomaxprocs")
	assert.Equal(t, 1, state["vectors"])
	assert.Equal(t, 2, dp.DumpState()["vectors"], "probes are sampled on every dump")

	dp.RegisterProbe("vectors", func() any { return "replaced" })
	assert.Equal(t, "replaced", dp.DumpState()["vectors"])
}

func TestDebugProbes_LogState(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	dp := NewDebugProbes()
	dp.RegisterProbe("a.first", func() any { return 1 })

	dp.LogState(zap.New(core))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "debug state", entry.Message)
	require.Len(t, entry.Context, 3)
	assert.Equal(t, "a.first", entry.Context[0].Key)
	assert.Equal(t, "runtime.gomaxprocs", entry.Context[1].Key)
}
