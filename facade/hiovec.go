// File: facade/hiovec.go
// Unified facade layer for hiovec.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// HioVec wires the ambient pieces a process needs around its vectors: the
// zap logger, the process allocator (heap or budget), per-type slice pools,
// the prometheus registry with the allocator/pool collector, debug probes and
// the reloadable configuration store. Vectors are then created with
// NewVector, which applies all of it.

package facade

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/momentics/hiovec/api"
	"github.com/momentics/hiovec/control"
	"github.com/momentics/hiovec/pool"
	"github.com/momentics/hiovec/vector"
)

// HioVec is the main facade type.
type HioVec struct {
	logger   *zap.Logger
	level    zap.AtomicLevel
	alloc    api.StatsAllocator
	budget   *pool.BudgetAllocator // nil for the heap allocator
	pools    *pool.Manager         // nil when recycling is disabled
	registry *prometheus.Registry
	probes   *control.DebugProbes
	store    *control.ConfigStore

	mu     sync.Mutex
	closed bool
}

// Option customizes New.
type Option func(*HioVec)

// WithLogger uses l instead of building a logger from the configuration.
// Reload then no longer controls the log level.
func WithLogger(l *zap.Logger) Option {
	return func(h *HioVec) { h.logger = l }
}

// New builds the facade from cfg (defaults when nil) and installs its
// allocator as the process allocator.
func New(cfg *control.Config, opts ...Option) (*HioVec, error) {
	if cfg == nil {
		cfg = control.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "facade config")
	}
	lvl, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, errors.Wrap(err, "facade log level")
	}
	h := &HioVec{
		level:    zap.NewAtomicLevelAt(lvl),
		registry: prometheus.NewRegistry(),
		probes:   control.NewDebugProbes(),
		store:    control.NewConfigStore(cfg),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		if h.logger, err = buildLogger(cfg.Log, h.level); err != nil {
			return nil, errors.Wrap(err, "facade logger")
		}
	}

	switch cfg.Allocator.Kind {
	case control.AllocatorBudget:
		h.budget = pool.NewBudgetAllocator(cfg.Allocator.BudgetSlots)
		h.alloc = h.budget
	default:
		h.alloc = pool.NewHeapAllocator()
	}
	var pools api.StatsPool
	if cfg.Pool.Enabled {
		h.pools = pool.NewManager(cfg.Pool.MaxPerClass)
		pools = h.pools
	}
	if err := h.registry.Register(control.NewCollector(cfg.Metrics.Namespace, h.alloc, pools)); err != nil {
		return nil, errors.Wrap(err, "register collector")
	}
	h.probes.RegisterProbe("allocator", func() any { return h.alloc.Stats() })
	if h.pools != nil {
		h.probes.RegisterProbe("pool", func() any { return h.pools.Stats() })
	}
	h.store.OnReload(h.apply)

	vector.SetAllocator(h.alloc)
	h.logger.Info("hiovec ready",
		zap.String("allocator", cfg.Allocator.Kind),
		zap.Bool("pool", cfg.Pool.Enabled),
		zap.Int("default_capacity", cfg.DefaultCapacity))
	return h, nil
}

func buildLogger(lc control.LogConfig, level zap.AtomicLevel) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	return zc.Build()
}

// NewVector creates a vector using the facade's allocator, logger, pool and
// default capacity. opts are applied last and may override any of them.
func NewVector[T any](h *HioVec, opts ...vector.Option[T]) (*vector.Vector[T], error) {
	cfg := h.store.Snapshot()
	base := []vector.Option[T]{
		vector.WithAllocator[T](h.alloc),
		vector.WithLogger[T](h.logger.Named("vector")),
	}
	if h.pools != nil {
		base = append(base, vector.WithPool(pool.For[T](h.pools)))
	}
	return vector.NewSized(cfg.DefaultCapacity, append(base, opts...)...)
}

// Reload validates and applies cfg. The budget limit and log level change in
// place; switching the allocator kind or pooling needs a new facade and is
// only logged.
func (h *HioVec) Reload(cfg *control.Config) error {
	return h.store.Set(cfg)
}

func (h *HioVec) apply(cfg control.Config) {
	if lvl, err := zapcore.ParseLevel(cfg.Log.Level); err == nil {
		h.level.SetLevel(lvl)
	}
	if h.budget != nil && cfg.Allocator.Kind == control.AllocatorBudget {
		h.budget.SetLimit(cfg.Allocator.BudgetSlots)
	}
	if (h.budget != nil) != (cfg.Allocator.Kind == control.AllocatorBudget) ||
		(h.pools != nil) != cfg.Pool.Enabled {
		h.logger.Warn("allocator kind or pooling changed; restart required",
			zap.String("allocator", cfg.Allocator.Kind), zap.Bool("pool", cfg.Pool.Enabled))
	}
	h.logger.Debug("configuration reloaded")
}

// Config returns the active configuration.
func (h *HioVec) Config() control.Config { return h.store.Snapshot() }

// Logger returns the facade logger.
func (h *HioVec) Logger() *zap.Logger { return h.logger }

// Allocator returns the process allocator installed by New.
func (h *HioVec) Allocator() api.StatsAllocator { return h.alloc }

// Pools returns the slice pool manager, nil when pooling is disabled.
func (h *HioVec) Pools() *pool.Manager { return h.pools }

// Registry returns the prometheus registry holding the collector.
func (h *HioVec) Registry() *prometheus.Registry { return h.registry }

// DumpState samples all debug probes.
func (h *HioVec) DumpState() map[string]any { return h.probes.DumpState() }

// RegisterProbe adds a debug probe.
func (h *HioVec) RegisterProbe(name string, fn func() any) { h.probes.RegisterProbe(name, fn) }

// Close logs the final state, restores the heap allocator and flushes the
// logger. Calling Close twice is a no-op.
func (h *HioVec) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	h.probes.LogState(h.logger)
	vector.SetAllocator(nil)
	// Sync fails on terminals and pipes; nothing to recover there.
	_ = h.logger.Sync()
	return nil
}
