// control/config.go
// Author: momentics <momentics@gmail.com>
//
// YAML configuration for the container runtime and a thread-safe store
// propagating updates to reload listeners.

package control

import (
	"os"
	"sync"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/momentics/hiovec/api"
)

// Allocator kinds.
const (
	AllocatorHeap   = "heap"
	AllocatorBudget = "budget"
)

// Config is the runtime configuration.
type Config struct {
	DefaultCapacity int             `yaml:"default_capacity"`
	Allocator       AllocatorConfig `yaml:"allocator"`
	Pool            PoolConfig      `yaml:"pool"`
	Log             LogConfig       `yaml:"log"`
	Metrics         MetricsConfig   `yaml:"metrics"`
}

// AllocatorConfig selects the process allocator.
type AllocatorConfig struct {
	Kind        string `yaml:"kind"`
	BudgetSlots int64  `yaml:"budget_slots"`
}

// PoolConfig controls slice recycling.
type PoolConfig struct {
	Enabled     bool `yaml:"enabled"`
	MaxPerClass int  `yaml:"max_per_class"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// MetricsConfig controls the prometheus collector.
type MetricsConfig struct {
	Namespace string `yaml:"namespace"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		DefaultCapacity: 7,
		Allocator:       AllocatorConfig{Kind: AllocatorHeap},
		Pool:            PoolConfig{Enabled: true, MaxPerClass: 64},
		Log:             LogConfig{Level: "info"},
		Metrics:         MetricsConfig{Namespace: "hiovec"},
	}
}

// ParseConfig decodes YAML on top of the defaults and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	return ParseConfig(data)
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.DefaultCapacity < 1 {
		return api.NewError(api.ErrCodeInvalidArgument, "default_capacity must be at least 1").
			WithContext("default_capacity", c.DefaultCapacity)
	}
	switch c.Allocator.Kind {
	case AllocatorHeap:
	case AllocatorBudget:
		if c.Allocator.BudgetSlots <= 0 {
			return api.NewError(api.ErrCodeInvalidArgument, "budget allocator needs budget_slots > 0").
				WithContext("budget_slots", c.Allocator.BudgetSlots)
		}
	default:
		return api.NewError(api.ErrCodeInvalidArgument, "unknown allocator kind").
			WithContext("kind", c.Allocator.Kind)
	}
	if c.Pool.MaxPerClass < 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "max_per_class must not be negative").
			WithContext("max_per_class", c.Pool.MaxPerClass)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return api.NewError(api.ErrCodeInvalidArgument, "unknown log level").
			WithContext("level", c.Log.Level)
	}
	return nil
}

// ConfigStore holds the active configuration with listener support.
type ConfigStore struct {
	mu        sync.RWMutex
	config    Config
	listeners []func(Config)
}

// NewConfigStore initializes a store with cfg, or the defaults when nil.
func NewConfigStore(cfg *Config) *ConfigStore {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &ConfigStore{config: *cfg}
}

// Snapshot returns a copy of the active configuration.
func (cs *ConfigStore) Snapshot() Config {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.config
}

// Set validates and installs cfg, then runs every listener synchronously
// with the new value.
func (cs *ConfigStore) Set(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cs.mu.Lock()
	cs.config = *cfg
	listeners := make([]func(Config), len(cs.listeners))
	copy(listeners, cs.listeners)
	cs.mu.Unlock()
	for _, fn := range listeners {
		fn(*cfg)
	}
	return nil
}

// OnReload registers a listener called after each Set.
func (cs *ConfigStore) OnReload(fn func(Config)) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}
