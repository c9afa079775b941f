// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Prometheus collector over allocator and slice pool statistics. Values are
// read at scrape time; nothing is cached between scrapes.

package control

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/momentics/hiovec/api"
)

// StatsSource reports allocator accounting.
type StatsSource interface {
	Stats() api.AllocatorStats
}

// Collector exports allocator and pool statistics.
type Collector struct {
	alloc StatsSource
	pools api.StatsPool

	slotsInUse    *prometheus.Desc
	slotsPeak     *prometheus.Desc
	slotsLimit    *prometheus.Desc
	allocations   *prometheus.Desc
	reallocations *prometheus.Desc
	releases      *prometheus.Desc
	failures      *prometheus.Desc

	poolHits     *prometheus.Desc
	poolMisses   *prometheus.Desc
	poolRecycled *prometheus.Desc
	poolDropped  *prometheus.Desc
	poolHeld     *prometheus.Desc
}

// NewCollector creates a collector. pools may be nil when recycling is off.
func NewCollector(namespace string, alloc StatsSource, pools api.StatsPool) *Collector {
	desc := func(sub, name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, sub, name), help, nil, nil)
	}
	return &Collector{
		alloc: alloc,
		pools: pools,

		slotsInUse:    desc("allocator", "slots_in_use", "Item slots currently admitted"),
		slotsPeak:     desc("allocator", "slots_peak", "Highest number of item slots admitted at once"),
		slotsLimit:    desc("allocator", "slots_limit", "Slot budget, zero when unlimited"),
		allocations:   desc("allocator", "allocations_total", "Fresh buffers admitted"),
		reallocations: desc("allocator", "reallocations_total", "Buffer resizes admitted"),
		releases:      desc("allocator", "releases_total", "Buffers released"),
		failures:      desc("allocator", "failures_total", "Requests refused"),

		poolHits:     desc("pool", "hits_total", "Buffers served from a free list"),
		poolMisses:   desc("pool", "misses_total", "Requests with no pooled buffer of that size"),
		poolRecycled: desc("pool", "recycled_total", "Buffers returned to a free list"),
		poolDropped:  desc("pool", "dropped_total", "Buffers discarded because their class was full"),
		poolHeld:     desc("pool", "buffers", "Buffers currently held"),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.slotsInUse
	ch <- c.slotsPeak
	ch <- c.slotsLimit
	ch <- c.allocations
	ch <- c.reallocations
	ch <- c.releases
	ch <- c.failures
	if c.pools != nil {
		ch <- c.poolHits
		ch <- c.poolMisses
		ch <- c.poolRecycled
		ch <- c.poolDropped
		ch <- c.poolHeld
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.alloc.Stats()
	gauge := func(d *prometheus.Desc, v int64) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, float64(v))
	}
	counter := func(d *prometheus.Desc, v int64) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, float64(v))
	}
	gauge(c.slotsInUse, s.InUse)
	gauge(c.slotsPeak, s.Peak)
	gauge(c.slotsLimit, s.Limit)
	counter(c.allocations, s.Allocations)
	counter(c.reallocations, s.Reallocations)
	counter(c.releases, s.Releases)
	counter(c.failures, s.Failures)

	if c.pools == nil {
		return
	}
	p := c.pools.Stats()
	counter(c.poolHits, p.Hits)
	counter(c.poolMisses, p.Misses)
	counter(c.poolRecycled, p.Recycled)
	counter(c.poolDropped, p.Dropped)
	gauge(c.poolHeld, p.Pooled)
}

var _ prometheus.Collector = (*Collector)(nil)
