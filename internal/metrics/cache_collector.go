// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tomtom215/hostaudit/internal/cache"
)

// CacheStatsSource is implemented by *cache.CounterLRU.
type CacheStatsSource interface {
	Stats() cache.CounterStats
}

// CacheCollector exports occurrence cache statistics. Stats are read at
// scrape time.
type CacheCollector struct {
	source CacheStatsSource

	entries   *prometheus.Desc
	capacity  *prometheus.Desc
	evictions *prometheus.Desc
	hits      *prometheus.Desc
	misses    *prometheus.Desc
}

// NewCacheCollector creates a collector reading from source.
//
//	prometheus.MustRegister(metrics.NewCacheCollector(dispatcher.Cache()))
func NewCacheCollector(source CacheStatsSource) *CacheCollector {
	return &CacheCollector{
		source: source,
		entries: prometheus.NewDesc(
			"audit_cache_entries",
			"Current number of event keys tracked by the occurrence cache",
			nil, nil,
		),
		capacity: prometheus.NewDesc(
			"audit_cache_capacity",
			"Maximum number of event keys the occurrence cache holds",
			nil, nil,
		),
		evictions: prometheus.NewDesc(
			"audit_cache_evictions_total",
			"Total number of event keys evicted from the occurrence cache",
			nil, nil,
		),
		hits: prometheus.NewDesc(
			"audit_cache_hits_total",
			"Total number of repeat sightings of a tracked event key",
			nil, nil,
		),
		misses: prometheus.NewDesc(
			"audit_cache_misses_total",
			"Total number of first sightings of an event key",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *CacheCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.capacity
	ch <- c.evictions
	ch <- c.hits
	ch <- c.misses
}

// Collect implements prometheus.Collector.
func (c *CacheCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.source.Stats()
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(stats.Size))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(stats.Capacity))
	ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(stats.Evictions))
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(stats.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(stats.Misses))
}
