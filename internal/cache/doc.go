// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

// Package cache provides the bounded occurrence counter used to throttle
// repeated audit events.
//
// CounterLRU maps an event key to the number of times it has been seen. It
// holds at most Capacity keys; adding a new key to a full cache evicts the
// least recently touched one, and that key starts again at 1 if it returns.
//
//	c := cache.NewCounterLRU(1000)
//	c.Touch(`open("/etc/passwd", "r", 0)`) // 1
//	c.Touch(`open("/etc/passwd", "r", 0)`) // 2
//
// Touch is O(1): a map for lookup plus a doubly linked list for recency.
// All methods are safe for concurrent use; a single mutex serializes them,
// so two goroutines touching the same key always get distinct counts.
//
// Stats exposes hit, miss and eviction counters for the Prometheus
// collector in internal/metrics.
package cache
