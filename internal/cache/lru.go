// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

package cache

import "sync"

// DefaultCounterCapacity is used when a non-positive capacity is requested.
const DefaultCounterCapacity = 1000

// counterEntry is a node in the access-order list.
type counterEntry struct {
	key   string
	count int
	prev  *counterEntry
	next  *counterEntry
}

// CounterLRU counts occurrences per key and keeps at most capacity keys,
// evicting the least recently touched key when the bound is exceeded.
//
// Key features:
//   - O(1) Touch and eviction
//   - Recency is by last access, not by insertion
//   - Thread-safe operations under a single mutex
//
// It uses a doubly-linked list for ordering and a hashmap for lookups.
// The bound is on entries, not bytes: memory use follows the length of the
// keys callers pass in, and keys are held until evicted.
type CounterLRU struct {
	mu sync.Mutex

	capacity int

	// items maps keys to linked list nodes for O(1) lookup
	items map[string]*counterEntry

	// head.next is the most recently used, tail.prev is the least recently used
	head *counterEntry
	tail *counterEntry

	hits      int64
	misses    int64
	evictions int64
}

// CounterStats is a point-in-time snapshot of cache activity.
type CounterStats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Size      int   `json:"size"`
	Capacity  int   `json:"capacity"`
}

// NewCounterLRU creates a counter cache bounded to capacity keys.
func NewCounterLRU(capacity int) *CounterLRU {
	if capacity <= 0 {
		capacity = DefaultCounterCapacity
	}

	c := &CounterLRU{
		capacity: capacity,
		items:    make(map[string]*counterEntry, capacity),
		head:     &counterEntry{},
		tail:     &counterEntry{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head

	return c
}

// Touch records one occurrence of key and returns its updated count.
// The first sighting returns 1. The key becomes the most recently used.
func (c *CounterLRU) Touch(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, exists := c.items[key]; exists {
		entry.count++
		c.moveToFront(entry)
		c.hits++
		return entry.count
	}

	entry := &counterEntry{key: key, count: 1}
	c.addToFront(entry)
	c.items[key] = entry
	c.misses++

	for len(c.items) > c.capacity {
		c.evictOldest()
	}

	return entry.count
}

// Count returns the stored count for key without changing recency.
func (c *CounterLRU) Count(key string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, exists := c.items[key]; exists {
		return entry.count, true
	}
	return 0, false
}

// Len returns the current number of keys.
func (c *CounterLRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Capacity returns the configured key bound.
func (c *CounterLRU) Capacity() int {
	return c.capacity
}

// Keys returns the keys ordered from most to least recently used.
func (c *CounterLRU) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, len(c.items))
	for entry := c.head.next; entry != c.tail; entry = entry.next {
		keys = append(keys, entry.key)
	}
	return keys
}

// Stats returns hit, miss and eviction counters along with the current size.
func (c *CounterLRU) Stats() CounterStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CounterStats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

// Internal methods (must be called with lock held)

func (c *CounterLRU) addToFront(entry *counterEntry) {
	entry.prev = c.head
	entry.next = c.head.next
	c.head.next.prev = entry
	c.head.next = entry
}

func (c *CounterLRU) moveToFront(entry *counterEntry) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	c.addToFront(entry)
}

// evictOldest removes the least recently used entry.
func (c *CounterLRU) evictOldest() {
	oldest := c.tail.prev
	if oldest == c.head {
		return
	}
	oldest.prev.next = oldest.next
	oldest.next.prev = oldest.prev
	delete(c.items, oldest.key)
	c.evictions++
}
