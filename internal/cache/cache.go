// Package cache provides the bounded in-memory memoization used by the
// generation workflows. Entries expire a fixed TTL after being written and
// the oldest entry is evicted when an insert would exceed capacity. There
// is no explicit invalidation: correctness relies solely on TTL and
// capacity. Reads and writes never block on I/O.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// TTL is a concurrency-safe string-keyed cache with a fixed time-to-live
// and bounded capacity. An expired entry reads as absent; a key maps to at
// most one entry, last write wins.
type TTL[V any] struct {
	lru *expirable.LRU[string, V]
}

// NewTTL creates a cache holding at most capacity entries, each expiring
// ttl after its write.
func NewTTL[V any](capacity int, ttl time.Duration) *TTL[V] {
	return &TTL[V]{
		lru: expirable.NewLRU[string, V](capacity, nil, ttl),
	}
}

// Get returns the live entry for key, or ok=false on miss or expiry.
func (c *TTL[V]) Get(key string) (V, bool) {
	return c.lru.Get(key)
}

// Set stores value under key, replacing any previous entry and evicting
// the oldest entry if the cache is full.
func (c *TTL[V]) Set(key string, value V) {
	c.lru.Add(key, value)
}

// Len returns the number of live entries.
func (c *TTL[V]) Len() int {
	return c.lru.Len()
}
