// Package cache provides a process-local read-through cache for catalog
// query results. Entries are bounded by an LRU capacity and expire after
// a configurable TTL; writes invalidate synchronously before they return.
package cache

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache wraps an expirable LRU keyed by deterministic strings.
// Values are stored as-is; callers own the type assertions.
type Cache struct {
	lru *expirable.LRU[string, any]
}

// New creates a cache holding at most maxEntries values, each evicted
// after ttl. A ttl of zero disables expiry.
func New(maxEntries int, ttl time.Duration) *Cache {
	return &Cache{
		lru: expirable.NewLRU[string, any](maxEntries, nil, ttl),
	}
}

// Get returns the cached value for key, if present and not expired.
func (c *Cache) Get(key string) (any, bool) {
	return c.lru.Get(key)
}

// Set stores value under key, evicting the oldest entry if full.
func (c *Cache) Set(key string, value any) {
	c.lru.Add(key, value)
}

// Delete removes a single entry. Missing keys are a no-op.
func (c *Cache) Delete(key string) {
	c.lru.Remove(key)
}

// DeleteByPrefix removes every entry whose key starts with prefix.
// The LRU holds at most the configured capacity, so the scan is bounded.
func (c *Cache) DeleteByPrefix(prefix string) {
	for _, key := range c.lru.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.lru.Remove(key)
		}
	}
}

// Purge drops every entry.
func (c *Cache) Purge() {
	c.lru.Purge()
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	return c.lru.Len()
}
