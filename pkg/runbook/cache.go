// Package runbook fetches investigation runbooks from GitHub, with URL
// validation, raw-URL normalization, and an in-memory TTL cache.
package runbook

import (
	"sync"
	"time"
)

type cacheEntry struct {
	content   string
	fetchedAt time.Time
}

// Cache is a concurrency-safe string cache with TTL expiry. Expired entries
// are evicted lazily on Get; there is no background sweeper.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
	}
}

// Get returns the cached content for url, if present and fresh.
func (c *Cache) Get(url string) (string, bool) {
	c.mu.RLock()
	entry, ok := c.entries[url]
	c.mu.RUnlock()

	if !ok {
		return "", false
	}
	if time.Since(entry.fetchedAt) <= c.ttl {
		return entry.content, true
	}

	// Evict, but re-check under the write lock: a concurrent Set may have
	// stored a fresh entry in the meantime.
	c.mu.Lock()
	if current, ok := c.entries[url]; ok && time.Since(current.fetchedAt) > c.ttl {
		delete(c.entries, url)
	}
	c.mu.Unlock()
	return "", false
}

// Set stores content for url, stamping it with the current time.
func (c *Cache) Set(url string, content string) {
	c.mu.Lock()
	c.entries[url] = &cacheEntry{content: content, fetchedAt: time.Now()}
	c.mu.Unlock()
}
