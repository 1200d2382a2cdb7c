package alert

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"
)

// Dedup window and capacity for resubmitted alerts.
const (
	dedupTTL        = 4 * time.Hour
	dedupMaxEntries = 10_000
)

type dedupEntry struct {
	key       string
	sessionID string
	expiresAt time.Time
}

// dedupCache is a TTL cache mapping alert fingerprints to the session that
// first processed them. Expired entries are pruned on access; when full,
// the oldest entry is evicted.
type dedupCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	max     int
	entries map[string]*dedupEntry
	order   []string // insertion order, oldest first
	now     func() time.Time
}

func newDedupCache(ttl time.Duration, max int) *dedupCache {
	return &dedupCache{
		ttl:     ttl,
		max:     max,
		entries: make(map[string]*dedupEntry),
		now:     time.Now,
	}
}

// Get returns the session that already handles this fingerprint, if any.
func (c *dedupCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if c.now().After(entry.expiresAt) {
		c.remove(key)
		return "", false
	}
	return entry.sessionID, true
}

// Put records a fingerprint → session mapping.
func (c *dedupCache) Put(key, sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		c.entries[key].sessionID = sessionID
		c.entries[key].expiresAt = c.now().Add(c.ttl)
		return
	}

	c.pruneExpired()
	for len(c.entries) >= c.max && len(c.order) > 0 {
		c.remove(c.order[0])
	}

	c.entries[key] = &dedupEntry{
		key:       key,
		sessionID: sessionID,
		expiresAt: c.now().Add(c.ttl),
	}
	c.order = append(c.order, key)
}

func (c *dedupCache) pruneExpired() {
	now := c.now()
	for _, key := range append([]string(nil), c.order...) {
		if entry, ok := c.entries[key]; ok && now.After(entry.expiresAt) {
			c.remove(key)
		}
	}
}

func (c *dedupCache) remove(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// fingerprint hashes the alert identity: its type plus the canonical JSON
// encoding of its payload.
func fingerprint(alertType string, data map[string]interface{}) string {
	encoded, err := json.Marshal(data)
	if err != nil {
		encoded = []byte(alertType)
	}
	sum := sha256.Sum256(append([]byte(alertType+"\x00"), encoded...))
	return hex.EncodeToString(sum[:])
}
