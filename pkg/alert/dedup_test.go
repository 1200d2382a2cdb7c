package alert

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDedupCache_TTLExpiry(t *testing.T) {
	now := time.Now()
	cache := newDedupCache(4*time.Hour, 10)
	cache.now = func() time.Time { return now }

	cache.Put("k1", "sess-1")

	got, ok := cache.Get("k1")
	assert.True(t, ok)
	assert.Equal(t, "sess-1", got)

	now = now.Add(4*time.Hour + time.Minute)
	_, ok = cache.Get("k1")
	assert.False(t, ok)
}

func TestDedupCache_EvictsOldestAtCapacity(t *testing.T) {
	cache := newDedupCache(time.Hour, 3)
	for i := 1; i <= 4; i++ {
		cache.Put(fmt.Sprintf("k%d", i), fmt.Sprintf("sess-%d", i))
	}

	_, ok := cache.Get("k1")
	assert.False(t, ok, "oldest entry must be evicted")
	for i := 2; i <= 4; i++ {
		_, ok := cache.Get(fmt.Sprintf("k%d", i))
		assert.True(t, ok)
	}
}

func TestFingerprint_StableAcrossKeyOrder(t *testing.T) {
	a := fingerprint("kubernetes", map[string]interface{}{"x": 1, "y": "z"})
	b := fingerprint("kubernetes", map[string]interface{}{"y": "z", "x": 1})
	assert.Equal(t, a, b)

	c := fingerprint("aws", map[string]interface{}{"x": 1, "y": "z"})
	assert.NotEqual(t, a, c)
}
