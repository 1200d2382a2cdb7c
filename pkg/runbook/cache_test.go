package runbook

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetGet(t *testing.T) {
	cache := NewCache(1 * time.Minute)

	cache.Set("https://example.com/runbook.md", "# Runbook Content")
	content, ok := cache.Get("https://example.com/runbook.md")
	assert.True(t, ok)
	assert.Equal(t, "# Runbook Content", content)

	_, ok = cache.Get("https://example.com/nonexistent.md")
	assert.False(t, ok)
}

func TestCache_TTLExpiry(t *testing.T) {
	cache := NewCache(50 * time.Millisecond)
	cache.Set("key", "content")

	content, ok := cache.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "content", content)

	time.Sleep(60 * time.Millisecond)

	_, ok = cache.Get("key")
	assert.False(t, ok)
}

func TestCache_OverwriteAndMultipleKeys(t *testing.T) {
	cache := NewCache(1 * time.Minute)

	cache.Set("url1", "old")
	cache.Set("url1", "new")
	cache.Set("url2", "other")

	c1, ok1 := cache.Get("url1")
	c2, ok2 := cache.Get("url2")
	assert.True(t, ok1)
	assert.Equal(t, "new", c1)
	assert.True(t, ok2)
	assert.Equal(t, "other", c2)
}

func TestCache_ConcurrentAccess(t *testing.T) {
	cache := NewCache(1 * time.Minute)
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			cache.Set("shared-key", "content")
		}()
		go func() {
			defer wg.Done()
			cache.Get("shared-key")
		}()
	}
	wg.Wait()

	content, ok := cache.Get("shared-key")
	assert.True(t, ok)
	assert.Equal(t, "content", content)
}
