package llm

import (
	"sync"
	"time"

	"github.com/silentmoney/silent-money/internal/model"
)

// categoryCache remembers recent classifications keyed by description, so a
// burst of identical merchant SMS only costs one API call.
type categoryCache struct {
	entries map[string]cacheEntry
	ttl     time.Duration
	mu      sync.RWMutex
}

type cacheEntry struct {
	expiresAt time.Time
	category  model.Category
}

func newCategoryCache(ttl time.Duration) *categoryCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &categoryCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

func (c *categoryCache) get(key string) (model.Category, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return "", false
	}
	return entry.category, true
}

func (c *categoryCache) set(key string, category model.Category) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		category:  category,
		expiresAt: time.Now().Add(c.ttl),
	}
}
