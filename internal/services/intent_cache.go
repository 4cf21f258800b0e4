package services

import (
	"strings"
	"sync"
)

// memoryIntentCache is an unbounded in-process intent cache. No eviction, no
// expiry, no persistence across restarts. The mutex only prevents data races
// on the map; concurrent writers for the same key would write the same label.
type memoryIntentCache struct {
	mu      sync.RWMutex
	entries map[string]Intent
}

// NewMemoryIntentCache creates a new in-memory intent cache
func NewMemoryIntentCache() IntentCacheInterface {
	return &memoryIntentCache{
		entries: make(map[string]Intent),
	}
}

// Get implements IntentCacheInterface
func (c *memoryIntentCache) Get(key string) (Intent, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	intent, ok := c.entries[key]
	return intent, ok
}

// Set implements IntentCacheInterface
func (c *memoryIntentCache) Set(key string, intent Intent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = intent
}

// CacheKey normalizes message text into a cache key: trimmed and case-folded
func CacheKey(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
