package market

import "sync"

// TrendCache stores multipliers for skills resolved through the external
// classifier. It is an explicit collaborator injected at Pulse construction so
// tests can substitute a deterministic fake and so concurrent-session safety
// can be reasoned about apart from the scoring logic.
//
// Keys are normalized skill names. Concurrent first-time classification of the
// same skill is tolerated: both writers store equivalent values, so
// last-write-wins is fine.
type TrendCache interface {
	Get(skill string) (float64, bool)
	Set(skill string, multiplier float64)
}

// MemoryCache is the default process-lifetime TrendCache.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]float64
}

// NewMemoryCache returns an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]float64)}
}

// Get returns the cached multiplier for a normalized skill name.
func (c *MemoryCache) Get(skill string) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	mult, ok := c.entries[skill]
	return mult, ok
}

// Set stores a multiplier under a normalized skill name.
func (c *MemoryCache) Set(skill string, multiplier float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[skill] = multiplier
}
