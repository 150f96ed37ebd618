package offline

import (
	"context"
	"sync"
)

// MemoryCache is a Cache kept in process memory. Contents are lost on exit.
type MemoryCache struct {
	mu      sync.RWMutex
	buckets map[string]map[string]Entry
}

// NewMemoryCache creates an empty cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{buckets: make(map[string]map[string]Entry)}
}

// PutEntry stores e in bucket, replacing any entry with the same path.
func (c *MemoryCache) PutEntry(_ context.Context, bucket string, e Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, ok := c.buckets[bucket]
	if !ok {
		b = make(map[string]Entry)
		c.buckets[bucket] = b
	}
	b[e.Path] = e
	return nil
}

// GetEntry looks up path in bucket.
func (c *MemoryCache) GetEntry(_ context.Context, bucket, path string) (Entry, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.buckets[bucket][path]
	return e, ok, nil
}
