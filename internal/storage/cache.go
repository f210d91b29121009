package storage

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// cachedEntry wraps a value with version metadata for cache invalidation
type cachedEntry struct {
	Version  string
	Value    string
	Found    bool
	CachedAt time.Time
}

// CachedStore is a read-through cache in front of a slower Store.
// Writes go to the backing store first and only then update the cache.
type CachedStore struct {
	inner Store
	lru   *expirable.LRU[string, *cachedEntry]
}

// NewCachedStore wraps inner with an LRU of the given size and TTL
func NewCachedStore(inner Store, size int, ttl time.Duration) *CachedStore {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedStore{
		inner: inner,
		lru:   expirable.NewLRU[string, *cachedEntry](size, nil, ttl),
	}
}

// Get serves from cache when the entry is current, otherwise reads through
func (c *CachedStore) Get(ctx context.Context, key string) (string, bool, error) {
	if entry, ok := c.lru.Get(key); ok {
		if entry.Version == CacheSchemaVersion {
			return entry.Value, entry.Found, nil
		}
		c.lru.Remove(key)
	}

	v, found, err := c.inner.Get(ctx, key)
	if err != nil {
		return "", false, err
	}
	c.lru.Add(key, &cachedEntry{Version: CacheSchemaVersion, Value: v, Found: found, CachedAt: time.Now()})
	return v, found, nil
}

// Set writes through. On failure the cached value is dropped so the next read goes to the store.
func (c *CachedStore) Set(ctx context.Context, key, value string) error {
	if err := c.inner.Set(ctx, key, value); err != nil {
		c.lru.Remove(key)
		return err
	}
	c.lru.Add(key, &cachedEntry{Version: CacheSchemaVersion, Value: value, Found: true, CachedAt: time.Now()})
	return nil
}

// SetMany writes through as one batch. Touched keys are dropped from the cache on failure.
func (c *CachedStore) SetMany(ctx context.Context, entries map[string]string) error {
	if err := SetAll(ctx, c.inner, entries); err != nil {
		for key := range entries {
			c.lru.Remove(key)
		}
		return err
	}
	now := time.Now()
	for key, value := range entries {
		c.lru.Add(key, &cachedEntry{Version: CacheSchemaVersion, Value: value, Found: true, CachedAt: now})
	}
	return nil
}

// Remove deletes from the store and the cache
func (c *CachedStore) Remove(ctx context.Context, key string) error {
	c.lru.Remove(key)
	return c.inner.Remove(ctx, key)
}

// Invalidate drops a single cached key
func (c *CachedStore) Invalidate(key string) {
	c.lru.Remove(key)
}

// Clear removes all cached entries
func (c *CachedStore) Clear() {
	c.lru.Purge()
}

// Len is the number of cached keys
func (c *CachedStore) Len() int {
	return c.lru.Len()
}
