package utils

import (
	"sync"
	"time"
)

// Cache is a small in-process cache keyed by string, used as the first level
// of the market-stats caching layer. Entries are invalidated explicitly on
// writes to the underlying collection, or lazily once expired.
type Cache[T any] struct {
	entries map[string]cacheEntry[T]
	mutex   sync.RWMutex
}

type cacheEntry[T any] struct {
	value      T
	expiration time.Time
}

// NewCache initializes an empty cache.
func NewCache[T any]() *Cache[T] {
	return &Cache[T]{entries: map[string]cacheEntry[T]{}}
}

// Set stores a value under key with an expiration time.
func (c *Cache[T]) Set(key string, value T, duration time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[key] = cacheEntry[T]{
		value:      value,
		expiration: time.Now().Add(duration),
	}
}

// Get retrieves the cached value for key if present and unexpired.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entry, ok := c.entries[key]
	if !ok || time.Now().After(entry.expiration) {
		var zero T
		return zero, false
	}
	return entry.value, true
}

// Clear removes every cached entry.
func (c *Cache[T]) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries = map[string]cacheEntry[T]{}
}
