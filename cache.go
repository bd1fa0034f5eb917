package fastbreak

import (
	"fmt"
	"reflect"
	"sync"
	"time"
)

// cacheEntry holds one decoded result keyed by request identity. Values are
// treated as immutable once stored; the same reference may be handed to
// multiple concurrent callers.
type cacheEntry struct {
	value     interface{}
	typ       reflect.Type
	expiresAt time.Time
}

// resultCache is a capacity-bounded TTL cache over decoded results. Entries
// expire a fixed TTL after insertion; when full, the oldest insertion is
// evicted first. A lock serializes all access: the type-safety invariant
// (one identity maps to exactly one result type) must hold even when many
// callers race between a miss and the subsequent store.
type resultCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	maxSize int
	store   map[string]*cacheEntry
	order   []string // insertion order, oldest first

	onEvict func()
}

// CacheStats describes the live state of the result cache.
type CacheStats struct {
	Size    int
	MaxSize int
	TTL     time.Duration
}

func newResultCache(ttl time.Duration, maxSize int) *resultCache {
	return &resultCache{
		ttl:     ttl,
		maxSize: maxSize,
		store:   make(map[string]*cacheEntry),
	}
}

// get returns the stored value for key, or false when absent or expired.
// Expired entries are removed on sight.
func (c *resultCache) get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.store[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.remove(key)
		return nil, false
	}
	return entry.value, true
}

// put stores value under key tagged with typ. Storing an identity that is
// already live under a different type fails with a CacheCollision error and
// leaves the existing entry untouched; the mapping from identity to type
// must be a function.
func (c *resultCache) put(key string, value interface{}, typ reflect.Type) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.store[key]; ok {
		if time.Now().After(existing.expiresAt) {
			c.remove(key)
		} else if existing.typ != typ {
			return &ClientError{
				Type:    ErrorTypeCacheCollision,
				Message: fmt.Sprintf("identity %q already stored as %v, refusing %v", key, existing.typ, typ),
				Cause:   ErrCacheCollision,
			}
		} else {
			// Re-store under the same type: treated as a fresh insertion.
			c.remove(key)
		}
	}

	if len(c.store) >= c.maxSize {
		c.evictOldest()
	}

	c.store[key] = &cacheEntry{
		value:     value,
		typ:       typ,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.order = append(c.order, key)
	return nil
}

// clear removes every entry.
func (c *resultCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]*cacheEntry)
	c.order = c.order[:0]
}

func (c *resultCache) stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return CacheStats{
		Size:    len(c.store),
		MaxSize: c.maxSize,
		TTL:     c.ttl,
	}
}

// remove deletes key from both the store and the insertion-order list.
// Callers must hold c.mu.
func (c *resultCache) remove(key string) {
	delete(c.store, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// evictOldest drops the oldest live insertion. Callers must hold c.mu.
func (c *resultCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.store, oldest)
	if c.onEvict != nil {
		c.onEvict()
	}
}
