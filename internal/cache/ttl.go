package cache

import (
	"sync"
	"time"
)

// TTL is a bounded cache whose entries expire after a fixed duration. Used for
// item-bank lookups so the selection loop does not hit storage per candidate.
type TTL struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	entries  map[string]ttlEntry
	now      func() time.Time
}

type ttlEntry struct {
	val       any
	expiresAt time.Time
}

func NewTTL(capacity int, ttl time.Duration) *TTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &TTL{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[string]ttlEntry, capacity),
		now:      time.Now,
	}
}

func (c *TTL) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return e.val, true
}

func (c *TTL) Put(key string, val any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.capacity {
		if _, exists := c.entries[key]; !exists {
			c.evictLocked()
		}
	}
	c.entries[key] = ttlEntry{val: val, expiresAt: c.now().Add(c.ttl)}
}

// evictLocked drops expired entries first, falling back to an arbitrary entry
// when everything is still fresh (the cap exists to bound memory, not to give
// recency guarantees).
func (c *TTL) evictLocked() {
	now := c.now()
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	if len(c.entries) < c.capacity {
		return
	}
	for k := range c.entries {
		delete(c.entries, k)
		return
	}
}

func (c *TTL) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
