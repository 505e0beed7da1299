package cache

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// entry holds a cached value with its absolute expiry.
type entry struct {
	value     any
	expiresAt time.Time
}

// Cache is a keyed TTL store with single-flight computation: concurrent
// callers of GetOrCompute with the same key share one compute. Expired
// entries are treated as absent — lazily on read, and evicted by a
// background sweep. Safe for concurrent use.
type Cache struct {
	mu         sync.RWMutex
	store      map[string]*entry
	group      singleflight.Group
	maxEntries int
	done       chan struct{}
	closeOnce  sync.Once
}

// New creates a Cache bounded to maxEntries. A background goroutine evicts
// expired entries every sweepInterval; call Stop to terminate it.
func New(maxEntries int, sweepInterval time.Duration) *Cache {
	c := &Cache{
		store:      make(map[string]*entry),
		maxEntries: maxEntries,
		done:       make(chan struct{}),
	}
	go c.sweepLoop(sweepInterval)
	return c
}

// Key joins parts into a namespaced cache key, e.g. Key("catalog", query)
// → "catalog:<query>".
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}

// GetOrCompute returns the cached value for key, or runs compute to
// produce it. At most one compute per key is in flight at a time; late
// concurrent callers receive the winner's result. compute's second return
// controls whether the value is stored: a false means the result is
// returned to all waiting callers but never cached (used for transient
// failures).
func (c *Cache) GetOrCompute(key string, ttl time.Duration, compute func() (any, bool)) any {
	if v, ok := c.get(key); ok {
		return v
	}

	v, _, _ := c.group.Do(key, func() (any, error) {
		// A previous flight may have stored the value between our miss
		// and joining the group.
		if v, ok := c.get(key); ok {
			return v, nil
		}
		v, cacheable := compute()
		if cacheable {
			c.set(key, v, ttl)
		}
		return v, nil
	})
	return v
}

// Len returns the number of live (unexpired) entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	now := time.Now()
	n := 0
	for _, e := range c.store {
		if now.Before(e.expiresAt) {
			n++
		}
	}
	return n
}

// Stop terminates the background sweep goroutine.
func (c *Cache) Stop() {
	c.closeOnce.Do(func() { close(c.done) })
}

func (c *Cache) get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.store[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		// Expired values are never served; drop eagerly.
		c.mu.Lock()
		if cur, still := c.store[key]; still && cur == e {
			delete(c.store, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

func (c *Cache) set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Evict one random entry if at capacity (map iteration is random in Go).
	if len(c.store) >= c.maxEntries {
		for k := range c.store {
			delete(c.store, k)
			break
		}
	}

	c.store[key] = &entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

// sweepLoop evicts expired entries every interval until Stop is called.
func (c *Cache) sweepLoop(interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for k, e := range c.store {
				if now.After(e.expiresAt) {
					delete(c.store, k)
				}
			}
			c.mu.Unlock()
		}
	}
}
