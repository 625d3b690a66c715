// Package cache holds the console's listing collections between remote
// fetches. Keys are hierarchical ("spots", "spots:3"); invalidating a
// parent key drops every entry beneath it, so a successful spot submission
// invalidates the whole spots collection and listing views re-fetch
// server truth on their next read.
package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

const (
	SpotsKey    = "spots"
	SectionsKey = "secciones"
)

// SpotsSectionKey returns the cache key of one section's spot listing.
func SpotsSectionKey(sectionID uint) string {
	return fmt.Sprintf("%v:%v", SpotsKey, sectionID)
}

type entry struct {
	value     any
	expiresAt time.Time
}

// Collection is a TTL cache with prefix invalidation.
type Collection struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
}

func NewCollection(ttl time.Duration) *Collection {
	return &Collection{
		ttl:     ttl,
		entries: make(map[string]entry),
	}
}

func (c *Collection) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()

		return nil, false
	}

	return e.value, true
}

func (c *Collection) Set(key string, value any) {
	e := entry{value: value}
	if c.ttl > 0 {
		e.expiresAt = time.Now().Add(c.ttl)
	}

	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
}

// Invalidate drops the key and every key nested under it.
func (c *Collection) Invalidate(key string) {
	prefix := key + ":"

	c.mu.Lock()
	defer c.mu.Unlock()

	for k := range c.entries {
		if k == key || strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
}
