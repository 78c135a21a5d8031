package render

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// DefaultFormatTTL bounds how long a resolved group format is reused before
// the group provider is consulted again.
const DefaultFormatTTL = 10 * time.Second

type cacheEntry struct {
	format    string
	writtenAt time.Time
}

// FormatCache memoizes resolved group chat formats per sender. Loads for a
// missing or expired key are single-flight: concurrent callers for the same
// sender share one provider call. Failed loads are never cached, so the next
// access retries the loader.
type FormatCache struct {
	ttl    time.Duration
	now    func() time.Time
	flight singleflight.Group

	mu      sync.RWMutex
	entries map[uuid.UUID]cacheEntry
}

// NewFormatCache builds a cache with the given TTL; non-positive values fall
// back to DefaultFormatTTL.
func NewFormatCache(ttl time.Duration) *FormatCache {
	if ttl <= 0 {
		ttl = DefaultFormatTTL
	}
	return &FormatCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[uuid.UUID]cacheEntry),
	}
}

// Get returns the cached format for id, invoking loader when the entry is
// absent or past its TTL. Entries are recomputed, never mutated in place.
func (c *FormatCache) Get(id uuid.UUID, loader func(uuid.UUID) (string, error)) (string, error) {
	if format, ok := c.lookup(id); ok {
		return format, nil
	}

	v, err, _ := c.flight.Do(id.String(), func() (any, error) {
		// A flight that just finished may have filled the entry already.
		if format, ok := c.lookup(id); ok {
			return format, nil
		}
		format, err := loader(id)
		if err != nil {
			return "", err
		}
		c.mu.Lock()
		c.entries[id] = cacheEntry{format: format, writtenAt: c.now()}
		c.mu.Unlock()
		return format, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Invalidate drops the entry for id, forcing a reload on the next access.
func (c *FormatCache) Invalidate(id uuid.UUID) {
	c.mu.Lock()
	delete(c.entries, id)
	c.mu.Unlock()
}

func (c *FormatCache) lookup(id uuid.UUID) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[id]
	if !ok || c.now().Sub(entry.writtenAt) >= c.ttl {
		return "", false
	}
	return entry.format, true
}
