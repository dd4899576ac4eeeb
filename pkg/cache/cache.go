package cache

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/sitelens/website-profiler/pkg/interfaces"
)

// ErrNotFound is returned when a key is absent or expired.
var ErrNotFound = errors.New("cache: key not found")

type entry struct {
	value     []byte
	storedAt  time.Time
	expiresAt time.Time
}

// MemoryCache is an in-memory TTL cache for serialized profiles.
type MemoryCache struct {
	mu              sync.RWMutex
	entries         map[string]entry
	defaultTTL      time.Duration
	maxEntries      int
	cleanupInterval time.Duration
	stop            chan struct{}
	stopOnce        sync.Once
}

// New creates a MemoryCache and starts its cleanup goroutine.
// Call Close to stop it.
func New(defaultTTL time.Duration, maxEntries int) *MemoryCache {
	c := &MemoryCache{
		entries:         make(map[string]entry),
		defaultTTL:      defaultTTL,
		maxEntries:      maxEntries,
		cleanupInterval: 5 * time.Minute,
		stop:            make(chan struct{}),
	}

	go c.periodicCleanup()

	return c
}

// Get returns the value for key, or ErrNotFound when absent or expired.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(e.expiresAt) {
		return nil, ErrNotFound
	}

	return e.value, nil
}

// Set stores value under key. A ttl of 0 seconds uses the default TTL.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl int) error {
	d := c.defaultTTL
	if ttl > 0 {
		d = time.Duration(ttl) * time.Second
	}

	now := time.Now()

	c.mu.Lock()
	c.entries[key] = entry{
		value:     value,
		storedAt:  now,
		expiresAt: now.Add(d),
	}
	if c.maxEntries > 0 && len(c.entries) > c.maxEntries {
		c.evictOldestLocked()
	}
	c.mu.Unlock()

	return nil
}

// Delete removes key from the cache.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()

	return nil
}

// Len returns the number of entries currently stored, including
// expired ones not yet cleaned up.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close stops the cleanup goroutine.
func (c *MemoryCache) Close() {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
}

// periodicCleanup removes expired entries until Close is called.
func (c *MemoryCache) periodicCleanup() {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stop:
			return
		}
	}
}

// cleanup removes expired entries and enforces the size limit.
func (c *MemoryCache) cleanup() {
	now := time.Now()

	c.mu.Lock()
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
	if c.maxEntries > 0 && len(c.entries) > c.maxEntries {
		c.evictOldestLocked()
	}
	c.mu.Unlock()
}

// evictOldestLocked removes the oldest entries until under the size
// limit. Caller must hold the write lock.
func (c *MemoryCache) evictOldestLocked() {
	type aged struct {
		key      string
		storedAt time.Time
	}

	entries := make([]aged, 0, len(c.entries))
	for key, e := range c.entries {
		entries = append(entries, aged{key, e.storedAt})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].storedAt.Before(entries[j].storedAt)
	})

	for i := 0; i < len(entries)-c.maxEntries; i++ {
		delete(c.entries, entries[i].key)
	}
}

// Ensure MemoryCache implements interfaces.Cache
var _ interfaces.Cache = (*MemoryCache)(nil)
