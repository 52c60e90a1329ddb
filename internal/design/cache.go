package design

import (
	"path/filepath"
	"sync"
)

// Cache memoizes loaded design systems keyed by the resolved stylesheet
// path. Load failures are cached as terminal errors: repeated lookups return
// the same error without touching the filesystem again.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	once sync.Once
	sys  *System
	err  error
}

// NewCache returns an empty cache. Safe for concurrent use.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*cacheEntry)}
}

// defaultCache backs the package-level Get so independent lint runs in one
// process share loaded systems.
var defaultCache = NewCache()

// Get loads the design system at path through the package-level cache.
func Get(path string) (*System, error) {
	return defaultCache.Get(path)
}

// Get returns the design system for the stylesheet at path, loading it on
// first use. Concurrent callers for the same path block until the single
// load completes.
func (c *Cache) Get(path string) (*System, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	key = filepath.Clean(key)

	c.mu.Lock()
	entry, ok := c.entries[key]
	if !ok {
		entry = &cacheEntry{}
		c.entries[key] = entry
	}
	c.mu.Unlock()

	entry.once.Do(func() {
		entry.sys, entry.err = LoadFile(key)
	})

	return entry.sys, entry.err
}

// Invalidate drops the cached entry for path so the next Get reloads from
// disk. Used by watch mode when the stylesheet itself changes; plain lint
// runs never call it.
func (c *Cache) Invalidate(path string) {
	key, err := filepath.Abs(path)
	if err != nil {
		return
	}

	c.mu.Lock()
	delete(c.entries, filepath.Clean(key))
	c.mu.Unlock()
}

// Invalidate drops the entry for path from the package-level cache.
func Invalidate(path string) {
	defaultCache.Invalidate(path)
}
