package artwork

import (
	"sync"

	"github.com/llehouerou/topplays/internal/history"
)

// Cache remembers resolved artwork for one listening range. An entry with an
// empty URL means resolution was attempted and found nothing. Entries are
// never overwritten; Reset drops them all.
type Cache struct {
	mu      sync.RWMutex
	entries map[history.Key]string
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[history.Key]string)}
}

// Get returns the cached URL and whether key was attempted.
func (c *Cache) Get(key history.Key) (url string, attempted bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	url, attempted = c.entries[key]
	return url, attempted
}

// Put records the outcome for key unless one is already stored. It returns
// the URL that ends up cached.
func (c *Cache) Put(key history.Key, url string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[key]; ok {
		return existing
	}
	c.entries[key] = url
	return url
}

// Reset drops every entry.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[history.Key]string)
}

// Len returns the number of attempted keys.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
