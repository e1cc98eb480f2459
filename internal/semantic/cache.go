// Package semantic scores section-level meaning overlap between a résumé and
// a posting using embedding vectors, with safety rails that keep surface-level
// similarity from inflating the score.
package semantic

import (
	"container/list"
	"strings"
	"sync"
)

// DefaultCacheSize is the embedding cache capacity.
const DefaultCacheSize = 1000

// Cache is a process-lifetime LRU cache of embedding vectors keyed by
// trimmed, lowercased text. Concurrent scoring calls may occasionally embed
// the same text twice; last write wins, which is harmless since embeddings
// for identical text are identical.
type Cache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	items    map[string]*list.Element
}

type cacheEntry struct {
	key string
	vec []float32
}

// NewCache creates a cache holding up to capacity vectors. Non-positive
// capacities fall back to the default.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	return &Cache{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[string]*list.Element),
	}
}

func cacheKey(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Get returns the cached vector for the text, refreshing its recency.
func (c *Cache) Get(text string) ([]float32, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.items[cacheKey(text)]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).vec, true
}

// Put stores a vector, evicting the least recently used entry at capacity.
func (c *Cache) Put(text string, vec []float32) {
	key := cacheKey(text)
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		el.Value.(*cacheEntry).vec = vec
		c.order.MoveToFront(el)
		return
	}
	c.items[key] = c.order.PushFront(&cacheEntry{key: key, vec: vec})
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).key)
	}
}

// Len returns the number of cached vectors.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
