package chord

import "sync"

// Cache memoizes centroid extraction on top of another Source.
// It is safe for concurrent use, so solvers running in parallel may share it.
type Cache struct {
	mu   sync.RWMutex
	src  Source
	memo map[string]Centroids
}

// NewCache wraps src with a memo table.
func NewCache(src Source) *Cache {
	return &Cache{src: src, memo: make(map[string]Centroids)}
}

// Centroids returns the memoized centroids of name, extracting them from the
// wrapped Source on first use. Lookup errors are not cached.
func (c *Cache) Centroids(name string) (Centroids, error) {
	key := Normalize(name)

	c.mu.RLock()
	v, ok := c.memo[key]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	v, err := c.src.Centroids(key)
	if err != nil {
		return Centroids{}, err
	}

	c.mu.Lock()
	c.memo[key] = v
	c.mu.Unlock()

	return v, nil
}

// Len returns the number of memoized chords.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.memo)
}

// Precompute fills the memo for every name. It stops at the first error.
func (c *Cache) Precompute(names []string) error {
	for _, n := range names {
		if _, err := c.Centroids(n); err != nil {
			return err
		}
	}
	return nil
}
