package triestore

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// lookupKey identifies one (version, key) lookup result.
type lookupKey struct {
	version uint64
	key     string
}

// lookupCache remembers recent successful lookups. A committed
// version's content never changes, so entries cannot go stale; eviction
// is purely about memory.
type lookupCache struct {
	recent *lru.Cache[lookupKey, any]

	hits   int64
	misses int64
}

// newLookupCache creates a cache holding up to size entries. A size of
// zero or below selects DefaultCacheSize.
func newLookupCache(size int) (*lookupCache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}

	recent, err := lru.New[lookupKey, any](size)
	if err != nil {
		return nil, err
	}

	return &lookupCache{recent: recent}, nil
}

// get retrieves a cached lookup result.
func (c *lookupCache) get(version uint64, key string) (any, bool) {
	value, found := c.recent.Get(lookupKey{version: version, key: key})
	if found {
		atomic.AddInt64(&c.hits, 1)
		return value, true
	}

	atomic.AddInt64(&c.misses, 1)
	return nil, false
}

// add stores a lookup result.
func (c *lookupCache) add(version uint64, key string, value any) {
	c.recent.Add(lookupKey{version: version, key: key}, value)
}

// stats returns cache performance counters.
func (c *lookupCache) stats() CacheStats {
	hits := atomic.LoadInt64(&c.hits)
	misses := atomic.LoadInt64(&c.misses)

	total := hits + misses
	hitRate := float64(0)
	if total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return CacheStats{
		Hits:    hits,
		Misses:  misses,
		HitRate: hitRate,
		Len:     c.recent.Len(),
	}
}

// CacheStats holds lookup cache performance metrics.
type CacheStats struct {
	Hits    int64
	Misses  int64
	HitRate float64
	Len     int
}
