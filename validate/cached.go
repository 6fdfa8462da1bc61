package validate

import (
	"sync"
	"time"

	"propcheck/check"
)

// Cached memoizes a Validator's results keyed by a fingerprint of the
// input map. Entries expire after the configured TTL (zero means no
// expiry). Once maxEntries live entries exist, new fingerprints are
// validated but not stored; nothing is evicted. The cache is never
// invalidated automatically; clear it when the schema changes.
type Cached struct {
	wrapped    Validator
	maxEntries int
	ttl        time.Duration

	mu      sync.Mutex // guards insertions so size never exceeds maxEntries
	entries sync.Map   // fingerprint -> *cacheEntry
	size    int

	now func() time.Time
}

type cacheEntry struct {
	result check.Result
	at     time.Time
}

// NewCached wraps v with a cache of at most maxEntries results, each live
// for ttl.
func NewCached(v Validator, maxEntries int, ttl time.Duration) *Cached {
	return &Cached{
		wrapped:    v,
		maxEntries: maxEntries,
		ttl:        ttl,
		now:        time.Now,
	}
}

// Validate returns the cached result for an equivalent input map when a
// live entry exists, and otherwise delegates to the wrapped validator and
// caches the outcome. Concurrent callers may both miss and both compute;
// validation is pure, so whichever result lands first is as good as the
// other.
func (c *Cached) Validate(props map[string]string) check.Result {
	key := check.Fingerprint(props)

	if e, ok := c.entries.Load(key); ok {
		entry := e.(*cacheEntry)
		if c.ttl <= 0 || c.now().Sub(entry.at) < c.ttl {
			return entry.result
		}

		c.expire(key)
	}

	res := c.wrapped.Validate(props)
	c.store(key, res)

	return res
}

// CacheSize returns the number of stored entries, expired ones included
// until a lookup sweeps them.
func (c *Cached) CacheSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.size
}

// ClearCache drops every entry.
func (c *Cached) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.Range(func(k, _ any) bool {
		c.entries.Delete(k)
		return true
	})

	c.size = 0
}

func (c *Cached) store(key string, res check.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxEntries > 0 && c.size >= c.maxEntries {
		return
	}

	if _, loaded := c.entries.LoadOrStore(key, &cacheEntry{result: res, at: c.now()}); !loaded {
		c.size++
	}
}

func (c *Cached) expire(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries.Load(key); ok {
		c.entries.Delete(key)
		c.size--
	}
}
