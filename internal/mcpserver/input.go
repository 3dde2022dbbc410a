package mcpserver

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zeebo/blake3"

	"github.com/erraggy/fdtools/closure"
	"github.com/erraggy/fdtools/fd"
)

// dependencyInput is one functional dependency lhs -> rhs.
type dependencyInput struct {
	LHS []string `json:"lhs" jsonschema:"Attribute names on the left-hand side"`
	RHS []string `json:"rhs" jsonschema:"Attribute names on the right-hand side"`
}

// relationInput is a schema with the dependencies that hold over it.
type relationInput struct {
	Schema []string          `json:"schema"         jsonschema:"Attribute names of the schema, e.g. [\"A\",\"B\",\"C\",\"D\"]"`
	FDs    []dependencyInput `json:"fds,omitempty"  jsonschema:"Functional dependencies over the schema"`
}

// cacheEntry holds a cached closure with LRU ordering and TTL expiry.
type cacheEntry struct {
	result    *closure.Result
	insertAt  time.Time
	expiresAt time.Time
}

// closureCacheStore provides a session-scoped cache of computed closures,
// keyed by a BLAKE3 digest of the canonical schema and dependency set.
// Entries expire after cfg.CacheTTL and a background sweeper removes them.
type closureCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var closureCache = &closureCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached result or nil. Expired entries are lazily removed.
func (c *closureCacheStore) get(key string) *closure.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
			delete(c.entries, key)
			return nil
		}
		// Touch entry for LRU.
		e.insertAt = time.Now()
		return e.result
	}
	return nil
}

// put stores a result, evicting the least recently used entry if at capacity.
func (c *closureCacheStore) put(key string, result *closure.Result, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{result: result, insertAt: now, expiresAt: now.Add(ttl)}

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = entry
}

// sweep removes all expired entries from the cache.
func (c *closureCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a background goroutine that periodically removes expired entries.
// It is safe to call multiple times; only the first call spawns a sweeper.
// It stops when ctx is cancelled.
func (c *closureCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *closureCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *closureCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// makeCacheKey digests the canonical form of schema and seed, so inputs
// that differ only in attribute or dependency order share an entry.
func makeCacheKey(schema fd.AttributeSet, seed *fd.Set) string {
	var b strings.Builder
	b.WriteString(schema.Key())
	for _, f := range seed.Sorted() {
		k := f.Key()
		b.WriteString("\n")
		b.WriteString(k.LHS)
		b.WriteString("\x1e")
		b.WriteString(k.RHS)
	}
	h := blake3.Sum256([]byte(b.String()))
	return hex.EncodeToString(h[:])
}

// resolve validates the relation and returns its closure, using the cache
// when it is enabled.
func (r relationInput) resolve() (*closure.Result, error) {
	if len(r.Schema) == 0 {
		return nil, fmt.Errorf("schema must list at least one attribute")
	}
	if len(r.FDs) > cfg.MaxDependencies {
		return nil, fmt.Errorf("%d dependencies exceed the maximum of %d; set FDTOOLS_MAX_DEPENDENCIES to increase",
			len(r.FDs), cfg.MaxDependencies)
	}
	schema, err := fd.NewAttributeSet(r.Schema...)
	if err != nil {
		return nil, err
	}
	pairs := make([]fd.Pair, len(r.FDs))
	for i, d := range r.FDs {
		pairs[i] = fd.Pair{LHS: d.LHS, RHS: d.RHS}
	}
	seed, err := fd.SeedFromPairs(pairs...).Resolve(schema)
	if err != nil {
		return nil, err
	}

	var key string
	if cfg.CacheEnabled {
		key = makeCacheKey(schema, seed)
		if cached := closureCache.get(key); cached != nil {
			return cached, nil
		}
	}

	c := closure.New()
	c.MaxAttributes = cfg.MaxAttributes
	result, err := c.Compute(schema, fd.SeedFromSet(seed))
	if err != nil {
		return nil, err
	}

	if key != "" {
		closureCache.put(key, result, cfg.CacheTTL)
	}
	return result, nil
}

