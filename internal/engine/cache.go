package engine

import (
	"sync"

	"svw.info/cephalopod/internal/game"
)

// Cache memoizes aggregates by state hash. Entries are only meaningful for a
// single max depth, so a cache must not be shared across problems with
// different depth bounds.
type Cache interface {
	Lookup(h game.Hash) (game.Result, bool)
	Store(h game.Hash, r game.Result)
	Len() int
}

// MapCache is the plain single-goroutine cache.
type MapCache struct {
	results map[game.Hash]game.Result
}

func NewMapCache() *MapCache {
	return &MapCache{results: make(map[game.Hash]game.Result)}
}

func (c *MapCache) Lookup(h game.Hash) (game.Result, bool) {
	r, ok := c.results[h]
	return r, ok
}

func (c *MapCache) Store(h game.Hash, r game.Result) { c.results[h] = r }

func (c *MapCache) Len() int { return len(c.results) }

// NopCache never remembers anything.
type NopCache struct{}

func (NopCache) Lookup(game.Hash) (game.Result, bool) { return 0, false }
func (NopCache) Store(game.Hash, game.Result)         {}
func (NopCache) Len() int                             { return 0 }

// ShardedCache is safe for concurrent use. Each stripe owns its own map and
// lock; the stripe is picked from the mixed hash.
type ShardedCache struct {
	stripes []cacheStripe
	mask    uint64
}

type cacheStripe struct {
	mu      sync.RWMutex
	results map[game.Hash]game.Result
}

const defaultStripes = 64

// NewShardedCache rounds stripes up to a power of two.
func NewShardedCache(stripes int) *ShardedCache {
	if stripes <= 0 {
		stripes = defaultStripes
	}
	n := 1
	for n < stripes {
		n <<= 1
	}
	c := &ShardedCache{stripes: make([]cacheStripe, n), mask: uint64(n - 1)}
	for i := range c.stripes {
		c.stripes[i].results = make(map[game.Hash]game.Result)
	}
	return c
}

func (c *ShardedCache) stripe(h game.Hash) *cacheStripe {
	return &c.stripes[mix(uint64(h))&c.mask]
}

func (c *ShardedCache) Lookup(h game.Hash) (game.Result, bool) {
	s := c.stripe(h)
	s.mu.RLock()
	r, ok := s.results[h]
	s.mu.RUnlock()
	return r, ok
}

func (c *ShardedCache) Store(h game.Hash, r game.Result) {
	s := c.stripe(h)
	s.mu.Lock()
	s.results[h] = r
	s.mu.Unlock()
}

func (c *ShardedCache) Len() int {
	n := 0
	for i := range c.stripes {
		s := &c.stripes[i]
		s.mu.RLock()
		n += len(s.results)
		s.mu.RUnlock()
	}
	return n
}

// mix spreads the low cell nibbles so neighbouring boards land on different
// stripes (splitmix64 finalizer).
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
