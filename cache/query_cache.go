package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize is the number of rendered queries kept by the shared cache.
const DefaultSize = 1024

// CachedQuery is a rendered statement. Key is the statement's canonical
// encoding; a lookup only counts as a hit when it matches.
type CachedQuery struct {
	Key    string
	SOQL   string
	Object string
}

type QueryCache interface {
	Get(fingerprint uint64) (*CachedQuery, bool)
	Set(fingerprint uint64, q *CachedQuery)
	Len() int
	Purge()
}

type lruQueryCache struct {
	lru *lru.Cache[uint64, *CachedQuery]
}

// NewQueryCache returns an LRU cache holding at most size rendered queries.
// A size of zero or less disables caching.
func NewQueryCache(size int) (QueryCache, error) {
	if size <= 0 {
		return nopQueryCache{}, nil
	}
	c, err := lru.New[uint64, *CachedQuery](size)
	if err != nil {
		return nil, fmt.Errorf("create query cache of size %d: %w", size, err)
	}
	return &lruQueryCache{lru: c}, nil
}

func (c *lruQueryCache) Get(f uint64) (*CachedQuery, bool) {
	return c.lru.Get(f)
}

func (c *lruQueryCache) Set(f uint64, q *CachedQuery) {
	c.lru.Add(f, q)
}

func (c *lruQueryCache) Len() int {
	return c.lru.Len()
}

func (c *lruQueryCache) Purge() {
	c.lru.Purge()
}

type nopQueryCache struct{}

func (nopQueryCache) Get(uint64) (*CachedQuery, bool) { return nil, false }
func (nopQueryCache) Set(uint64, *CachedQuery)        {}
func (nopQueryCache) Len() int                        { return 0 }
func (nopQueryCache) Purge()                          {}
