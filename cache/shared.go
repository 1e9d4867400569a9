package cache

import "sync"

var (
	sharedOnce  sync.Once
	sharedCache QueryCache
)

// Shared returns the process wide cache used by builders that were not given
// one explicitly. The lru cache is safe for concurrent use.
func Shared() QueryCache {
	sharedOnce.Do(func() {
		c, err := NewQueryCache(DefaultSize)
		if err != nil {
			// DefaultSize is positive, lru.New cannot fail.
			panic(err)
		}
		sharedCache = c
	})
	return sharedCache
}
