// Package cache provides a small bounded in-memory cache with strict FIFO
// eviction.
//
// Unlike an LRU cache, a hit does not refresh an entry's position: once the
// cache is full, the entry inserted earliest is always the one evicted,
// regardless of how often it has been read since. Eviction order is therefore
// fully determined by insertion order, which keeps repeated-lookup behavior
// predictable for callers that layer the cache in front of a deterministic
// source of truth.
//
//	c := cache.NewFIFO[string](20)
//	c.Set("title", "Dashboard")
//	v, err := c.Get("title")
//
// GetOrSet combines the miss path with a singleflight-deduplicated fill, so
// concurrent misses for the same key invoke the fill function only once.
package cache
