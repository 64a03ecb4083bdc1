// Package cache provides the bounded memoization cache for working-day
// tallies.
//
// It offers an LRU store of integer counts with an injectable capacity, and
// a deterministic SHA-256 based Keyer for deriving cache keys from query
// fields. Eviction is least-recently-used once capacity is exceeded, and is
// testable in isolation from the engine that owns the cache.
package cache
