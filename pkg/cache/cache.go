package cache

import (
	"time"
)

// Cache is a bounded key-value store with per-entry TTL. The service
// uses it keyed by email to answer duplicate-order checks without a
// database roundtrip.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Put(key K, value V, ttl time.Duration)
	Has(key K) bool
	Len() int
	Capacity() int
	Purge()
	StartCleanup(interval time.Duration)
	StopCleanup()
	SetOnEvicted(onEvicted func(key K, value V))
}
