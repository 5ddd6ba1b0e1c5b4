package cache

import (
	"container/list"
	"fmt"
	"sync"
	"time"

	"github.com/SouthBennett/pizza/pkg/logger"
	"github.com/SouthBennett/pizza/pkg/metric"
)

type LRUCache[K comparable, V any] struct {
	name    string
	cache   map[K]*list.Element
	lruList *list.List
	mutex   sync.Mutex
	log     logger.Logger
	metrics metric.Cache

	capacity    int
	cleanupStop chan struct{}
	onEvicted   func(key K, value V)
}

type entry[K comparable, V any] struct {
	key     K
	value   V
	expires time.Time
}

// NewLRUCache builds an LRU cache of the given capacity. The name is
// used as the metrics label.
func NewLRUCache[K comparable, V any](
	name string,
	capacity int,
	log logger.Logger,
	metrics metric.Cache,
) (*LRUCache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("cache.NewLRUCache: capacity must be positive, got %d", capacity)
	}

	return &LRUCache[K, V]{
		name:     name,
		capacity: capacity,
		cache:    make(map[K]*list.Element),
		lruList:  list.New(),
		log:      log,
		metrics:  metrics,
	}, nil
}

func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	var zero V

	c.mutex.Lock()
	defer c.mutex.Unlock()

	elem, ok := c.cache[key]
	if !ok {
		c.metrics.Miss(c.name)
		return zero, false
	}

	ent := elem.Value.(*entry[K, V])
	if !ent.expires.IsZero() && time.Now().After(ent.expires) {
		c.removeElement(elem)
		c.metrics.Miss(c.name)
		return zero, false
	}

	c.lruList.MoveToFront(elem)
	c.metrics.Hit(c.name)

	return ent.value, true
}

func (c *LRUCache[K, V]) Put(key K, value V, ttl time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	var expires time.Time
	if ttl > 0 {
		expires = time.Now().Add(ttl)
	}

	if elem, ok := c.cache[key]; ok {
		ent := elem.Value.(*entry[K, V])
		c.lruList.MoveToFront(elem)
		ent.value = value
		ent.expires = expires
		return
	}

	if c.lruList.Len() >= c.capacity {
		c.removeOldest()
	}

	e := &entry[K, V]{
		key:     key,
		value:   value,
		expires: expires,
	}
	c.cache[key] = c.lruList.PushFront(e)
	c.metrics.Size(c.name, c.lruList.Len())
}

func (c *LRUCache[K, V]) Has(key K) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	elem, ok := c.cache[key]
	if !ok {
		return false
	}

	ent := elem.Value.(*entry[K, V])
	return ent.expires.IsZero() || time.Now().Before(ent.expires)
}

func (c *LRUCache[K, V]) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.lruList.Len()
}

func (c *LRUCache[K, V]) Capacity() int {
	return c.capacity
}

func (c *LRUCache[K, V]) Purge() {
	var evicted []*entry[K, V]

	c.mutex.Lock()
	for _, elem := range c.cache {
		evicted = append(evicted, elem.Value.(*entry[K, V]))
	}
	c.lruList.Init()
	clear(c.cache)
	c.mutex.Unlock()

	if c.onEvicted != nil {
		for _, ent := range evicted {
			c.onEvicted(ent.key, ent.value)
		}
	}
}

// StartCleanup launches the background sweep; calling it again
// restarts the sweep with the new interval.
func (c *LRUCache[K, V]) StartCleanup(interval time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.cleanupStop != nil {
		close(c.cleanupStop)
	}

	// The goroutine gets its own copies; it never touches the fields,
	// which a later Start/Stop may reassign.
	stop := make(chan struct{})
	c.cleanupStop = stop
	go c.runCleanup(stop, interval)
}

func (c *LRUCache[K, V]) StopCleanup() {
	c.mutex.Lock()
	if c.cleanupStop != nil {
		close(c.cleanupStop)
		c.cleanupStop = nil
	}
	c.mutex.Unlock()
}

func (c *LRUCache[K, V]) runCleanup(stop <-chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanupExpired()
		case <-stop:
			return
		}
	}
}

func (c *LRUCache[K, V]) cleanupExpired() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := time.Now()
	var toRemove []*list.Element

	for _, elem := range c.cache {
		ent := elem.Value.(*entry[K, V])
		if !ent.expires.IsZero() && now.After(ent.expires) {
			toRemove = append(toRemove, elem)
		}
	}

	for _, elem := range toRemove {
		c.removeElement(elem)
	}

	if len(toRemove) > 0 {
		c.log.Infow("cache cleanup completed",
			"cache", c.name,
			"removed", len(toRemove),
			"remaining", c.lruList.Len(),
		)
	}
}

func (c *LRUCache[K, V]) removeOldest() {
	if elem := c.lruList.Back(); elem != nil {
		c.removeElement(elem)
	}
}

func (c *LRUCache[K, V]) removeElement(elem *list.Element) {
	c.lruList.Remove(elem)
	ent := elem.Value.(*entry[K, V])
	delete(c.cache, ent.key)
	if c.onEvicted != nil {
		c.onEvicted(ent.key, ent.value)
	}
	c.metrics.Eviction(c.name, "lru")
	c.metrics.Size(c.name, c.lruList.Len())
}

func (c *LRUCache[K, V]) SetOnEvicted(onEvicted func(key K, value V)) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.onEvicted = onEvicted
}
