// Package service contains the business logic for the coffee builder.
package service

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/coffee-builder/internal/metrics"
	"github.com/guttosm/coffee-builder/internal/service/cache"
)

// ShardedCache spreads entries across independently locked TTL/LRU shards.
type ShardedCache[V any] struct {
	shards    []*ttlCache[V]
	numShards int
	capacity  int
}

// NewShardedCache creates a sharded cache with the given total capacity,
// TTL and shard count. numShards is rounded up to a power of two and then
// halved until every shard holds at least one entry. The capacity is split
// across shards exactly; each shard evicts by LRU on its own, so uneven key
// hashing can evict before the total capacity is reached.
func NewShardedCache[V any](capacity int, ttl time.Duration, numShards int) *ShardedCache[V] {
	if capacity < 1 {
		capacity = 1
	}
	if numShards <= 0 {
		numShards = 16
	}
	n := 1
	for n < numShards {
		n *= 2
	}
	for n > capacity {
		n /= 2
	}
	numShards = n

	perShard, remainder := capacity/numShards, capacity%numShards
	shards := make([]*ttlCache[V], numShards)
	for i := range shards {
		shardCapacity := perShard
		if i < remainder {
			shardCapacity++
		}
		shards[i] = newTTLCache[V](shardCapacity, ttl)
	}

	sc := &ShardedCache[V]{
		shards:    shards,
		numShards: numShards,
		capacity:  capacity,
	}
	metrics.UpdateCacheMetrics(0, sc.capacity)
	return sc
}

func (sc *ShardedCache[V]) getShard(key string) *ttlCache[V] {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return sc.shards[h.Sum32()&uint32(sc.numShards-1)]
}

// Get retrieves a value from the appropriate shard.
func (sc *ShardedCache[V]) Get(key string) (V, bool) {
	return sc.getShard(key).Get(key)
}

// Set stores a value in the appropriate shard.
func (sc *ShardedCache[V]) Set(key string, value V) {
	sc.getShard(key).Set(key, value)
	metrics.UpdateCacheMetrics(sc.Len(), sc.capacity)
}

// Invalidate removes a key from the appropriate shard.
func (sc *ShardedCache[V]) Invalidate(key string) {
	sc.getShard(key).Invalidate(key)
	metrics.UpdateCacheMetrics(sc.Len(), sc.capacity)
}

// Len returns the number of entries across all shards, expired ones included
// until the next cleanup.
func (sc *ShardedCache[V]) Len() int {
	total := 0
	for _, shard := range sc.shards {
		total += shard.Len()
	}
	return total
}

// Clear removes all entries from all shards.
func (sc *ShardedCache[V]) Clear() {
	for _, shard := range sc.shards {
		shard.Clear()
	}
	metrics.UpdateCacheMetrics(0, sc.capacity)
}

// Stop shuts down the cleanup goroutine of every shard.
func (sc *ShardedCache[V]) Stop() {
	for _, shard := range sc.shards {
		shard.Stop()
	}
}

// Metrics returns aggregated metrics from all shards.
func (sc *ShardedCache[V]) Metrics() cache.Metrics {
	var total cache.Metrics
	for _, shard := range sc.shards {
		m := shard.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}

// ttlCache is a thread-safe LRU cache whose entries also expire after ttl.
// Reads refresh both recency and expiry, so an active session stays alive.
type ttlCache[V any] struct {
	mu        sync.Mutex
	capacity  int
	ttl       time.Duration
	items     map[string]*cacheEntry[V]
	head      *cacheEntry[V]
	tail      *cacheEntry[V]
	stopCh    chan struct{}
	stopOnce  sync.Once
	hits      int64
	misses    int64
	evictions int64
}

type cacheEntry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
	prev      *cacheEntry[V]
	next      *cacheEntry[V]
}

// newTTLCache starts a cache with a background cleanup goroutine.
func newTTLCache[V any](capacity int, ttl time.Duration) *ttlCache[V] {
	c := &ttlCache[V]{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*cacheEntry[V], capacity),
		stopCh:   make(chan struct{}),
	}
	go c.startCleanup()
	return c
}

// Stop shuts down the cleanup goroutine. Safe to call more than once.
func (c *ttlCache[V]) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

// Metrics returns current cache performance metrics.
func (c *ttlCache[V]) Metrics() cache.Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()

	return cache.Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

// Len returns the number of stored entries.
func (c *ttlCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Get returns the value for key if present and not expired.
func (c *ttlCache[V]) Get(key string) (V, bool) {
	var zero V

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "miss")
		return zero, false
	}

	now := time.Now()
	if now.After(entry.expiresAt) {
		c.removeEntry(entry)
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "expired")
		return zero, false
	}

	entry.expiresAt = now.Add(c.ttl)
	c.moveToFront(entry)

	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation("get", "hit")
	return entry.value, true
}

// Set adds or updates a value. At capacity the least recently used entry is evicted.
func (c *ttlCache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = time.Now().Add(c.ttl)
		c.moveToFront(entry)
		return
	}

	entry := &cacheEntry[V]{
		key:       key,
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.items[key] = entry
	c.addToFront(entry)

	if len(c.items) > c.capacity {
		c.removeEntry(c.tail)
		atomic.AddInt64(&c.evictions, 1)
		metrics.RecordCacheOperation("evict", "capacity")
	}
	metrics.RecordCacheOperation("set", "success")
}

func (c *ttlCache[V]) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

// cleanup removes all expired entries.
func (c *ttlCache[V]) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for _, entry := range c.items {
		if now.After(entry.expiresAt) {
			c.removeEntry(entry)
			metrics.RecordCacheOperation("evict", "expired")
		}
	}
}

func (c *ttlCache[V]) removeEntry(entry *cacheEntry[V]) {
	delete(c.items, entry.key)
	c.unlink(entry)
}

func (c *ttlCache[V]) moveToFront(entry *cacheEntry[V]) {
	if entry == c.head {
		return
	}
	c.unlink(entry)
	c.addToFront(entry)
}

func (c *ttlCache[V]) addToFront(entry *cacheEntry[V]) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

func (c *ttlCache[V]) unlink(entry *cacheEntry[V]) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
	entry.prev = nil
	entry.next = nil
}

// Invalidate removes a specific key.
func (c *ttlCache[V]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		c.removeEntry(entry)
		metrics.RecordCacheOperation("invalidate", "success")
	}
}

// Clear removes all entries and resets counters.
func (c *ttlCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*cacheEntry[V], c.capacity)
	c.head = nil
	c.tail = nil

	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.evictions, 0)

	metrics.RecordCacheOperation("clear", "success")
}
