package cache

import "sync"

// DefaultCapacity is the number of entries an LRU holds when no capacity is
// configured. It mirrors the bound the service applies to memoized tallies.
const DefaultCapacity = 1000

// LRU is a bounded in-memory store of integer values with least-recently-used
// eviction. It is safe for concurrent use.
//
// Contract:
//   - Get marks the entry as most recently used.
//   - Set inserts or updates an entry; when the store is over capacity the
//     least-recently-used entry is evicted.
//   - Writes to the same key are idempotent from the caller's perspective: a
//     key always maps to the same computed value.
type LRU struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*node

	// head is the most recently used entry, tail the least.
	head *node
	tail *node

	hits      uint64
	misses    uint64
	evictions uint64
}

// node is one entry in the usage-ordered doubly-linked list.
type node struct {
	key   string
	value int
	prev  *node
	next  *node
}

// NewLRU creates an LRU with the given capacity. A capacity of zero or less
// means DefaultCapacity.
func NewLRU(capacity int) *LRU {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &LRU{
		capacity: capacity,
		entries:  make(map[string]*node, capacity),
	}
}

// Get retrieves a value and marks it most recently used.
func (c *LRU) Get(key string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.entries[key]
	if !ok {
		c.misses++
		return 0, false
	}
	c.hits++
	c.moveToFront(n)
	return n.value, true
}

// Set stores a value as the most recently used entry, evicting the least
// recently used entry if the store is full.
func (c *LRU) Set(key string, value int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[key]; ok {
		n.value = value
		c.moveToFront(n)
		return
	}

	if len(c.entries) >= c.capacity {
		c.evictOldest()
	}

	n := &node{key: key, value: value}
	c.entries[key] = n
	c.pushFront(n)
}

// Len returns the number of entries currently held.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the configured bound.
func (c *LRU) Capacity() int {
	return c.capacity
}

// Stats reports cumulative hits, misses and evictions.
func (c *LRU) Stats() (hits, misses, evictions uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses, c.evictions
}

func (c *LRU) evictOldest() {
	if c.tail == nil {
		return
	}
	oldest := c.tail
	c.unlink(oldest)
	delete(c.entries, oldest.key)
	c.evictions++
}

func (c *LRU) pushFront(n *node) {
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

func (c *LRU) unlink(n *node) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev = nil
	n.next = nil
}

func (c *LRU) moveToFront(n *node) {
	if c.head == n {
		return
	}
	c.unlink(n)
	c.pushFront(n)
}
