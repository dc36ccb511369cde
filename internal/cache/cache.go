// Package cache provides a TTL-bounded, size-bounded in-memory response
// cache keyed by a hash of the conversation transcript.
package cache

import (
	"container/list"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/swiftherb/swiftherb-server/internal/domain"
)

// DefaultMaxSize is the entry cap used when no explicit size is given.
const DefaultMaxSize = 100

type entry[V any] struct {
	value     V
	createdAt time.Time
	ttl       time.Duration
	elem      *list.Element
}

// Cache is a mutex-guarded in-memory cache. Entries expire lazily on
// read once their TTL has passed; when the cache is full, inserting a
// new key evicts the oldest entry by insertion order. This is not a true
// LRU: access does not refresh an entry's position.
//
// The cache is process-local. Everything in it is lost on restart.
type Cache[V any] struct {
	mu      sync.Mutex
	entries map[string]*entry[V]
	order   *list.List // keys, oldest first
	maxSize int
}

// New creates a cache holding at most maxSize entries. A non-positive
// maxSize falls back to DefaultMaxSize.
func New[V any](maxSize int) *Cache[V] {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Cache[V]{
		entries: make(map[string]*entry[V]),
		order:   list.New(),
		maxSize: maxSize,
	}
}

// Get returns the value stored under key. Expired entries are removed
// and reported as absent.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}

	if time.Since(e.createdAt) > e.ttl {
		c.remove(key, e)
		return zero, false
	}

	return e.value, true
}

// Set stores value under key with the given TTL. Inserting a new key
// into a full cache evicts the single oldest-inserted entry first.
// Setting an existing key refreshes its value and TTL in place.
func (c *Cache[V]) Set(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		e.createdAt = time.Now()
		e.ttl = ttl
		return
	}

	if len(c.entries) >= c.maxSize {
		if oldest := c.order.Front(); oldest != nil {
			oldestKey := oldest.Value.(string)
			c.remove(oldestKey, c.entries[oldestKey])
		}
	}

	c.entries[key] = &entry[V]{
		value:     value,
		createdAt: time.Now(),
		ttl:       ttl,
		elem:      c.order.PushBack(key),
	}
}

// Delete removes the entry stored under key, if any.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.remove(key, e)
	}
}

// Clear removes every entry.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*entry[V])
	c.order.Init()
}

// Len returns the number of physically present entries, expired or not.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// remove expects c.mu to be held.
func (c *Cache[V]) remove(key string, e *entry[V]) {
	c.order.Remove(e.elem)
	delete(c.entries, key)
}

// Key derives a deterministic cache key from a conversation transcript
// plus the new user message. The same transcript always hashes to the
// same key; any change in content or ordering yields a different key
// with high probability. Collisions are tolerated as a rare
// cache-correctness risk.
func Key(messages []domain.Message, userMessage string) string {
	transcript := make([]domain.Message, 0, len(messages)+1)
	transcript = append(transcript, messages...)
	transcript = append(transcript, domain.Message{Role: domain.RoleUser, Content: userMessage})

	// Marshal of a slice of plain structs cannot fail.
	serialized, _ := json.Marshal(transcript)

	// 32-bit rolling hash over the serialized transcript.
	var h int32
	for _, b := range serialized {
		h = h*31 + int32(b)
	}

	n := int64(h)
	if n < 0 {
		n = -n
	}
	return fmt.Sprintf("ai_response_%d", n)
}
