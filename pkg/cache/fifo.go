package cache

import (
	"container/list"
	"sync"

	"golang.org/x/sync/singleflight"
)

// DefaultCapacity is the entry limit used when NewFIFO is given a
// non-positive capacity.
const DefaultCapacity = 20

// fifoEntry holds a cached value together with its key, so eviction can
// remove the map entry from the list element alone.
type fifoEntry[V any] struct {
	value V
	key   string
}

// FIFO is a bounded in-memory cache that evicts the oldest-inserted entry
// once it grows past its capacity. Reads do not affect eviction order.
//
// It uses a hash map for O(1) lookups and a doubly-linked list for O(1)
// eviction ordering. The most recently inserted entries are at the front of
// the list; the oldest are at the back.
type FIFO[V any] struct {
	items    map[string]*list.Element
	order    *list.List
	onEvict  func(key string, value V)
	group    singleflight.Group
	capacity int
	mu       sync.Mutex
}

// NewFIFO creates a bounded FIFO cache holding at most capacity entries.
// A non-positive capacity falls back to DefaultCapacity.
func NewFIFO[V any](capacity int) *FIFO[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &FIFO[V]{
		items:    make(map[string]*list.Element),
		order:    list.New(),
		capacity: capacity,
	}
}

// SetEvictCallback sets a callback function that is called when entries
// leave the cache, whether through FIFO eviction or clearing.
func (f *FIFO[V]) SetEvictCallback(fn func(key string, value V)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onEvict = fn
}

// Get retrieves a value by key.
// Returns ErrNotFound if the key does not exist. A hit does not refresh the
// entry's position in the eviction order.
func (f *FIFO[V]) Get(key string) (V, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	elem, ok := f.items[key]
	if !ok {
		var zero V
		return zero, ErrNotFound
	}

	return elem.Value.(*fifoEntry[V]).value, nil
}

// Set stores a value. Inserting a new key while at capacity evicts the
// oldest-inserted entry. Updating an existing key keeps its original
// position in the eviction order.
func (f *FIFO[V]) Set(key string, value V) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if elem, ok := f.items[key]; ok {
		elem.Value.(*fifoEntry[V]).value = value
		return
	}

	if len(f.items) >= f.capacity {
		f.evictOldest()
	}

	e := &fifoEntry[V]{key: key, value: value}
	f.items[key] = f.order.PushFront(e)
}

// Has checks whether a key exists.
func (f *FIFO[V]) Has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.items[key]
	return ok
}

// Len returns the number of cached entries.
func (f *FIFO[V]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

// Clear removes all entries from the cache.
func (f *FIFO[V]) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.onEvict != nil {
		for _, elem := range f.items {
			e := elem.Value.(*fifoEntry[V])
			f.onEvict(e.key, e.value)
		}
	}

	f.items = make(map[string]*list.Element)
	f.order.Init()
}

// GetOrSet retrieves a value from the cache, or calls fn to compute it on a
// miss. Concurrent misses for the same key are deduplicated with
// singleflight, so fn runs only once. If fn returns an error, nothing is
// cached and the error is returned.
func (f *FIFO[V]) GetOrSet(key string, fn func() (V, error)) (V, error) {
	if v, err := f.Get(key); err == nil {
		return v, nil
	}

	v, err, _ := f.group.Do(key, func() (any, error) {
		val, err := fn()
		if err != nil {
			return nil, err
		}
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	val := v.(V)
	f.Set(key, val)

	return val, nil
}

// evictOldest removes the oldest-inserted entry.
// Caller must hold the mutex.
func (f *FIFO[V]) evictOldest() {
	elem := f.order.Back()
	if elem == nil {
		return
	}

	f.order.Remove(elem)
	e := elem.Value.(*fifoEntry[V])
	delete(f.items, e.key)

	if f.onEvict != nil {
		f.onEvict(e.key, e.value)
	}
}
