package threadsafe

import "sync"

// Map provides a simple locked map[K]V in order to make it thread safe
type Map[K comparable, V any] struct {
	mu     sync.RWMutex
	values map[K]V
}

// NewMap creates a new thread safe map
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		values: make(map[K]V),
	}
}

// Size returns the amount of stored K-V-pairs
func (safeMap *Map[K, V]) Size() int {
	safeMap.mu.RLock()
	defer safeMap.mu.RUnlock()
	return len(safeMap.values)
}

// Lookup looks up a specific key and returns the corresponding value and a boolean indicating if it was found
func (safeMap *Map[K, V]) Lookup(key K) (V, bool) {
	safeMap.mu.RLock()
	defer safeMap.mu.RUnlock()
	val, ok := safeMap.values[key]
	return val, ok
}

// Set sets the value of a specific key
func (safeMap *Map[K, V]) Set(key K, val V) {
	safeMap.mu.Lock()
	defer safeMap.mu.Unlock()
	safeMap.values[key] = val
}

// Remove removes the value of a specific key
func (safeMap *Map[K, V]) Remove(key K) {
	safeMap.mu.Lock()
	defer safeMap.mu.Unlock()
	delete(safeMap.values, key)
}

// Range calls fn for every stored K-V-pair.
// It iterates over a snapshot taken under the read lock, so fn may safely
// call Set or Remove on the map itself.
func (safeMap *Map[K, V]) Range(fn func(key K, val V)) {
	safeMap.mu.RLock()
	snapshot := make(map[K]V, len(safeMap.values))
	for key, val := range safeMap.values {
		snapshot[key] = val
	}
	safeMap.mu.RUnlock()

	for key, val := range snapshot {
		fn(key, val)
	}
}
