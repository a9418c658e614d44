// Package syncutil holds concurrency helpers.
package syncutil

import (
	"cmp"
	"maps"
	"slices"
	"sync"
)

// Map is a map guarded by a [sync.RWMutex]. The zero value is ready to use.
type Map[K cmp.Ordered, V any] struct {
	mu   sync.RWMutex
	data map[K]V
}

func (m *Map[K, V]) Load(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *Map[K, V]) Store(key K, val V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[K]V)
	}
	m.data[key] = val
}

func (m *Map[K, V]) Delete(key K) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}

func (m *Map[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Keys returns a sorted snapshot of the keys.
func (m *Map[K, V]) Keys() []K {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.data))
}
