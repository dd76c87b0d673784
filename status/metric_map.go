package status

import (
	"sort"
	"sync"
)

// MetricMap is a registry of named metrics of type T
// Registration takes the lock; the returned pointer is then used lock-free
// Keys are kept sorted at registration so Range never sorts
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
	keys  []string
}

// NewMetricMap creates an initialized MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{
		items: make(map[string]*T),
	}
}

// Get returns the metric for key, registering it on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Another writer may have registered it between the locks
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[key] = ptr
	i := sort.SearchStrings(m.keys, key)
	m.keys = append(m.keys, "")
	copy(m.keys[i+1:], m.keys[i:])
	m.keys[i] = key
	return ptr
}

// Lookup returns the metric for key without registering it
func (m *MetricMap[T]) Lookup(key string) (*T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ptr, ok := m.items[key]
	return ptr, ok
}

// Range visits every metric in key order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, k := range m.keys {
		fn(k, m.items[k])
	}
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.keys)
}
