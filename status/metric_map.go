package status

import (
	"maps"
	"slices"
	"sync"
)

// MetricMap lazily allocates one metric of type T per key
// The simulation writes on the game goroutine while the HUD and the exit log read; a pointer never moves once handed out
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, allocating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	if ptr := m.lookup(key); ptr != nil {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	ptr, ok := m.items[key]
	if !ok {
		ptr = new(T)
		m.items[key] = ptr
	}
	return ptr
}

// lookup returns nil for keys never written
func (m *MetricMap[T]) lookup(key string) *T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.items[key]
}

func (m *MetricMap[T]) Has(key string) bool {
	return m.lookup(key) != nil
}

// Keys returns every key in sorted order
func (m *MetricMap[T]) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.items))
}

// Range visits a snapshot of the metrics in key order; fn may call Get without deadlocking
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	snapshot := maps.Clone(m.items)
	m.mu.RUnlock()

	for _, k := range slices.Sorted(maps.Keys(snapshot)) {
		fn(k, snapshot[k])
	}
}

func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
