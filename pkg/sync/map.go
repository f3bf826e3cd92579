// Package sync contains a type-safe wrapper around the standard library's sync.Map.
package sync

import "sync"

// TypedSyncMap is a sync.Map restricted to a single key and value type.
// The zero value is empty and ready for use.
type TypedSyncMap[K comparable, V any] struct {
	m sync.Map
}

func (m *TypedSyncMap[K, V]) Delete(key K) { m.m.Delete(key) }

func (m *TypedSyncMap[K, V]) Load(key K) (V, bool) {
	v, ok := m.m.Load(key)
	if !ok {
		return *new(V), ok
	}

	if vv, ok := v.(V); ok {
		return vv, true
	}
	return *new(V), false
}

func (m *TypedSyncMap[K, V]) Store(key K, value V) { m.m.Store(key, value) }

// Range calls f for each entry in the map, stopping early if f returns false.
func (m *TypedSyncMap[K, V]) Range(f func(key K, value V) bool) {
	m.m.Range(func(k, v any) bool {
		return f(k.(K), v.(V))
	})
}

// Values returns a snapshot of every value in the map, in no particular order.
func (m *TypedSyncMap[K, V]) Values() []V {
	values := make([]V, 0)
	m.Range(func(_ K, value V) bool {
		values = append(values, value)
		return true
	})

	return values
}
