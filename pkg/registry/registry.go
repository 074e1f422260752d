// Package registry holds the keyed tables behind the Arbor runtime:
// behaviors, templates and commands.
//
// Every table is last-registration-wins: registering an id that already exists
// replaces the previous entry. Locks are held only for the map access itself,
// never while a reaction or command executes.
package registry

import (
	"sort"
	"sync"
)

// table is a concurrency-safe id-keyed map shared by the concrete registries.
type table[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
}

func newTable[V any]() *table[V] {
	return &table[V]{entries: make(map[string]V)}
}

// put stores v under id and reports whether an earlier entry was replaced.
func (t *table[V]) put(id string, v V) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, replaced := t.entries[id]
	t.entries[id] = v
	return replaced
}

func (t *table[V]) get(id string) (V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.entries[id]
	return v, ok
}

// ids returns all keys in sorted order.
func (t *table[V]) ids() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// values returns all entries ordered by key.
func (t *table[V]) values() []V {
	t.mu.RLock()
	defer t.mu.RUnlock()
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]V, 0, len(keys))
	for _, k := range keys {
		out = append(out, t.entries[k])
	}
	return out
}

func (t *table[V]) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
