// 📁 internals/collections/registry.go
package collections

import (
	"encoding/json"
	"sort"
	"sync"
)

// Collection is the type-erased face of a Store[T], for callers that address
// collections by name (the websocket endpoint, the change listener).
type Collection interface {
	Name() string
	SubscribeJSON(fn func(items json.RawMessage)) (func(), error)
	Refresh()
}

type Registry struct {
	mu   sync.RWMutex
	cols map[string]Collection
}

func NewRegistry() *Registry {
	return &Registry{cols: make(map[string]Collection)}
}

func (r *Registry) Register(c Collection) {
	r.mu.Lock()
	r.cols[c.Name()] = c
	r.mu.Unlock()
}

func (r *Registry) Lookup(name string) (Collection, bool) {
	r.mu.RLock()
	c, ok := r.cols[name]
	r.mu.RUnlock()
	return c, ok
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.cols))
	for name := range r.cols {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}
