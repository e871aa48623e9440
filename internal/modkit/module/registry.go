package module

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds the mounted modules by name so late wiring and diagnostics
// can find them
type Registry struct {
	mu   sync.RWMutex
	mods map[string]Module
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry { return &Registry{mods: map[string]Module{}} }

// Add registers m; a second module with the same name is a wiring bug
func (r *Registry) Add(m Module) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.mods[m.Name()]; dup {
		panic(fmt.Sprintf("module: %q registered twice", m.Name()))
	}
	r.mods[m.Name()] = m
}

// Get returns the module registered as name
func (r *Registry) Get(name string) (Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.mods[name]
	return m, ok
}

// Names lists the registered modules in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.mods))
	for n := range r.mods {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Lookup resolves a T from the ports of the module registered as name
func Lookup[T any](r *Registry, name string) (T, bool) {
	m, ok := r.Get(name)
	if !ok {
		var zero T
		return zero, false
	}
	return PortsOf[T](m)
}
