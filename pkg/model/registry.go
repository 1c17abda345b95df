package model

import (
	"fmt"
	"strings"
	"sync"
)

// Registry tracks model metadata keyed by "app.name". Callers can register
// new models or replace existing entries; lookups are safe for concurrent
// use.
type Registry struct {
	mu     sync.RWMutex
	models map[string]Model
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{models: make(map[string]Model)}
}

// Register associates the model with its reference. Existing entries are
// replaced.
func (r *Registry) Register(m Model) error {
	if strings.TrimSpace(m.App) == "" || strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("model: app and name are required")
	}
	if len(m.Fields) == 0 {
		return fmt.Errorf("model: %q declares no fields", m.Ref().Key())
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.models[m.Ref().Key()] = m
	return nil
}

// Lookup fetches a model by application label and name.
func (r *Registry) Lookup(app, name string) (Model, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.models[Ref{App: app, Name: name}.Key()]
	return m, ok
}

// Refs returns a sorted list of registered model references.
func (r *Registry) Refs() []Ref {
	r.mu.RLock()
	defer r.mu.RUnlock()
	refs := make([]Ref, 0, len(r.models))
	for _, m := range r.models {
		refs = append(refs, m.Ref())
	}
	return sortedRefs(refs)
}

var defaultRegistry = NewRegistry()

// Register adds a model to the process-wide default registry.
func Register(m Model) error {
	return defaultRegistry.Register(m)
}

// Lookup fetches a model from the default registry.
func Lookup(app, name string) (Model, bool) {
	return defaultRegistry.Lookup(app, name)
}

// Refs lists the default registry contents.
func Refs() []Ref {
	return defaultRegistry.Refs()
}
