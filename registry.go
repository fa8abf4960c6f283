package ioc

import (
	"fmt"
	"sync"
)

// Registry maps each ServiceKey to the ordered bindings registered for it.
// It only grows: there is no unregister and no overwrite.
type Registry struct {
	bindings map[ServiceKey][]*Binding
	order    []ServiceKey // Preserve registration order
	mu       sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[ServiceKey][]*Binding),
		order:    make([]ServiceKey, 0),
	}
}

// Register binds key to the implementation produced by constructors.
//
// constructors are the implementation's public constructors, each a
// function of shape func(P1, ..., Pn) T or func(P1, ..., Pn) (T, error).
// The parameters are the abstractions injected on construction. One of
// them is chosen now and reused for every instantiation. Passing none,
// or anything that is not a valid constructor, fails with a construction
// error before any resolution happens.
//
// A successful call appends a new binding; earlier bindings for key are kept.
func (r *Registry) Register(key ServiceKey, lifecycle Lifecycle, constructors ...any) error {
	if key.IsZero() {
		return ErrConstruction("<nil>", "service key has no type")
	}

	plan, err := selectConstructor(constructors)
	if err != nil {
		return ErrConstruction(key.String(), err.Error())
	}

	impl := plan.implementation.String()

	if !lifecycle.Valid() {
		return ErrConstruction(impl, fmt.Sprintf("invalid lifecycle %s", lifecycle))
	}

	if !plan.implementation.AssignableTo(key.typ) {
		return ErrConstruction(impl, fmt.Sprintf("%s is not assignable to %s", impl, key))
	}

	b := &Binding{
		key:       key,
		lifecycle: lifecycle,
		plan:      plan,
		registry:  r,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bindings[key]; !exists {
		r.order = append(r.order, key)
	}
	r.bindings[key] = append(r.bindings[key], b)

	return nil
}

// Lookup returns the bindings registered for key in registration order,
// or an empty slice when none are.
func (r *Registry) Lookup(key ServiceKey) []*Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bindings := r.bindings[key]
	out := make([]*Binding, len(bindings))
	copy(out, bindings)
	return out
}

// Has checks if at least one binding exists for key.
func (r *Registry) Has(key ServiceKey) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bindings[key]) > 0
}

// Keys returns every registered key in first-registration order.
func (r *Registry) Keys() []ServiceKey {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]ServiceKey, len(r.order))
	copy(keys, r.order)
	return keys
}

// primary returns the first binding registered for key.
func (r *Registry) primary(key ServiceKey) (*Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bindings := r.bindings[key]
	if len(bindings) == 0 {
		return nil, false
	}
	return bindings[0], true
}
