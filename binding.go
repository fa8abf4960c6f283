package ioc

import (
	"reflect"
	"sync"
)

// Binding pairs an implementation with its lifecycle under a ServiceKey and
// owns the singleton cache. Bindings are created by Registry.Register.
type Binding struct {
	key       ServiceKey
	lifecycle Lifecycle
	plan      *constructorPlan
	registry  *Registry

	instance any
	built    bool
	mu       sync.RWMutex
}

// Key returns the abstraction the binding was registered under.
func (b *Binding) Key() ServiceKey {
	return b.key
}

// Implementation returns the concrete type the binding constructs.
func (b *Binding) Implementation() reflect.Type {
	return b.plan.implementation
}

// Lifecycle returns the binding's lifecycle.
func (b *Binding) Lifecycle() Lifecycle {
	return b.lifecycle
}

// Dependencies returns the parameter keys of the chosen constructor in order.
func (b *Binding) Dependencies() []ServiceKey {
	deps := make([]ServiceKey, len(b.plan.params))
	copy(deps, b.plan.params)
	return deps
}

// Instantiated reports whether a singleton binding holds its cached instance.
// Transient bindings always report false.
func (b *Binding) Instantiated() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.built
}

// instantiate returns an instance according to the lifecycle.
func (b *Binding) instantiate(res *resolution) (any, error) {
	if b.lifecycle == Transient {
		return b.construct(res)
	}

	// Fast path: cached (read lock)
	b.mu.RLock()
	if b.built {
		instance := b.instance
		b.mu.RUnlock()
		return instance, nil
	}
	b.mu.RUnlock()

	// Slow path: construct under write lock
	b.mu.Lock()
	defer b.mu.Unlock()

	// Double-check after acquiring write lock
	if b.built {
		return b.instance, nil
	}

	instance, err := b.construct(res)
	if err != nil {
		return nil, err
	}

	b.instance = instance
	b.built = true

	return instance, nil
}

// construct resolves every constructor parameter through the primary
// binding of its key and calls the constructor.
func (b *Binding) construct(res *resolution) (any, error) {
	args := make([]any, len(b.plan.params))

	for i, param := range b.plan.params {
		dep, ok := b.registry.primary(param)
		if !ok {
			return nil, ErrUnregisteredDependency(param.String(), b.plan.implementation.String())
		}

		value, err := res.instantiate(dep)
		if err != nil {
			return nil, err
		}

		args[i] = value
	}

	instance, err := b.plan.invoke(args)
	if err != nil {
		return nil, ErrInstantiation(b.plan.implementation.String(), err)
	}

	return instance, nil
}
