package ioc

import (
	"context"
	"time"
)

// Resolver produces instances from the bindings held by a Registry.
type Resolver struct {
	registry     *Registry
	middleware   *middlewareChain
	detectCycles bool
}

// NewResolver creates a resolver over registry.
// Several resolvers may share one registry, and with it the singleton caches.
func NewResolver(registry *Registry, opts ...ResolverOption) *Resolver {
	cfg := resolverConfig{detectCycles: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	mw := newMiddlewareChain()
	for _, m := range cfg.middleware {
		mw.add(m)
	}

	return &Resolver{
		registry:     registry,
		middleware:   mw,
		detectCycles: cfg.detectCycles,
	}
}

// Registry returns the registry the resolver reads from.
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// Resolve returns an instance from the primary (first registered) binding
// of key.
func (r *Resolver) Resolve(key ServiceKey) (any, error) {
	ctx := newResolveContext()

	ran, err := r.middleware.beforeResolve(ctx, key)
	if err != nil {
		r.middleware.unwind(ctx, key, ran, err)
		return nil, err
	}

	instance, err := r.resolveInternal(key)

	if mwErr := r.middleware.afterResolve(ctx, key, ran, instance, err); mwErr != nil {
		return nil, mwErr
	}

	return instance, err
}

// resolveInternal performs the actual resolution without middleware.
func (r *Resolver) resolveInternal(key ServiceKey) (any, error) {
	b, ok := r.registry.primary(key)
	if !ok {
		return nil, ErrUnregisteredService(key.String())
	}

	return r.newResolution().instantiate(b)
}

// ResolveAll returns one instance per binding of key, in registration
// order. Every binding applies its own lifecycle.
func (r *Resolver) ResolveAll(key ServiceKey) ([]any, error) {
	ctx := newResolveContext()

	ran, err := r.middleware.beforeResolve(ctx, key)
	if err != nil {
		r.middleware.unwind(ctx, key, ran, err)
		return nil, err
	}

	instances, err := r.resolveAllInternal(key)

	if mwErr := r.middleware.afterResolve(ctx, key, ran, instances, err); mwErr != nil {
		return nil, mwErr
	}

	return instances, err
}

func (r *Resolver) resolveAllInternal(key ServiceKey) ([]any, error) {
	bindings := r.registry.Lookup(key)
	if len(bindings) == 0 {
		return nil, ErrUnregisteredService(key.String())
	}

	instances := make([]any, 0, len(bindings))
	for _, b := range bindings {
		instance, err := r.newResolution().instantiate(b)
		if err != nil {
			return nil, err
		}
		instances = append(instances, instance)
	}

	return instances, nil
}

func (r *Resolver) newResolution() *resolution {
	return &resolution{detectCycles: r.detectCycles}
}

// resolution tracks the bindings being constructed by one top-level call.
// A key may appear more than once: a later binding of a key can depend on
// the key's primary binding without forming a cycle.
type resolution struct {
	detectCycles bool
	stack        []*Binding
}

// instantiate pushes b on the stack for the duration of the call.
func (res *resolution) instantiate(b *Binding) (any, error) {
	if res.detectCycles {
		for i, active := range res.stack {
			if active == b {
				return nil, ErrCircularDependency(res.path(i, b.key))
			}
		}
	}

	res.stack = append(res.stack, b)
	defer func() { res.stack = res.stack[:len(res.stack)-1] }()

	return b.instantiate(res)
}

// path renders the cycle starting at stack[from] and closing on key.
func (res *resolution) path(from int, key ServiceKey) []string {
	path := make([]string, 0, len(res.stack)-from+1)
	for _, active := range res.stack[from:] {
		path = append(path, active.key.String())
	}
	return append(path, key.String())
}

type resolveStartKey struct{}

func newResolveContext() context.Context {
	return context.WithValue(context.Background(), resolveStartKey{}, time.Now())
}

// ResolveStarted returns the time the top-level resolution carrying ctx
// began. Middleware use it to time a call without keeping state of their own.
func ResolveStarted(ctx context.Context) (time.Time, bool) {
	start, ok := ctx.Value(resolveStartKey{}).(time.Time)
	return start, ok
}
