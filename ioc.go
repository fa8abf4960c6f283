// Package ioc is a small inversion-of-control container.
//
// Abstractions are registered in a Registry together with the constructors
// of a concrete implementation and a Lifecycle. A Resolver then builds
// instances, resolving every constructor parameter recursively from the
// same registry:
//
//	reg := ioc.NewRegistry()
//	_ = ioc.Register[Clock](reg, ioc.Singleton, NewSystemClock)
//	_ = ioc.Register[Greeter](reg, ioc.Transient, NewGreeter) // NewGreeter(Clock) *greeter
//
//	r := ioc.NewResolver(reg)
//	g, err := ioc.Resolve[Greeter](r)
//
// Several bindings may be registered for one abstraction. Resolve uses the
// first, ResolveAll builds one instance per binding.
package ioc

// New creates a registry and a resolver over it.
func New(opts ...ResolverOption) (*Registry, *Resolver) {
	reg := NewRegistry()
	return reg, NewResolver(reg, opts...)
}
