package ioc

import "fmt"

// Register binds the abstraction T. It is shorthand for
// r.Register(KeyOf[T](), lifecycle, constructors...).
//
// Example:
//
//	ioc.Register[Clock](reg, ioc.Singleton, NewSystemClock)
//	ioc.Register[Repository](reg, ioc.Transient, NewSQLRepository)
func Register[T any](r *Registry, lifecycle Lifecycle, constructors ...any) error {
	return r.Register(KeyOf[T](), lifecycle, constructors...)
}

// Resolve with type safety.
func Resolve[T any](r *Resolver) (T, error) {
	var zero T

	key := KeyOf[T]()

	instance, err := r.Resolve(key)
	if err != nil {
		return zero, err
	}

	return cast[T](key, instance)
}

// ResolveAll resolves every binding of T with type safety.
func ResolveAll[T any](r *Resolver) ([]T, error) {
	key := KeyOf[T]()

	instances, err := r.ResolveAll(key)
	if err != nil {
		return nil, err
	}

	typed := make([]T, len(instances))
	for i, instance := range instances {
		v, err := cast[T](key, instance)
		if err != nil {
			return nil, err
		}
		typed[i] = v
	}

	return typed, nil
}

// Must resolves or panics - use only during startup.
func Must[T any](r *Resolver) T {
	instance, err := Resolve[T](r)
	if err != nil {
		panic(fmt.Sprintf("failed to resolve %s: %v", KeyOf[T](), err))
	}

	return instance
}

// MustAll resolves every binding of T or panics.
func MustAll[T any](r *Resolver) []T {
	instances, err := ResolveAll[T](r)
	if err != nil {
		panic(fmt.Sprintf("failed to resolve all %s: %v", KeyOf[T](), err))
	}

	return instances
}

// Has checks if T has at least one binding.
func Has[T any](r *Registry) bool {
	return r.Has(KeyOf[T]())
}

func cast[T any](key ServiceKey, instance any) (T, error) {
	var zero T

	if instance == nil {
		// nil interface or pointer returned by a constructor
		return zero, nil
	}

	typed, ok := instance.(T)
	if !ok {
		return zero, ErrTypeMismatch(key.String(), instance)
	}

	return typed, nil
}
