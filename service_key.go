package ioc

import "reflect"

// ServiceKey identifies an abstraction by its Go type.
// Two keys are equal when their types are identical, so generic
// instantiations such as Box[A] and Box[B] are distinct keys.
type ServiceKey struct {
	typ reflect.Type
}

// KeyOf returns the key for T.
//
// Example:
//
//	var LoggerKey = KeyOf[Logger]()
//	var CacheKey = KeyOf[Cache[string]]()
func KeyOf[T any]() ServiceKey {
	return ServiceKey{typ: reflect.TypeFor[T]()}
}

// KeyFor returns the key for an already reflected type.
func KeyFor(t reflect.Type) ServiceKey {
	return ServiceKey{typ: t}
}

// Type returns the reflected type behind the key.
func (k ServiceKey) Type() reflect.Type {
	return k.typ
}

// IsZero reports whether the key was built without a type.
func (k ServiceKey) IsZero() bool {
	return k.typ == nil
}

// String returns a human-readable representation of the key
func (k ServiceKey) String() string {
	if k.typ == nil {
		return "<nil>"
	}
	return k.typ.String()
}
