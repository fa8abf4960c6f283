package ioc

// Registration holds the arguments of one Registry.Register call.
type Registration struct {
	Key          ServiceKey
	Lifecycle    Lifecycle
	Constructors []any
}

// Bind creates a Registration for the abstraction T.
//
// Example:
//
//	err := ioc.RegisterAll(reg,
//	    ioc.Bind[Clock](ioc.Singleton, NewSystemClock),
//	    ioc.Bind[Store](ioc.Singleton, NewMemoryStore),
//	    ioc.Bind[Handler](ioc.Transient, NewHandler),
//	)
func Bind[T any](lifecycle Lifecycle, constructors ...any) Registration {
	return Registration{
		Key:          KeyOf[T](),
		Lifecycle:    lifecycle,
		Constructors: constructors,
	}
}

// RegisterAll registers every registration in order and stops at the
// first failure. Registrations made before the failure are kept.
func RegisterAll(r *Registry, registrations ...Registration) error {
	for _, reg := range registrations {
		if err := r.Register(reg.Key, reg.Lifecycle, reg.Constructors...); err != nil {
			return err
		}
	}
	return nil
}
