package ioc

// BindingQuery defines criteria for querying bindings.
type BindingQuery struct {
	// Key restricts results to one abstraction.
	// The zero key matches all.
	Key ServiceKey

	// Lifecycle filters by lifecycle.
	// Zero matches all lifecycles.
	Lifecycle Lifecycle

	// Instantiated filters by whether a singleton holds its instance.
	// nil matches all bindings.
	Instantiated *bool
}

// Query returns information about bindings matching the query, in the
// order of Inspect.
//
// Example:
//
//	// Find all singletons that have not been built yet
//	pending := false
//	results := ioc.Query(reg, ioc.BindingQuery{
//	    Lifecycle:    ioc.Singleton,
//	    Instantiated: &pending,
//	})
func Query(r *Registry, query BindingQuery) []BindingInfo {
	keys := r.Keys()
	if !query.Key.IsZero() {
		keys = []ServiceKey{query.Key}
	}

	var results []BindingInfo

	for _, key := range keys {
		for i, b := range r.Lookup(key) {
			info := b.Info(i)

			if query.Lifecycle != 0 && info.Lifecycle != query.Lifecycle {
				continue
			}

			if query.Instantiated != nil && info.Instantiated != *query.Instantiated {
				continue
			}

			results = append(results, info)
		}
	}

	return results
}
