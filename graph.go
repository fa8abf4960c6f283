package ioc

// Validate walks the dependency graph formed by the primary bindings
// without constructing anything. It reports the first parameter with no
// binding, or the first cycle, in key registration order.
//
// Resolve performs the same checks lazily; Validate lets callers fail at
// startup instead.
func (r *Registry) Validate() error {
	_, err := r.DependencyOrder()
	return err
}

// DependencyOrder returns every registered key such that each key comes
// after the keys its primary binding depends on. Keys without
// dependencies keep their registration order.
func (r *Registry) DependencyOrder() ([]ServiceKey, error) {
	keys := r.Keys()

	visited := make(map[ServiceKey]bool, len(keys))
	result := make([]ServiceKey, 0, len(keys))
	var stack []ServiceKey

	for _, key := range keys {
		if err := r.visit(key, visited, &stack, &result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// visit performs DFS traversal.
func (r *Registry) visit(key ServiceKey, visited map[ServiceKey]bool, stack, result *[]ServiceKey) error {
	if visited[key] {
		return nil
	}

	for i, k := range *stack {
		if k == key {
			// Build the cycle chain for better error message
			path := make([]string, 0, len(*stack)-i+1)
			for _, s := range (*stack)[i:] {
				path = append(path, s.String())
			}
			return ErrCircularDependency(append(path, key.String()))
		}
	}

	b, ok := r.primary(key)
	if !ok {
		return nil
	}

	*stack = append(*stack, key)

	for _, dep := range b.plan.params {
		if !r.Has(dep) {
			return ErrUnregisteredDependency(dep.String(), b.plan.implementation.String())
		}
		if err := r.visit(dep, visited, stack, result); err != nil {
			return err
		}
	}

	*stack = (*stack)[:len(*stack)-1]
	visited[key] = true
	*result = append(*result, key)

	return nil
}
