package ioc

import "github.com/xraph/go-utils/log"

// ResolverOption is a configuration option for NewResolver.
type ResolverOption func(*resolverConfig)

type resolverConfig struct {
	middleware   []Middleware
	detectCycles bool
}

// WithMiddleware adds middleware, called in the order given.
func WithMiddleware(middleware ...Middleware) ResolverOption {
	return func(c *resolverConfig) {
		c.middleware = append(c.middleware, middleware...)
	}
}

// WithLogger adds a LoggingMiddleware writing to logger.
func WithLogger(logger log.Logger) ResolverOption {
	return WithMiddleware(LoggingMiddleware(logger))
}

// WithCycleDetection toggles the resolution-stack cycle check (default on).
// Without it a cyclic graph recurses until the goroutine stack overflows,
// or deadlocks when a singleton is part of the cycle.
func WithCycleDetection(enabled bool) ResolverOption {
	return func(c *resolverConfig) {
		c.detectCycles = enabled
	}
}
