package ioc

import (
	"context"

	"github.com/xraph/go-utils/log"
)

// Middleware provides hooks around top-level Resolve and ResolveAll calls.
// Parameter lookups made while constructing are not reported.
type Middleware interface {
	// BeforeResolve is called before resolving a service.
	// Return error to abort resolution.
	BeforeResolve(ctx context.Context, key ServiceKey) error

	// AfterResolve is called after resolving a service, on every middleware
	// whose BeforeResolve succeeded. Called even if resolution failed or a
	// later middleware aborted it. For ResolveAll, value is the []any result.
	AfterResolve(ctx context.Context, key ServiceKey, value any, err error) error
}

// middlewareChain manages multiple middleware.
type middlewareChain struct {
	middleware []Middleware
}

// newMiddlewareChain creates a new middleware chain.
func newMiddlewareChain() *middlewareChain {
	return &middlewareChain{
		middleware: make([]Middleware, 0),
	}
}

// add appends middleware to the chain.
func (m *middlewareChain) add(middleware Middleware) {
	m.middleware = append(m.middleware, middleware)
}

// beforeResolve calls BeforeResolve on each middleware until one fails.
// It returns how many completed, so only those see AfterResolve.
func (m *middlewareChain) beforeResolve(ctx context.Context, key ServiceKey) (int, error) {
	for i, mw := range m.middleware {
		if err := mw.BeforeResolve(ctx, key); err != nil {
			return i, err
		}
	}
	return len(m.middleware), nil
}

// afterResolve calls AfterResolve on the first ran middleware, all of them
// even if one fails, and returns the first error.
func (m *middlewareChain) afterResolve(ctx context.Context, key ServiceKey, ran int, value any, err error) error {
	var first error
	for _, mw := range m.middleware[:ran] {
		if mwErr := mw.AfterResolve(ctx, key, value, err); mwErr != nil && first == nil {
			first = mwErr
		}
	}
	return first
}

// unwind reports an aborted resolution to the middleware that already ran.
// The abort error is what the caller sees.
func (m *middlewareChain) unwind(ctx context.Context, key ServiceKey, ran int, abort error) {
	_ = m.afterResolve(ctx, key, ran, nil, abort)
}

// FuncMiddleware wraps functions as Middleware.
type FuncMiddleware struct {
	BeforeResolveFunc func(ctx context.Context, key ServiceKey) error
	AfterResolveFunc  func(ctx context.Context, key ServiceKey, value any, err error) error
}

// BeforeResolve implements Middleware.
func (f *FuncMiddleware) BeforeResolve(ctx context.Context, key ServiceKey) error {
	if f.BeforeResolveFunc != nil {
		return f.BeforeResolveFunc(ctx, key)
	}
	return nil
}

// AfterResolve implements Middleware.
func (f *FuncMiddleware) AfterResolve(ctx context.Context, key ServiceKey, value any, err error) error {
	if f.AfterResolveFunc != nil {
		return f.AfterResolveFunc(ctx, key, value, err)
	}
	return nil
}

// LoggingMiddleware logs every resolution: successes at debug level,
// failures at warn level. It never alters the outcome.
func LoggingMiddleware(logger log.Logger) Middleware {
	return &FuncMiddleware{
		AfterResolveFunc: func(_ context.Context, key ServiceKey, value any, err error) error {
			if err != nil {
				logger.Warn("service resolution failed",
					log.String("service", key.String()),
					log.Error(err),
				)
				return nil
			}

			fields := []log.Field{log.String("service", key.String())}
			if all, ok := value.([]any); ok {
				fields = append(fields, log.Int("instances", len(all)))
			}
			logger.Debug("service resolved", fields...)

			return nil
		},
	}
}
