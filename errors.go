package ioc

import (
	"fmt"
	"strings"

	"github.com/xraph/go-utils/errs"
)

// =============================================================================
// ERROR CODES
// =============================================================================

const (
	// CodeConstruction indicates an implementation has no usable constructor
	CodeConstruction = "CONSTRUCTION_ERROR"

	// CodeUnregisteredDependency indicates a constructor parameter has no binding
	CodeUnregisteredDependency = "UNREGISTERED_DEPENDENCY"

	// CodeUnregisteredService indicates Resolve/ResolveAll was called for an unknown key
	CodeUnregisteredService = "UNREGISTERED_SERVICE"

	// CodeCircularDependency indicates a binding reappeared on the resolution stack
	CodeCircularDependency = "CIRCULAR_DEPENDENCY"

	// CodeInstantiation indicates a constructor returned an error
	CodeInstantiation = "INSTANTIATION_FAILED"

	// CodeTypeMismatch indicates a resolved value is not of the requested type
	CodeTypeMismatch = "TYPE_MISMATCH"
)

// =============================================================================
// SENTINEL ERRORS
// =============================================================================

// ErrConstructionSentinel matches any construction error with errors.Is.
var ErrConstructionSentinel = errs.NewError(CodeConstruction, "construction error", nil)

// ErrUnregisteredDependencySentinel matches any unregistered dependency error with errors.Is.
var ErrUnregisteredDependencySentinel = errs.NewError(CodeUnregisteredDependency, "unregistered dependency", nil)

// ErrUnregisteredServiceSentinel matches any unregistered service error with errors.Is.
var ErrUnregisteredServiceSentinel = errs.NewError(CodeUnregisteredService, "unregistered service", nil)

// ErrCircularDependencySentinel matches any circular dependency error with errors.Is.
var ErrCircularDependencySentinel = errs.NewError(CodeCircularDependency, "circular dependency", nil)

// ErrInstantiationSentinel matches any instantiation error with errors.Is.
var ErrInstantiationSentinel = errs.NewError(CodeInstantiation, "instantiation failed", nil)

// ErrTypeMismatchSentinel matches any type mismatch error with errors.Is.
var ErrTypeMismatchSentinel = errs.NewError(CodeTypeMismatch, "type mismatch", nil)

// =============================================================================
// ERROR CONSTRUCTORS
// =============================================================================

// ErrConstruction creates an error for an implementation that cannot be bound.
func ErrConstruction(implementation, reason string) *errs.Error {
	return errs.NewError(
		CodeConstruction,
		fmt.Sprintf("cannot bind '%s': %s", implementation, reason),
		nil,
	).WithContext("implementation", implementation).
		WithContext("reason", reason).(*errs.Error)
}

// ErrUnregisteredDependency creates an error for a constructor parameter
// whose abstraction has no binding.
func ErrUnregisteredDependency(dependency, implementation string) *errs.Error {
	return errs.NewError(
		CodeUnregisteredDependency,
		fmt.Sprintf("dependency '%s' required by '%s' is not registered", dependency, implementation),
		nil,
	).WithContext("dependency", dependency).
		WithContext("implementation", implementation).(*errs.Error)
}

// ErrUnregisteredService creates an error for a resolve on an unknown key.
func ErrUnregisteredService(service string) *errs.Error {
	return errs.NewError(
		CodeUnregisteredService,
		fmt.Sprintf("service '%s' is not registered", service),
		nil,
	).WithContext("service", service).(*errs.Error)
}

// ErrCircularDependency creates an error for a cycle found while resolving.
func ErrCircularDependency(path []string) *errs.Error {
	return errs.NewError(
		CodeCircularDependency,
		"circular dependency detected: "+strings.Join(path, " -> "),
		nil,
	).WithContext("cycle", path).(*errs.Error)
}

// ErrInstantiation wraps an error returned by a constructor.
func ErrInstantiation(implementation string, cause error) *errs.Error {
	return errs.NewError(
		CodeInstantiation,
		fmt.Sprintf("constructor for '%s' failed", implementation),
		cause,
	).WithContext("implementation", implementation).(*errs.Error)
}

// ErrTypeMismatch creates an error for a resolved value of the wrong type.
func ErrTypeMismatch(service string, actual any) *errs.Error {
	return errs.NewError(
		CodeTypeMismatch,
		fmt.Sprintf("service '%s' type mismatch: got %T", service, actual),
		nil,
	).WithContext("service", service).
		WithContext("actual_type", fmt.Sprintf("%T", actual)).(*errs.Error)
}
