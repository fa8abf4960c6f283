package ioc

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// constructorPlan holds analysed constructor metadata. It is computed once
// when a binding is created and never recomputed.
type constructorPlan struct {
	fn             reflect.Value
	implementation reflect.Type
	params         []ServiceKey
	hasError       bool
}

// signature renders the parameter list, used to break selection ties.
func (p *constructorPlan) signature() string {
	names := make([]string, len(p.params))
	for i, param := range p.params {
		names[i] = param.String()
	}
	return strings.Join(names, ",")
}

// analyzeConstructor inspects a constructor function of shape
// func(P1, ..., Pn) T or func(P1, ..., Pn) (T, error).
func analyzeConstructor(constructor any) (*constructorPlan, error) {
	if constructor == nil {
		return nil, errors.New("constructor cannot be nil")
	}

	fnValue := reflect.ValueOf(constructor)
	fnType := fnValue.Type()

	if fnType.Kind() != reflect.Func {
		return nil, fmt.Errorf("constructor must be a function, got %s", fnType)
	}
	if fnValue.IsNil() {
		return nil, errors.New("constructor cannot be a nil function")
	}
	if fnType.IsVariadic() {
		return nil, fmt.Errorf("constructor %s must not be variadic", fnType)
	}

	plan := &constructorPlan{fn: fnValue}

	switch fnType.NumOut() {
	case 1:
		plan.implementation = fnType.Out(0)
	case 2:
		if fnType.Out(1) != errorType {
			return nil, fmt.Errorf("constructor %s: second result must be error", fnType)
		}
		plan.implementation = fnType.Out(0)
		plan.hasError = true
	default:
		return nil, fmt.Errorf("constructor %s must return (T) or (T, error)", fnType)
	}

	if plan.implementation == errorType {
		return nil, fmt.Errorf("constructor %s must return a value other than error", fnType)
	}

	for i := 0; i < fnType.NumIn(); i++ {
		plan.params = append(plan.params, KeyFor(fnType.In(i)))
	}

	return plan, nil
}

// selectConstructor analyses every candidate and picks one.
//
// Selection: the constructor with the most parameters wins; ties go to the
// lexically smallest parameter signature, then to the earliest argument.
// All candidates must produce the same implementation type.
func selectConstructor(constructors []any) (*constructorPlan, error) {
	if len(constructors) == 0 {
		return nil, errors.New("no public constructor supplied")
	}

	plans := make([]*constructorPlan, 0, len(constructors))
	for i, ctor := range constructors {
		plan, err := analyzeConstructor(ctor)
		if err != nil {
			return nil, fmt.Errorf("constructor %d: %w", i, err)
		}
		if len(plans) > 0 && plan.implementation != plans[0].implementation {
			return nil, fmt.Errorf("constructor %d returns %s, expected %s",
				i, plan.implementation, plans[0].implementation)
		}
		plans = append(plans, plan)
	}

	sort.SliceStable(plans, func(i, j int) bool {
		if len(plans[i].params) != len(plans[j].params) {
			return len(plans[i].params) > len(plans[j].params)
		}
		return plans[i].signature() < plans[j].signature()
	})

	return plans[0], nil
}

// invoke calls the constructor with already resolved arguments.
func (p *constructorPlan) invoke(args []any) (any, error) {
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			in[i] = reflect.Zero(p.params[i].typ)
			continue
		}
		in[i] = reflect.ValueOf(arg)
	}

	out := p.fn.Call(in)

	if p.hasError && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}

	return out[0].Interface(), nil
}
