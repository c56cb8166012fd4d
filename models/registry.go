package models

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
)

// Registry maps model names to factories. A factory is a function with no
// parameters returning the model, optionally followed by an error.
// Registration happens at startup, typically in init functions.
type Registry struct {
	factories map[string]reflect.Value
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]reflect.Value),
	}
}

var (
	runnerType = reflect.TypeFor[Runner]()
	errorType  = reflect.TypeFor[error]()
)

func (r *Registry) Register(name string, factory any) {
	if _, ok := r.factories[name]; ok {
		panic(fmt.Errorf("duplicated model %s", name))
	}
	r.factories[name] = reflect.ValueOf(factory)
}

// ListAvailable returns the sorted names of factories whose result type
// has a Run method. Other registrations are left out without error.
func (r *Registry) ListAvailable() []string {
	var names []string
	for name, factory := range r.factories {
		if checkFactory(factory) != nil {
			continue
		}
		if !factory.Type().Out(0).Implements(runnerType) {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Instantiate constructs a fresh instance of the named model.
func (r *Registry) Instantiate(name string) (handle *Handle, err error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, name)
	}
	if err := checkFactory(factory); err != nil {
		return nil, &InitializationError{
			Model: name,
			Err:   err,
		}
	}

	instance, err := construct(factory)
	if err != nil {
		return nil, &InitializationError{
			Model: name,
			Err:   err,
		}
	}

	if _, ok := instance.(Runner); !ok {
		return nil, &ContractError{
			Model:  name,
			Reason: "no Run method",
		}
	}

	return newHandle(name, instance)
}

func checkFactory(factory reflect.Value) error {
	if !factory.IsValid() || factory.Kind() != reflect.Func {
		return errors.New("no default constructor")
	}
	t := factory.Type()
	if t.NumIn() != 0 {
		return errors.New("constructor must take no arguments")
	}
	switch t.NumOut() {
	case 1:
	case 2:
		if t.Out(1) != errorType {
			return errors.New("constructor's second result must be error")
		}
	default:
		return errors.New("constructor must return the model and optionally an error")
	}
	return nil
}

func construct(factory reflect.Value) (instance any, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("constructor panic: %v", p)
		}
	}()

	rets := factory.Call(nil)
	if len(rets) == 2 {
		if e, ok := rets[1].Interface().(error); ok && e != nil {
			return nil, e
		}
	}
	ret := rets[0]
	switch ret.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if ret.IsNil() {
			return nil, errors.New("constructor returned nil")
		}
	}
	return ret.Interface(), nil
}

// DefaultRegistry is populated by Register.
var DefaultRegistry = NewRegistry()

func Register(name string, factory any) {
	DefaultRegistry.Register(name, factory)
}
