package models

import "github.com/reusee/modelrun/stores"

// Runner is the capability every model must have.
type Runner interface {
	Run() error
}

// Bindable is implemented by models that exchange data with a store.
// Bindings is called once per handle; the returned pointers must stay valid
// for the lifetime of the instance.
type Bindable interface {
	Bindings() []Binding
}

// Binding declares one field that is synchronized with the store entry of
// the same name. Exactly one of Int and Series is set, matching Kind.
type Binding struct {
	Name   string
	Kind   stores.Kind
	Int    *int
	Series *[]float64
}

func Int(name string, ptr *int) Binding {
	return Binding{
		Name: name,
		Kind: stores.KindScalar,
		Int:  ptr,
	}
}

func Series(name string, ptr *[]float64) Binding {
	return Binding{
		Name:   name,
		Kind:   stores.KindSeries,
		Series: ptr,
	}
}
