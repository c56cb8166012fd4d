package models

import (
	"fmt"

	"github.com/reusee/modelrun/stores"
)

// Handle is one live model instance with its declared bindings.
type Handle struct {
	Name     string
	Instance any
	Bindings []Binding
}

func newHandle(name string, instance any) (*Handle, error) {
	handle := &Handle{
		Name:     name,
		Instance: instance,
	}
	bindable, ok := instance.(Bindable)
	if !ok {
		return handle, nil
	}

	seen := make(map[string]bool)
	for _, binding := range bindable.Bindings() {
		if err := checkBinding(binding); err != nil {
			return nil, &ContractError{
				Model:  name,
				Reason: err.Error(),
			}
		}
		if seen[binding.Name] {
			return nil, &ContractError{
				Model:  name,
				Reason: "duplicated binding " + binding.Name,
			}
		}
		seen[binding.Name] = true
		handle.Bindings = append(handle.Bindings, binding)
	}
	return handle, nil
}

func checkBinding(b Binding) error {
	if b.Name == "" {
		return fmt.Errorf("binding without name")
	}
	switch b.Kind {
	case stores.KindScalar:
		if b.Int == nil || b.Series != nil {
			return fmt.Errorf("binding %s: scalar binding needs an int pointer", b.Name)
		}
	case stores.KindSeries:
		if b.Series == nil || b.Int != nil {
			return fmt.Errorf("binding %s: series binding needs a slice pointer", b.Name)
		}
	default:
		return fmt.Errorf("binding %s: kind %s is not bindable", b.Name, b.Kind)
	}
	return nil
}
