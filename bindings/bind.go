// Package bindings synchronizes store entries with model fields.
package bindings

import (
	"fmt"
	"slices"

	"github.com/reusee/modelrun/models"
	"github.com/reusee/modelrun/stores"
)

// BindInto copies every store entry named by one of the handle's bindings
// into the bound field. Fields without a matching entry keep their value.
// An entry of the wrong kind is a ContractError and nothing is written.
func BindInto(handle *models.Handle, store *stores.Store) (bound int, err error) {
	type assignment func()
	var assignments []assignment

	for _, binding := range handle.Bindings {
		value, ok := store.Get(binding.Name)
		if !ok {
			continue
		}

		switch v := value.(type) {
		case stores.Scalar:
			if binding.Kind != stores.KindScalar {
				return 0, kindMismatch(handle, binding, v)
			}
			ptr := binding.Int
			assignments = append(assignments, func() {
				*ptr = int(v)
			})

		case stores.Series:
			if binding.Kind != stores.KindSeries {
				return 0, kindMismatch(handle, binding, v)
			}
			ptr := binding.Series
			assignments = append(assignments, func() {
				*ptr = slices.Clone([]float64(v))
			})

		default:
			return 0, kindMismatch(handle, binding, v)
		}
	}

	for _, assign := range assignments {
		assign()
	}
	return len(assignments), nil
}

func kindMismatch(handle *models.Handle, binding models.Binding, value stores.Value) error {
	return &models.ContractError{
		Model: handle.Name,
		Reason: fmt.Sprintf("field %s is %s but data is %s",
			binding.Name, binding.Kind, value.Kind()),
	}
}

// ExtractFrom reads every bound field. Series fields that were never set
// are left out.
func ExtractFrom(handle *models.Handle) *stores.Store {
	ret := stores.New()
	for _, binding := range handle.Bindings {
		switch binding.Kind {
		case stores.KindScalar:
			ret.Set(binding.Name, stores.Scalar(*binding.Int))
		case stores.KindSeries:
			if *binding.Series == nil {
				continue
			}
			ret.Set(binding.Name, stores.Series(*binding.Series))
		}
	}
	return ret
}
