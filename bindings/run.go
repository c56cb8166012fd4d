package bindings

import (
	"fmt"

	"github.com/reusee/modelrun/models"
	"github.com/reusee/modelrun/stores"
)

// Run executes the model and merges its bound fields into store.
// The store is only modified when Run succeeds.
func Run(handle *models.Handle, store *stores.Store) error {
	runner, ok := handle.Instance.(models.Runner)
	if !ok {
		return &models.ContractError{
			Model:  handle.Name,
			Reason: "no Run method",
		}
	}

	if err := call(runner); err != nil {
		return &ExecutionError{
			Model: handle.Name,
			Err:   err,
		}
	}

	store.Merge(ExtractFrom(handle))
	return nil
}

func call(runner models.Runner) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return runner.Run()
}
