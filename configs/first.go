package configs

import (
	"errors"
	"fmt"
)

// First decodes the value at path from the first config file defining it,
// or returns the zero value if none does. Invalid config panics.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(fmt.Errorf("config %s: %w", path, err))
	}
	return value
}
