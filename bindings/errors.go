package bindings

import "fmt"

// ExecutionError wraps a failure raised by a model's Run.
type ExecutionError struct {
	Model string
	Err   error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("run model %s: %v", e.Model, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
