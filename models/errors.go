package models

import (
	"errors"
	"fmt"
)

var ErrModelNotFound = errors.New("model not found")

// ContractError reports a model that lacks a required capability or
// declares an unusable binding.
type ContractError struct {
	Model  string
	Reason string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("model %s: %s", e.Model, e.Reason)
}

// InitializationError reports a model that could not be constructed.
type InitializationError struct {
	Model string
	Err   error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("initialize model %s: %v", e.Model, e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}
