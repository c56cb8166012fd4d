package scripts

import (
	"errors"
	"fmt"

	"go.starlark.net/starlark"
)

// ScriptError reports a script that failed to compile or run.
// Nothing was imported into the store.
type ScriptError struct {
	Script string
	Err    error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("script %s: %v", e.Script, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}

// Backtrace returns the interpreter's call stack for runtime failures, or
// the plain message otherwise.
func (e *ScriptError) Backtrace() string {
	var evalErr *starlark.EvalError
	if errors.As(e.Err, &evalErr) {
		return evalErr.Backtrace()
	}
	return e.Err.Error()
}
