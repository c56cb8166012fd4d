package scripts

import (
	"fmt"
	gomath "math"

	"go.starlark.net/starlark"
)

// Funcs are predeclared to every script. Values are Go functions, exposed
// through starlarkutil, or Starlark values used as is.
type Funcs map[string]any

func (Module) Funcs() Funcs {
	return Funcs{
		"series":   starlark.NewBuiltin("series", seriesBuiltin),
		"compound": compound,
	}
}

// series(n, value=0.0) returns a list of n floats.
func seriesBuiltin(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var n int
	var value starlark.Value = starlark.Float(0)
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "n", &n, "value?", &value); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%s: negative length %d", fn.Name(), n)
	}
	f, ok := starlark.AsFloat(value)
	if !ok {
		return nil, fmt.Errorf("%s: value must be a number, got %s", fn.Name(), value.Type())
	}
	elems := make([]starlark.Value, n)
	for i := range elems {
		elems[i] = starlark.Float(f)
	}
	return starlark.NewList(elems), nil
}

// compound returns base grown by rate for the given number of periods.
func compound(base float64, rate float64, periods int) float64 {
	return base * gomath.Pow(rate, float64(periods))
}
