package scripts

import (
	"slices"

	"github.com/reusee/modelrun/stores"
	"go.starlark.net/lib/math"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

// starlarkEngine runs scripts with go.starlark.net. Variables are module
// globals, so a script may both read and reassign them.
type starlarkEngine struct {
	thread   *starlark.Thread
	builtins starlark.StringDict
	globals  starlark.StringDict
}

var _ Engine = new(starlarkEngine)

func newStarlarkEngine(thread *starlark.Thread, funcs Funcs) (*starlarkEngine, error) {
	builtins := starlark.StringDict{
		"math": math.Module,
	}
	for name, fn := range funcs {
		value, err := toStarlarkValue(fn)
		if err != nil {
			return nil, err
		}
		builtins[name] = value
	}
	globals := make(starlark.StringDict, len(builtins))
	for name, value := range builtins {
		globals[name] = value
	}
	return &starlarkEngine{
		thread:   thread,
		builtins: builtins,
		globals:  globals,
	}, nil
}

func (e *starlarkEngine) SetVariable(name string, value stores.Value) error {
	v, err := toStarlarkValue(value)
	if err != nil {
		return err
	}
	e.globals[name] = v
	return nil
}

func (e *starlarkEngine) GetVariable(name string) (any, bool) {
	v, ok := e.globals[name]
	if !ok {
		return nil, false
	}
	return fromStarlarkValue(v), true
}

// Names excludes builtins the script left untouched.
func (e *starlarkEngine) Names() []string {
	var names []string
	for name, value := range e.globals {
		if builtin, ok := e.builtins[name]; ok && builtin == value {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (e *starlarkEngine) Evaluate(filename string, source string) error {
	file, err := fileOptions.Parse(filename, source, 0)
	if err != nil {
		return err
	}
	return starlark.ExecREPLChunk(file, e.thread, e.globals)
}

// Interact reads and evaluates statements from the terminal until EOF.
func (e *starlarkEngine) Interact() {
	repl.REPLOptions(fileOptions, e.thread, e.globals)
}
