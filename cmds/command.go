package cmds

import (
	"fmt"
	"reflect"
)

// Command is either a function taking typed arguments from the command
// line, a set of sub commands made available after it, or both.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
	ArgNames    []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Args names the function's arguments for usage and error messages.
func (c *Command) Args(names ...string) *Command {
	c.ArgNames = names
	return c
}

func (c *Command) argName(i int) string {
	if i < len(c.ArgNames) {
		return c.ArgNames[i]
	}
	t := c.Func.Type().In(i)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}

// Func wraps fn, which may return nothing or an error. Pointer parameters
// are optional arguments.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}

	fnType := fnValue.Type()
	switch {
	case fnType.NumOut() > 1:
		panic(fmt.Errorf("must return 0 or 1 value: %T", fn))
	case fnType.NumOut() == 1 && fnType.Out(0) != errorType:
		panic(fmt.Errorf("must return error: %T", fn))
	}

	return &Command{
		Func: fnValue,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
