package scripts

import (
	"context"

	"github.com/reusee/modelrun/stores"
)

// Engine is one interpreter session. Variables read back are plain Go
// values: nil, bool, int64, float64, string, []byte, []any, map[string]any,
// or an opaque interpreter value for anything else.
type Engine interface {
	SetVariable(name string, value stores.Value) error
	GetVariable(name string) (any, bool)
	// Names lists variables set by SetVariable or defined by evaluated code.
	Names() []string
	Evaluate(filename string, source string) error
}

// NewEngine creates a fresh Engine with no variables set.
type NewEngine func(ctx context.Context) (Engine, error)

// Interactive engines can read statements from the terminal.
type Interactive interface {
	Interact()
}
