package scripts

import (
	"context"
	"errors"

	"github.com/reusee/modelrun/logs"
	"github.com/reusee/modelrun/stores"
)

// Console opens an interactive session over store. When the session ends,
// variables are imported back as for Run.
type Console func(ctx context.Context, store *stores.Store) ([]string, error)

var ErrNotInteractive = errors.New("engine is not interactive")

func (Module) Console(
	newEngine NewEngine,
	logger logs.Logger,
) Console {
	return func(ctx context.Context, store *stores.Store) ([]string, error) {
		engine, err := newEngine(ctx)
		if err != nil {
			return nil, err
		}
		interactive, ok := engine.(Interactive)
		if !ok {
			return nil, ErrNotInteractive
		}

		for name, value := range store.All() {
			if err := engine.SetVariable(name, value); err != nil {
				return nil, err
			}
		}

		logger.InfoContext(ctx, "console",
			"variables", store.Names(),
		)
		interactive.Interact()

		imported, dropped := Reimport(engine, store)
		logImported(ctx, logger, "console", store, imported, dropped)
		return imported, nil
	}
}
