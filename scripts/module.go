package scripts

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/modelrun/logs"
	"github.com/reusee/modelrun/stores"
	"go.starlark.net/starlark"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// Output receives what scripts print.
type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}

func (Module) NewEngine(
	output Output,
	funcs Funcs,
	logger logs.Logger,
) NewEngine {
	return func(ctx context.Context) (Engine, error) {
		thread := &starlark.Thread{
			Name: "script",
			Print: func(_ *starlark.Thread, msg string) {
				if _, err := io.WriteString(output, msg+"\n"); err != nil {
					logger.WarnContext(ctx, "script output",
						"error", err,
					)
				}
			},
		}
		return newStarlarkEngine(thread, funcs)
	}
}

// Run executes source against store in a fresh engine and returns the
// names imported back into store.
type Run func(ctx context.Context, filename string, source string, store *stores.Store) ([]string, error)

func (Module) Run(
	newEngine NewEngine,
	logger logs.Logger,
) Run {
	return func(ctx context.Context, filename string, source string, store *stores.Store) ([]string, error) {
		engine, err := newEngine(ctx)
		if err != nil {
			return nil, err
		}
		imported, dropped, err := Execute(engine, filename, source, store)
		if err != nil {
			logger.WarnContext(ctx, "script failed",
				"script", filename,
				"error", err,
			)
			return nil, err
		}
		logImported(ctx, logger, filename, store, imported, dropped)
		return imported, nil
	}
}

// RunFile is Run for a script file.
type RunFile func(ctx context.Context, path string, store *stores.Store) ([]string, error)

func (Module) RunFile(
	run Run,
) RunFile {
	return func(ctx context.Context, path string, store *stores.Store) ([]string, error) {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, &ScriptError{
				Script: path,
				Err:    err,
			}
		}
		return run(ctx, path, string(content), store)
	}
}

func logImported(ctx context.Context, logger logs.Logger, filename string, store *stores.Store, imported []string, dropped []string) {
	for _, name := range dropped {
		logger.WarnContext(ctx, "series not imported, value is not a float series",
			"script", filename,
			"name", name,
		)
	}
	length, hasLength := store.Length()
	for _, name := range imported {
		series, _ := store.Series(name)
		if hasLength && len(series) != length {
			logger.WarnContext(ctx, "imported series length differs",
				"script", filename,
				"name", name,
				"length", len(series),
				"want", length,
			)
		}
	}
	logger.InfoContext(ctx, "script done",
		"script", filename,
		"imported", strings.Join(imported, ","),
	)
}
