package loaders

import (
	"context"
	"io"
	"os"

	"github.com/reusee/modelrun/logs"
	"github.com/reusee/modelrun/stores"
)

// Load parses the named time-series file. Skipped lines are logged and
// returned alongside the store.
type Load func(ctx context.Context, path string) (*stores.Store, []*LineSkipped, error)

// Read is Load for an already opened source.
type Read func(ctx context.Context, source string, r io.Reader) (*stores.Store, []*LineSkipped, error)

func (Module) Read(
	logger logs.Logger,
) Read {
	return func(ctx context.Context, source string, r io.Reader) (*stores.Store, []*LineSkipped, error) {
		var skipped []*LineSkipped
		store, err := Parse(source, r, func(e *LineSkipped) {
			logger.WarnContext(ctx, "line skipped",
				"source", source,
				"line", e.Line,
				"name", e.Name,
				"reason", e.Reason,
				"error", e.Err,
			)
			skipped = append(skipped, e)
		})
		if err != nil {
			return nil, skipped, err
		}

		length, _ := store.Length()
		logger.InfoContext(ctx, "data loaded",
			"source", source,
			"variables", store.Len(),
			"length", length,
			"skipped", len(skipped),
		)
		return store, skipped, nil
	}
}

func (Module) Load(
	read Read,
) Load {
	return func(ctx context.Context, path string) (*stores.Store, []*LineSkipped, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, &FormatError{
				Source: path,
				Reason: "open",
				Err:    err,
			}
		}
		defer f.Close()
		return read(ctx, path, f)
	}
}
