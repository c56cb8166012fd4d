package sessions

import (
	"context"
	"strings"

	"github.com/reusee/modelrun/bindings"
	"github.com/reusee/modelrun/logs"
	"github.com/reusee/modelrun/modelconfigs"
)

// RunModel binds the dataset into the active model, runs it and merges
// its fields back.
func (s *Session) RunModel(ctx context.Context) error {
	if s.handle == nil {
		return ErrNoModel
	}
	if !s.Initialized() {
		return ErrNoData
	}
	ctx, _ = s.newSpan(logs.WithModel(ctx, s.handle.Name), "run model")

	bound, err := bindings.BindInto(s.handle, s.store)
	if err != nil {
		return logs.WrapSpan(ctx, err)
	}
	if err := bindings.Run(s.handle, s.store); err != nil {
		return logs.WrapSpan(ctx, err)
	}

	var names []string
	for _, binding := range s.handle.Bindings {
		names = append(names, binding.Name)
	}
	s.logger.InfoContext(ctx, "model done",
		"bound", bound,
		"fields", strings.Join(names, ","),
	)
	return nil
}

// RunScript runs inline source against the dataset and returns the names
// imported back.
func (s *Session) RunScript(ctx context.Context, source string) ([]string, error) {
	if !s.Initialized() {
		return nil, ErrNoData
	}
	ctx, _ = s.newSpan(ctx, "run script")
	imported, err := s.runScript(ctx, "<inline>", source, s.store)
	if err != nil {
		return nil, logs.WrapSpan(ctx, err)
	}
	return imported, nil
}

// RunScriptFile is RunScript for a file. A relative path that does not
// exist is looked up in the scripts directory.
func (s *Session) RunScriptFile(ctx context.Context, path string) ([]string, error) {
	if !s.Initialized() {
		return nil, ErrNoData
	}
	ctx, _ = s.newSpan(ctx, "run script")
	imported, err := s.runScriptFile(ctx, modelconfigs.Resolve(s.scriptsDir, path), s.store)
	if err != nil {
		return nil, logs.WrapSpan(ctx, err)
	}
	return imported, nil
}

// Console opens an interactive interpreter over the dataset.
func (s *Session) Console(ctx context.Context) ([]string, error) {
	ctx, _ = s.newSpan(ctx, "console")
	imported, err := s.console(ctx, s.store)
	if err != nil {
		return nil, logs.WrapSpan(ctx, err)
	}
	return imported, nil
}
