// Package sessions holds one working dataset and the active model, and runs
// the load, model, script and export stages against them one at a time.
package sessions

import (
	"context"
	"io"

	"github.com/reusee/modelrun/loaders"
	"github.com/reusee/modelrun/logs"
	"github.com/reusee/modelrun/modelconfigs"
	"github.com/reusee/modelrun/models"
	"github.com/reusee/modelrun/scripts"
	"github.com/reusee/modelrun/stores"
)

// Session is not safe for concurrent use.
type Session struct {
	store  *stores.Store
	handle *models.Handle

	registry      *models.Registry
	load          loaders.Load
	read          loaders.Read
	runScript     scripts.Run
	runScriptFile scripts.RunFile
	console       scripts.Console
	newSpan       logs.NewSpan
	logger        logs.Logger
	dataDir       modelconfigs.DataDir
	scriptsDir    modelconfigs.ScriptsDir
	delimiter     modelconfigs.Delimiter
}

// NewSession returns an empty session with the default model selected, if
// one is configured.
type NewSession func(ctx context.Context) (*Session, error)

func (Module) NewSession(
	registry *models.Registry,
	load loaders.Load,
	read loaders.Read,
	runScript scripts.Run,
	runScriptFile scripts.RunFile,
	console scripts.Console,
	newSpan logs.NewSpan,
	logger logs.Logger,
	dataDir modelconfigs.DataDir,
	scriptsDir modelconfigs.ScriptsDir,
	delimiter modelconfigs.Delimiter,
	defaultModel modelconfigs.DefaultModel,
) NewSession {
	return func(ctx context.Context) (*Session, error) {
		session := &Session{
			store:         stores.New(),
			registry:      registry,
			load:          load,
			read:          read,
			runScript:     runScript,
			runScriptFile: runScriptFile,
			console:       console,
			newSpan:       newSpan,
			logger:        logger,
			dataDir:       dataDir,
			scriptsDir:    scriptsDir,
			delimiter:     delimiter,
		}
		if defaultModel != "" {
			if err := session.SelectModel(ctx, string(defaultModel)); err != nil {
				return nil, err
			}
		}
		return session, nil
	}
}

// Initialized reports whether any data has been loaded.
func (s *Session) Initialized() bool {
	return s.store.Len() > 0
}

// Store returns a copy of the working dataset.
func (s *Session) Store() *stores.Store {
	return s.store.Clone()
}

// Model returns the name of the active model, or "" if none.
func (s *Session) Model() string {
	if s.handle == nil {
		return ""
	}
	return s.handle.Name
}

func (s *Session) Models() []string {
	return s.registry.ListAvailable()
}

// SelectModel creates a fresh instance of the named model and makes it
// active. On error the previous model stays active.
func (s *Session) SelectModel(ctx context.Context, name string) error {
	ctx, _ = s.newSpan(logs.WithModel(ctx, name), "select model")
	handle, err := s.registry.Instantiate(name)
	if err != nil {
		return logs.WrapSpan(ctx, err)
	}
	s.handle = handle
	s.logger.InfoContext(ctx, "model selected",
		"bindings", len(handle.Bindings),
	)
	return nil
}

// Load replaces the dataset with the contents of path. A relative path that
// does not exist is looked up in the data directory. On error the dataset
// is unchanged.
func (s *Session) Load(ctx context.Context, path string) ([]*loaders.LineSkipped, error) {
	ctx, _ = s.newSpan(ctx, "load")
	store, skipped, err := s.load(ctx, modelconfigs.Resolve(s.dataDir, path))
	if err != nil {
		return skipped, logs.WrapSpan(ctx, err)
	}
	s.store.Replace(store)
	return skipped, nil
}

// LoadReader is Load for an already opened source.
func (s *Session) LoadReader(ctx context.Context, source string, r io.Reader) ([]*loaders.LineSkipped, error) {
	ctx, _ = s.newSpan(ctx, "load")
	store, skipped, err := s.read(ctx, source, r)
	if err != nil {
		return skipped, logs.WrapSpan(ctx, err)
	}
	s.store.Replace(store)
	return skipped, nil
}
