package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/modelrun/cmds"
	"github.com/reusee/modelrun/configs"
	"github.com/reusee/modelrun/logs"
	"github.com/reusee/modelrun/modelconfigs"
	"github.com/reusee/modelrun/modes"
	_ "github.com/reusee/modelrun/samples"
	"github.com/reusee/modelrun/scripts"
	"github.com/reusee/modelrun/sessions"
)

func main() {
	cmds.Execute(os.Args[1:])
	if len(plan) == 0 {
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(2)
	}

	ctx := context.Background()
	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		newSession sessions.NewSession,
		logger logs.Logger,
		settings modelconfigs.Settings,
		loader configs.Loader,
	) {
		session, err := newSession(ctx)
		if err != nil {
			fail(err)
		}
		configPaths, err := loader.Paths()
		if err != nil {
			fail(err)
		}
		env := &env{
			session:     session,
			settings:    settings,
			configPaths: configPaths,
		}
		for _, step := range plan {
			if err := step.run(ctx, env); err != nil {
				logger.ErrorContext(ctx, "step failed",
					"step", step.name,
					"error", err,
				)
				fail(err)
			}
		}
	})
}

func fail(err error) {
	var scriptErr *scripts.ScriptError
	if errors.As(err, &scriptErr) {
		fmt.Fprintln(os.Stderr, scriptErr.Backtrace())
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}
