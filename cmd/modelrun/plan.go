package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/modelrun/cmds"
	"github.com/reusee/modelrun/modelconfigs"
	"github.com/reusee/modelrun/sessions"
)

// Commands only record steps. Steps run in command line order once the
// scope is built, so flags anywhere on the line apply to every step.
type step struct {
	name string
	run  func(ctx context.Context, env *env) error
}

var plan []step

type env struct {
	session     *sessions.Session
	settings    modelconfigs.Settings
	configPaths []string
}

func addStep(name string, run func(ctx context.Context, env *env) error) {
	plan = append(plan, step{
		name: name,
		run:  run,
	})
}

func init() {
	cmds.Define("models", cmds.Func(func() {
		addStep("models", func(_ context.Context, env *env) error {
			for _, name := range env.session.Models() {
				mark := " "
				if name == env.session.Model() {
					mark = "*"
				}
				fmt.Printf("%s %s\n", mark, name)
			}
			return nil
		})
	}).Desc("list available models"))

	cmds.Define("model", cmds.Func(func(name string) {
		addStep("model", func(ctx context.Context, env *env) error {
			return env.session.SelectModel(ctx, name)
		})
	}).Desc("select a model").Args("name"))

	cmds.Define("load", cmds.Func(func(path string) {
		addStep("load", func(ctx context.Context, env *env) error {
			_, err := env.session.Load(ctx, path)
			return err
		})
	}).Desc("load a time-series file, replacing the current data").Args("file"))

	cmds.Define("run", cmds.Func(func() {
		addStep("run", func(ctx context.Context, env *env) error {
			return env.session.RunModel(ctx)
		})
	}).Desc("run the selected model"))

	cmds.Define("script", cmds.Func(func(path string) {
		addStep("script", func(ctx context.Context, env *env) error {
			_, err := env.session.RunScriptFile(ctx, path)
			return err
		})
	}).Desc("run a script file").Args("file"))

	cmds.Define("exec", cmds.Func(func(source string) {
		addStep("exec", func(ctx context.Context, env *env) error {
			_, err := env.session.RunScript(ctx, source)
			return err
		})
	}).Desc("run inline script source").Args("source"))

	cmds.Define("console", cmds.Func(func() {
		addStep("console", func(ctx context.Context, env *env) error {
			_, err := env.session.Console(ctx)
			return err
		})
	}).Desc("open an interactive console over the data"))

	cmds.Define("show", cmds.Func(func() {
		addStep("show", func(_ context.Context, env *env) error {
			_, err := fmt.Println(renderTable(env.session.Table()))
			return err
		})
	}).Desc("print the data as a table"))

	cmds.Define("export", cmds.Func(func(path string) {
		addStep("export", func(_ context.Context, env *env) error {
			return export(env.session, path)
		})
	}).Desc("write the data as delimited text to a file, or - for stdout").Args("file"))

	cmds.Define("config", cmds.Func(func() {
		addStep("config", func(_ context.Context, env *env) error {
			return printSettings(os.Stdout, env.configPaths, env.settings)
		})
	}).Desc("print effective settings"))
}

func export(session *sessions.Session, path string) (err error) {
	if path == "-" {
		return session.Export(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = e
		}
	}()
	return session.Export(f)
}

func printSettings(w io.Writer, paths []string, settings modelconfigs.Settings) error {
	for _, path := range paths {
		if _, err := fmt.Fprintf(w, "# %s\n", path); err != nil {
			return err
		}
	}
	for _, setting := range settings {
		value := any(setting)
		switch setting := setting.(type) {
		case modelconfigs.Delimiter:
			value = fmt.Sprintf("%q", rune(setting))
		}
		if _, err := fmt.Fprintf(w, "%s: %v\n", setting.ConfigExpr(), value); err != nil {
			return err
		}
	}
	return nil
}
