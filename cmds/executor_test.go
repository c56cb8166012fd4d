package cmds

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestExecutorPipeline(t *testing.T) {
	executor := NewExecutor()

	var steps []string
	var delim string
	executor.Define("load", Func(func(path string) {
		steps = append(steps, "load "+path)
	}).Args("file"))
	executor.Define("run", Func(func() {
		steps = append(steps, "run")
	}))
	executor.Define("-delim", Func(func(d string) {
		delim = d
	}))

	if err := executor.Execute([]string{
		"load", "data.txt",
		"-delim", ",",
		"run",
		"load", "more.txt",
	}); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(steps, []string{"load data.txt", "run", "load more.txt"}) {
		t.Fatalf("got %v", steps)
	}
	if delim != "," {
		t.Fatalf("got %q", delim)
	}

	err := executor.Execute([]string{"load"})
	if err == nil || err.Error() != "load <file>: missing argument" {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"show"})
	if !strings.Contains(err.Error(), "unknown command: show") {
		t.Fatalf("got %v", err)
	}
}

func TestExecutorTypedArgs(t *testing.T) {
	executor := NewExecutor()
	var n int
	var rate float64
	var json bool
	executor.Define("periods", Func(func(i int) {
		n = i
	}))
	executor.Define("rate", Func(func(f float64) {
		rate = f
	}))
	executor.Define("json", Func(func(b bool) {
		json = b
	}))

	if err := executor.Execute([]string{
		"periods", "5",
		"rate", "0.25",
		"json", "yes",
	}); err != nil {
		t.Fatal(err)
	}
	if n != 5 || rate != 0.25 || !json {
		t.Fatalf("got %v %v %v", n, rate, json)
	}

	if err := executor.Execute([]string{"periods", "five"}); err == nil {
		t.Fatal()
	}
	if err := executor.Execute([]string{"json", "maybe"}); err == nil {
		t.Fatal()
	}
}

func TestExecutorError(t *testing.T) {
	executor := NewExecutor()
	errBoom := errors.New("boom")
	executor.Define("run", Func(func() error {
		return errBoom
	}))
	err := executor.Execute([]string{"run"})
	if !errors.Is(err, errBoom) {
		t.Fatalf("got %v", err)
	}
	if err.Error() != "run: boom" {
		t.Fatalf("got %v", err)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var selected string
	var periods int
	executor.Define("model", Sub(map[string]*Command{
		"select": Func(func(name string) {
			selected = name
		}),
		"periods": Func(func(i int) {
			periods = i
		}),
	}))

	if err := executor.Execute([]string{
		"model",
		"select", "Model2",
		"periods", "3",
	}); err != nil {
		t.Fatal(err)
	}
	if selected != "Model2" || periods != 3 {
		t.Fatalf("got %v %v", selected, periods)
	}

	if err := executor.Execute([]string{"select", "Model2"}); err == nil {
		t.Fatal("sub command visible without parent")
	}
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var path string
	var n int
	executor.Define("export", Func(func(p *string, limit *int) {
		path = *p
		n = *limit
	}))

	if err := executor.Execute([]string{"export", "out.txt", "3"}); err != nil {
		t.Fatal(err)
	}
	if path != "out.txt" || n != 3 {
		t.Fatalf("got %v %v", path, n)
	}

	if err := executor.Execute([]string{"export"}); err != nil {
		t.Fatal(err)
	}
	if path != "" || n != 0 {
		t.Fatalf("got %v %v", path, n)
	}
}

func TestDuplicatedDefine(t *testing.T) {
	executor := NewExecutor()
	executor.Define("run", Func(func() {}))
	defer func() {
		if recover() == nil {
			t.Fatal("should panic")
		}
	}()
	executor.Define("run", Func(func() {}))
}
