package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func(n int) {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))
	executor.Define("load", Func(func(path string) {}).Args("file").Desc("load data"))
	executor.Define("export", Func(func(path *string) {}).Args("file"))

	buf := new(bytes.Buffer)
	executor.usageTo(buf, nil)
	out := buf.String()
	for _, want := range []string{
		"foo\tFOO",
		"  bar\tBAR",
		"    qux <int>\tQUX",
		"-h (help, -help, --help)\tprint this usage",
		"load <file>\tload data",
		"export [<file>]\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %s", want, out)
		}
	}
}
