package loaders

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/modelrun/logs"
)

func TestLoad(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() logs.Writer {
			return buf
		},
	).Call(func(
		load Load,
	) {
		store, skipped, err := load(t.Context(), "testdata/data1.txt")
		if err != nil {
			t.Fatal(err)
		}
		if len(skipped) != 0 {
			t.Fatalf("got %v", skipped)
		}
		n, _ := store.Length()
		if n != 5 {
			t.Fatalf("got %v", n)
		}
		twKS, _ := store.Series("twKS")
		if twKS[4] != 1.05 {
			t.Fatalf("got %v", twKS)
		}
		if store.Len() != 12 {
			t.Fatalf("got %v", store.Names())
		}
		if !strings.Contains(buf.String(), "data loaded") {
			t.Fatalf("got %v", buf.String())
		}

		store, skipped, err = load(t.Context(), "testdata/broken.txt")
		if err != nil {
			t.Fatal(err)
		}
		if len(skipped) != 1 || skipped[0].Name != "GDP" {
			t.Fatalf("got %v", skipped)
		}
		if !store.Has("consumption") {
			t.Fatal()
		}
		if !strings.Contains(buf.String(), "line skipped") {
			t.Fatalf("got %v", buf.String())
		}

		_, _, err = load(t.Context(), "testdata/headless.txt")
		var formatErr *FormatError
		if !errors.As(err, &formatErr) {
			t.Fatalf("got %v", err)
		}

		_, _, err = load(t.Context(), "testdata/missing.txt")
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("got %v", err)
		}
	})
}
