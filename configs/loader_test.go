package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
delimiter?: string
data_dir?: string
models?: [...string]
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)

	var delim string
	err := loader.AssignFirst("delimiter", &delim)
	if err != nil {
		t.Fatal(err)
	}
	if delim != "," {
		t.Fatalf("got %q", delim)
	}

	var models []string
	err = loader.AssignFirst("models", &models)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", models); str != "[Model2 Model3]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("data_dir", &delim)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"test.cue",
		"test2.cue",
	}, testSchema)

	var delims []string
	for value, err := range loader.IterCueValues("delimiter") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		delims = append(delims, s)
	}
	if str := fmt.Sprintf("%q", delims); str != `["," "\t"]` {
		t.Fatalf("got %s", str)
	}

	delims = delims[:0]
	for str := range All[string](loader, "delimiter") {
		delims = append(delims, str)
	}
	if len(delims) != 2 {
		t.Fatalf("got %q", delims)
	}

	// later files fill what earlier files lack
	if dir := First[string](loader, "data_dir"); dir != "data" {
		t.Fatalf("got %q", dir)
	}

	paths, err := loader.Paths()
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %v", paths)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"bad.cue",
	}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestNoFiles(t *testing.T) {
	loader := NewLoader(nil, testSchema)
	if s := First[string](loader, "delimiter"); s != "" {
		t.Fatalf("got %q", s)
	}
}
