package exports

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reusee/modelrun/loaders"
	"github.com/reusee/modelrun/stores"
)

func TestTable(t *testing.T) {
	store := stores.New()
	store.Set(stores.LengthKey, stores.Scalar(3))
	store.Set(stores.LabelsKey, stores.Labels{"2020", "2021", "2022"})
	store.Set("GDP", stores.Series{1.5, 2, -0.25})
	store.Set("savings", stores.Series{0.1, 0.2, 1e-7})

	if diff := cmp.Diff([][]string{
		{"LATA", "2020", "2021", "2022"},
		{"GDP", "1.5", "2", "-0.25"},
		{"savings", "0.1", "0.2", "0.0000001"},
	}, Table(store)); diff != "" {
		t.Fatal(diff)
	}
}

func TestTableScalarsOnly(t *testing.T) {
	store := stores.New()
	store.Set(stores.LengthKey, stores.Scalar(3))
	store.Set("n", stores.Scalar(1))
	if grid := Table(store); len(grid) != 0 {
		t.Fatalf("got %v", grid)
	}

	buf := new(bytes.Buffer)
	if err := Write(buf, Table(store), '\t'); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("got %q", buf.String())
	}
}

func TestWrite(t *testing.T) {
	for _, c := range []struct {
		delim rune
		want  string
	}{
		{'\t', "LATA\t2020\t2021\nGDP\t1\t2\n"},
		{',', "LATA,2020,2021\nGDP,1,2\n"},
		{';', "LATA;2020;2021\nGDP;1;2\n"},
	} {
		t.Run(string(c.delim), func(t *testing.T) {
			buf := new(bytes.Buffer)
			err := Write(buf, [][]string{
				{"LATA", "2020", "2021"},
				{"GDP", "1", "2"},
			}, c.delim)
			if err != nil {
				t.Fatal(err)
			}
			if buf.String() != c.want {
				t.Fatalf("got %q", buf.String())
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	content, err := os.ReadFile("../loaders/testdata/data1.txt")
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := loaders.Parse("data1.txt", bytes.NewReader(content), nil)
	if err != nil {
		t.Fatal(err)
	}

	buf := new(bytes.Buffer)
	if err := Write(buf, Table(loaded), '\t'); err != nil {
		t.Fatal(err)
	}
	reloaded, err := loaders.Parse("export", strings.NewReader(buf.String()), func(e *loaders.LineSkipped) {
		t.Fatalf("got %v", e)
	})
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(loaded.Names(), reloaded.Names()); diff != "" {
		t.Fatal(diff)
	}
	for name, value := range loaded.All() {
		again, _ := reloaded.Get(name)
		if diff := cmp.Diff(value, again); diff != "" {
			t.Fatalf("%s: %s", name, diff)
		}
	}
}
