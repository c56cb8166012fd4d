package bindings

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reusee/modelrun/models"
	"github.com/reusee/modelrun/stores"
)

type doubler struct {
	LL     int
	Input  []float64
	Output []float64
	Spare  []float64
	Count  int
	fail   error
}

func (d *doubler) Run() error {
	if d.fail != nil {
		d.Output = []float64{-1}
		return d.fail
	}
	d.Output = make([]float64, d.LL)
	for i := range d.LL {
		d.Output[i] = d.Input[i] * 2
	}
	d.Count++
	return nil
}

func (d *doubler) Bindings() []models.Binding {
	return []models.Binding{
		models.Int("LL", &d.LL),
		models.Series("Input", &d.Input),
		models.Series("Output", &d.Output),
		models.Series("Spare", &d.Spare),
		models.Int("Count", &d.Count),
	}
}

func newHandle(t *testing.T, model models.Runner) *models.Handle {
	t.Helper()
	r := models.NewRegistry()
	r.Register("doubler", func() models.Runner {
		return model
	})
	handle, err := r.Instantiate("doubler")
	if err != nil {
		t.Fatal(err)
	}
	return handle
}

func testStore() *stores.Store {
	s := stores.New()
	s.Set(stores.LengthKey, stores.Scalar(3))
	s.Set(stores.LabelsKey, stores.Labels{"2020", "2021", "2022"})
	s.Set("Input", stores.Series{1, 2, 3})
	s.Set("Unrelated", stores.Series{7, 7, 7})
	return s
}

func TestBindRunExtract(t *testing.T) {
	model := &doubler{
		Spare: []float64{9},
	}
	handle := newHandle(t, model)
	store := testStore()

	bound, err := BindInto(handle, store)
	if err != nil {
		t.Fatal(err)
	}
	if bound != 2 {
		t.Fatalf("got %v", bound)
	}
	if model.LL != 3 {
		t.Fatalf("got %v", model.LL)
	}

	// no aliasing between store and model
	model.Input[0] = 100
	input, _ := store.Series("Input")
	if input[0] != 1 {
		t.Fatalf("got %v", input)
	}
	model.Input[0] = 1

	if err := Run(handle, store); err != nil {
		t.Fatal(err)
	}

	output, ok := store.Series("Output")
	if !ok {
		t.Fatal()
	}
	if diff := cmp.Diff([]float64{2, 4, 6}, output); diff != "" {
		t.Fatal(diff)
	}
	// unbound field round-trips unchanged
	spare, _ := store.Series("Spare")
	if diff := cmp.Diff([]float64{9}, spare); diff != "" {
		t.Fatal(diff)
	}
	unrelated, _ := store.Series("Unrelated")
	if diff := cmp.Diff([]float64{7, 7, 7}, unrelated); diff != "" {
		t.Fatal(diff)
	}
	if diff := cmp.Diff(
		[]string{"LL", "LATA", "Input", "Unrelated", "Output", "Spare", "Count"},
		store.Names(),
	); diff != "" {
		t.Fatal(diff)
	}

	extracted := ExtractFrom(handle)
	count, _ := extracted.Get("Count")
	if count != stores.Scalar(1) {
		t.Fatalf("got %v", count)
	}
}

func TestExtractSkipsUnsetSeries(t *testing.T) {
	handle := newHandle(t, new(doubler))
	extracted := ExtractFrom(handle)
	if diff := cmp.Diff([]string{"LL", "Count"}, extracted.Names()); diff != "" {
		t.Fatal(diff)
	}
}

func TestBindKindMismatch(t *testing.T) {
	model := new(doubler)
	handle := newHandle(t, model)
	store := testStore()
	store.Set("Count", stores.Series{1})

	_, err := BindInto(handle, store)
	var contractErr *models.ContractError
	if !errors.As(err, &contractErr) {
		t.Fatalf("got %v", err)
	}
	// nothing written
	if model.LL != 0 || model.Input != nil {
		t.Fatalf("got %+v", model)
	}
}

func TestRunFailureLeavesStore(t *testing.T) {
	boom := errors.New("boom")
	handle := newHandle(t, &doubler{fail: boom})
	store := testStore()
	if _, err := BindInto(handle, store); err != nil {
		t.Fatal(err)
	}

	err := Run(handle, store)
	var execErr *ExecutionError
	if !errors.As(err, &execErr) {
		t.Fatalf("got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
	if store.Has("Output") {
		t.Fatal("store should be untouched")
	}
}

type panicking struct {
	values []float64
}

func (p *panicking) Run() error {
	p.values[10] = 1
	return nil
}

func TestRunPanic(t *testing.T) {
	handle := newHandle(t, new(panicking))
	err := Run(handle, stores.New())
	var execErr *ExecutionError
	if !errors.As(err, &execErr) {
		t.Fatalf("got %v", err)
	}
}

func TestRunNotRunner(t *testing.T) {
	handle := &models.Handle{
		Name:     "x",
		Instance: struct{}{},
	}
	err := Run(handle, stores.New())
	var contractErr *models.ContractError
	if !errors.As(err, &contractErr) {
		t.Fatalf("got %v", err)
	}
}
