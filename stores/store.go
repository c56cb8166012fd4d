package stores

import (
	"iter"
	"slices"
)

const (
	// LabelsKey names the period labels entry.
	LabelsKey = "LATA"
	// LengthKey names the scalar holding the series length.
	LengthKey = "LL"
)

// Store is an ordered mapping from variable names to values.
// Values are copied on the way in and on the way out, so nothing outside the
// store can alias its entries.
// A Store is not safe for concurrent use.
type Store struct {
	names  []string
	values map[string]Value
}

func New() *Store {
	return &Store{
		values: make(map[string]Value),
	}
}

// Set inserts or replaces an entry. A replaced entry keeps its position.
func (s *Store) Set(name string, value Value) {
	if _, ok := s.values[name]; !ok {
		s.names = append(s.names, name)
	}
	s.values[name] = Clone(value)
}

func (s *Store) Get(name string) (Value, bool) {
	v, ok := s.values[name]
	if !ok {
		return nil, false
	}
	return Clone(v), true
}

func (s *Store) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

func (s *Store) Delete(name string) {
	if _, ok := s.values[name]; !ok {
		return
	}
	delete(s.values, name)
	s.names = slices.DeleteFunc(s.names, func(n string) bool {
		return n == name
	})
}

func (s *Store) Len() int {
	return len(s.names)
}

// Names returns entry names in insertion order.
func (s *Store) Names() []string {
	return slices.Clone(s.names)
}

// All iterates entries in insertion order. Yielded values are copies.
func (s *Store) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, name := range s.names {
			if !yield(name, Clone(s.values[name])) {
				return
			}
		}
	}
}

// Merge sets every entry of other into s, overwriting on collision.
func (s *Store) Merge(other *Store) {
	for name, value := range other.All() {
		s.Set(name, value)
	}
}

// Replace discards the contents of s and takes the contents of other.
func (s *Store) Replace(other *Store) {
	if other == s {
		return
	}
	s.names = s.names[:0]
	clear(s.values)
	s.Merge(other)
}

func (s *Store) Clone() *Store {
	ret := New()
	ret.Merge(s)
	return ret
}

// Length returns the series length established by the LL entry.
func (s *Store) Length() (int, bool) {
	v, ok := s.values[LengthKey].(Scalar)
	return int(v), ok
}

func (s *Store) Series(name string) ([]float64, bool) {
	v, ok := s.values[name].(Series)
	if !ok {
		return nil, false
	}
	return slices.Clone(v), true
}

func (s *Store) Labels() ([]string, bool) {
	v, ok := s.values[LabelsKey].(Labels)
	if !ok {
		return nil, false
	}
	return slices.Clone(v), true
}
