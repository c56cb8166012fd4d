package stores

import (
	"fmt"
	"slices"
)

type Kind uint8

const (
	KindScalar Kind = iota + 1
	KindSeries
	KindLabels
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSeries:
		return "series"
	case KindLabels:
		return "labels"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Value is one of Scalar, Series or Labels.
type Value interface {
	Kind() Kind
	clone() Value
}

type Scalar int

type Series []float64

type Labels []string

var (
	_ Value = Scalar(0)
	_ Value = Series(nil)
	_ Value = Labels(nil)
)

func (Scalar) Kind() Kind { return KindScalar }

func (Series) Kind() Kind { return KindSeries }

func (Labels) Kind() Kind { return KindLabels }

func (s Scalar) clone() Value { return s }

func (s Series) clone() Value { return slices.Clone(s) }

func (l Labels) clone() Value { return slices.Clone(l) }

// Clone returns a value sharing no memory with v.
func Clone(v Value) Value {
	if v == nil {
		return nil
	}
	return v.clone()
}
