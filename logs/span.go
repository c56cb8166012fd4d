package logs

import "context"

// Span identifies one session operation in log records.
type Span string

type ctxKey uint8

const (
	SpanKey ctxKey = iota + 1
	ModelKey
)

// WithModel marks ctx as operating on the named model.
func WithModel(ctx context.Context, name string) context.Context {
	if name == "" {
		return ctx
	}
	return context.WithValue(ctx, ModelKey, name)
}
