package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan opens a span for one operation. The span found in ctx, if any,
// becomes the parent.
type NewSpan func(ctx context.Context, operation string) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, operation string) (context.Context, Span) {

		var parent Span
		if v := ctx.Value(SpanKey); v != nil {
			parent = v.(Span)
		}

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		var args []any
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.DebugContext(ctx, operation, args...)

		return ctx, span
	}
}
