package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan joins err with the span and model found in ctx.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if v := ctx.Value(SpanKey); v != nil {
		err = errors.Join(err, fmt.Errorf("span: %s", v.(Span)))
	}
	if v := ctx.Value(ModelKey); v != nil {
		err = errors.Join(err, fmt.Errorf("model: %s", v.(string)))
	}
	return err
}
