package logs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestNewSpan(t *testing.T) {
	level.Set(slog.LevelDebug)
	defer level.Set(slog.LevelInfo)

	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newSpan NewSpan,
	) {
		ctx := context.Background()

		ctx1, span1 := newSpan(ctx, "load")

		ctx11, span11 := newSpan(ctx1, "run")
		_ = ctx11

		lines := strings.Split(buf.String(), "\n")
		if !strings.Contains(lines[0], "logs.span="+string(span1)) {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[0], "msg=load") {
			t.Fatalf("got %v", lines[0])
		}
		if strings.Contains(lines[0], "parent=") {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[1], "logs.span="+string(span11)) {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[1], "parent="+string(span1)) {
			t.Fatalf("got %v", lines[1])
		}

	})
}

func TestModelAttr(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		ctx := WithModel(context.Background(), "Model2")
		logger.InfoContext(ctx, "run")
		if !strings.Contains(buf.String(), "model=Model2") {
			t.Fatalf("got %v", buf.String())
		}
	})
}

func TestWrapSpan(t *testing.T) {
	if WrapSpan(context.Background(), nil) != nil {
		t.Fatal()
	}
	ctx := context.WithValue(context.Background(), SpanKey, Span("foo"))
	ctx = WithModel(ctx, "Model3")
	err := WrapSpan(ctx, errors.New("test"))
	if !strings.Contains(err.Error(), "span: foo") {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "model: Model3") {
		t.Fatalf("got %v", err)
	}
}
