package loaders

import "fmt"

// FormatError reports input that cannot be loaded at all.
type FormatError struct {
	Source string
	Line   int
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Reason)
	if e.Line == 0 {
		msg = fmt.Sprintf("%s: %s", e.Source, e.Reason)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// LineSkipped reports a variable line that was dropped. Loading continues.
type LineSkipped struct {
	Line   int
	Name   string
	Reason string
	Err    error
}

func (e *LineSkipped) Error() string {
	msg := fmt.Sprintf("line %d: %s: %s, line skipped", e.Line, e.Name, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LineSkipped) Unwrap() error {
	return e.Err
}
