package parsers

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownDirection is returned for a matched line that reports neither DL nor UL.
	// It is not fatal: the caller records a diagnostic and moves on.
	ErrUnknownDirection = errors.New("unknown DL/UL attribution")

	ErrMissingField      = errors.New("missing field")
	ErrUnsupportedFormat = errors.New("unsupported trace format")
)

// ParseError reports a required field that is missing or not a valid number.
// The trace format is trusted, so a ParseError aborts the file.
// Line is 1-based and only known once the error passed through the pipeline.
type ParseError struct {
	Line  int
	Field string
	Raw   string
	Err   error
}

func (e *ParseError) Error() string {
	var prefix string
	if e.Line > 0 {
		prefix = fmt.Sprintf("line %d: ", e.Line)
	}
	if errors.Is(e.Err, ErrMissingField) {
		return fmt.Sprintf("%sfield %q: %v", prefix, e.Field, e.Err)
	}
	return fmt.Sprintf("%sfield %q: invalid value %q: %v", prefix, e.Field, e.Raw, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
