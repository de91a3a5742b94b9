package convert

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when Convert is given a zero-length line
// sequence. Callers surface it as "nothing to convert" feedback rather
// than a crash.
var ErrEmptyInput = errors.New("convert: empty input")

// ErrUnterminatedSpan signals an internal renderer invariant violation: a
// classified span was left open at end of input. Convert still returns its
// best-effort partial output alongside this error so callers can log the
// defect without losing the user's text.
var ErrUnterminatedSpan = errors.New("convert: unterminated span")

// MalformedInputError reports run data structurally inconsistent with its
// owning line. Conversion aborts for the invocation; the line number
// identifies the offending input line.
type MalformedInputError struct {
	Line   int
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("convert: malformed input at line %d: %s", e.Line, e.Reason)
}
