package core

import (
	"errors"
	"fmt"
)

// ErrEmptyInput rejects blank user text before any provider call.
var ErrEmptyInput = errors.New("empty input")

// ClassificationError reports that the external model call failed or
// returned a structure we could not interpret. The input is discarded
// and never committed as an entry.
type ClassificationError struct {
	Err error  // underlying provider error, if any
	Raw string // offending raw output, if the call itself succeeded
}

func (e *ClassificationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("classification failed: %v", e.Err)
	}
	return fmt.Sprintf("classification returned unusable output: %s", e.Raw)
}

func (e *ClassificationError) Unwrap() error { return e.Err }

// TimeParseError reports a reminder whose due time could not be
// resolved. The entry is not created.
type TimeParseError struct {
	Phrase string
}

func (e *TimeParseError) Error() string {
	return fmt.Sprintf("cannot resolve due time from %q", e.Phrase)
}
