package types

import (
	"errors"
	"fmt"
)

// ErrTooDeep is wrapped by a ParseError when entities nest deeper than the
// configured limit.
var ErrTooDeep = errors.New("entity nesting too deep")

// ParseError reports structurally invalid input.
type ParseError struct {
	Syntax string // "html" or "markdown"
	Offset int    // byte offset into the input, -1 if unknown
	Msg    string
	Err    error
}

func (e *ParseError) Error() string {
	msg := e.Syntax + ": " + e.Msg
	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s: at byte %d: %s", e.Syntax, e.Offset, e.Msg)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// InternalError wraps an unexpected failure during Op.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return "tgmarkup: unexpected error during " + e.Op + ": " + e.Err.Error()
}

func (e *InternalError) Unwrap() error { return e.Err }
