package tgmarkup

import "github.com/riverfjs/tgmarkup/internal/types"

type (
	// ParseError reports structurally invalid input or nesting deeper than
	// Config.MaxDepth.
	ParseError = types.ParseError
	// InternalError wraps any other failure, including recovered panics.
	InternalError = types.InternalError
)

// ErrTooDeep is wrapped by the ParseError returned when entities nest deeper
// than Config.MaxDepth.
var ErrTooDeep = types.ErrTooDeep
