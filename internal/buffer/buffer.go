package buffer

import (
	"unicode/utf16"

	"github.com/riverfjs/tgmarkup/internal/codeunit"
)

// TextBuffer accumulates plain text as UTF-16 code units.
//
// The current length is the offset at which the next entity starts.
type TextBuffer struct {
	units codeunit.Text
}

// New creates a new TextBuffer.
func New() *TextBuffer {
	return &TextBuffer{
		units: make(codeunit.Text, 0, 64),
	}
}

// Write appends text to the buffer and returns the number of code units
// written.
func (tb *TextBuffer) Write(text string) int {
	n := len(tb.units)
	for _, r := range text {
		tb.units = utf16.AppendRune(tb.units, r)
	}
	return len(tb.units) - n
}

// Len returns the current length in code units.
func (tb *TextBuffer) Len() int {
	return len(tb.units)
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	return tb.units.String()
}
