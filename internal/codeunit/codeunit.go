// Package codeunit converts between Go strings and UTF-16 code units.
//
// Telegram measures entity offsets and lengths in UTF-16 code units, not Go
// string bytes or runes. Characters outside the BMP (codepoint > 0xFFFF) take
// two code units (a surrogate pair); all others take one. Every offset in
// this module is expressed in this unit.
package codeunit

import (
	"strings"
	"unicode/utf16"
)

// Text is a string in UTF-16 code units.
type Text []uint16

// Encode converts s to code units.
//
// Invalid UTF-8 bytes are replaced with U+FFFD, so Encode(s).String() == s
// holds for every valid UTF-8 string.
func Encode(s string) Text {
	return utf16.Encode([]rune(s))
}

// String decodes t back into a Go string. A lone surrogate decodes to U+FFFD.
func (t Text) String() string {
	return string(utf16.Decode(t))
}

// Len returns the length of s in code units without allocating.
func Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// Slice returns the code units in [start, end), clamped to t.
func (t Text) Slice(start, end int) Text {
	start = clamp(start, 0, len(t))
	end = clamp(end, start, len(t))
	return t[start:end]
}

// Marker is a piece of markup to insert at Offset.
type Marker struct {
	Text   string
	Offset int
}

// Splice inserts markers into t in a single pass.
//
// markers must already be in application order: highest offset first, so
// that no insertion shifts an offset that has not been applied yet. The text
// between consecutive markers (and before the first and after the last) is
// passed through escape; a nil escape leaves it unchanged. An offset past the
// previously applied one is clamped to it, which keeps the output well-formed
// for partially overlapping entities.
func Splice(t Text, markers []Marker, escape func(string) string) string {
	if escape == nil {
		escape = func(s string) string { return s }
	}

	last := len(t)
	pieces := make([]string, 0, 2*len(markers)+1)
	for _, m := range markers {
		off := clamp(m.Offset, 0, last)
		pieces = append(pieces, escape(t[off:last].String()), m.Text)
		last = off
	}
	pieces = append(pieces, escape(t[:last].String()))

	var sb strings.Builder
	for i := len(pieces) - 1; i >= 0; i-- {
		sb.WriteString(pieces[i])
	}
	return sb.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
