package markdown

import (
	"sort"
	"strconv"

	"github.com/riverfjs/tgmarkup/internal/codeunit"
	"github.com/riverfjs/tgmarkup/internal/types"
)

// mark is a delimiter insertion, numbered in discovery order.
type mark struct {
	codeunit.Marker
	seq int
}

// delimPair returns the delimiters placed at the start and end of e.
func delimPair(e types.Entity) (start, end string, ok bool) {
	switch e.Type {
	case types.Bold:
		return boldDelim, boldDelim, true
	case types.Italic:
		return italicDelim, italicDelim, true
	case types.Underline:
		return underlineDelim, underlineDelim, true
	case types.Strikethrough:
		return strikeDelim, strikeDelim, true
	case types.Code:
		return codeDelim, codeDelim, true
	case types.Spoiler:
		return spoilerDelim, spoilerDelim, true
	case types.Pre:
		return preDelim + e.Language + "\n", "\n" + preDelim, true
	case types.TextLink:
		return "[", "](" + e.URL + ")", true
	case types.CustomEmoji:
		return "![", "](" + emojiURLPrefix + strconv.FormatInt(e.CustomEmojiID, 10) + ")", true
	}
	return "", "", false
}

// Render converts text and entities into Markdown.
//
// Every delimiter is an independent insertion, so entities need not nest.
// A blockquote gets a "> " prefix on each of its lines; a collapsed one
// starts with "**> " and ends with "||". Delimiters are inserted from the
// highest offset down; at equal offsets the one discovered later is inserted
// first and so ends up closer to the text.
func Render(text string, entities []types.Entity) string {
	units := codeunit.Encode(text)
	var marks []mark
	add := func(s string, off int) {
		marks = append(marks, mark{Marker: codeunit.Marker{Text: s, Offset: off}, seq: len(marks)})
	}

	// End markers of collapsed quotations are added last so that they stay
	// outermost and still end their line.
	var quoteEnds []codeunit.Marker
	for _, e := range entities {
		if e.Type == types.Blockquote {
			if end, ok := quoteMarks(units, e, add); ok {
				quoteEnds = append(quoteEnds, end)
			}
			continue
		}
		start, end, ok := delimPair(e)
		if !ok {
			continue
		}
		add(start, e.Offset)
		add(end, e.End())
	}
	for _, m := range quoteEnds {
		add(m.Text, m.Offset)
	}

	sort.SliceStable(marks, func(i, j int) bool {
		if marks[i].Offset != marks[j].Offset {
			return marks[i].Offset > marks[j].Offset
		}
		return marks[i].seq > marks[j].seq
	})
	applied := make([]codeunit.Marker, len(marks))
	for i, m := range marks {
		applied[i] = m.Marker
	}
	return codeunit.Splice(units, applied, nil)
}

// quoteMarks adds a quote prefix at the start of every line covered by e.
// An empty last line, left by a trailing newline, gets no prefix. For a
// collapsed quotation it returns the end marker, which the caller adds.
func quoteMarks(units codeunit.Text, e types.Entity, add func(string, int)) (codeunit.Marker, bool) {
	start := max(e.Offset, 0)
	end := min(e.End(), len(units))
	if start >= end {
		return codeunit.Marker{}, false
	}

	first := quoteDelim + " "
	if e.Collapsed {
		first = expandableQuoteDelim + " "
	}
	add(first, start)
	for i := start; i < end-1; i++ {
		if units[i] == '\n' {
			add(quoteDelim+" ", i+1)
		}
	}

	if !e.Collapsed {
		return codeunit.Marker{}, false
	}
	last := end
	if units[end-1] == '\n' {
		last--
	}
	return codeunit.Marker{Text: expandableQuoteEnd, Offset: last}, true
}
