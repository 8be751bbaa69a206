package markdown

import (
	"strings"

	"github.com/riverfjs/tgmarkup/internal/html"
)

const (
	quoteDelim           = ">"
	expandableQuoteDelim = "**>"
	expandableQuoteEnd   = "||"
)

// line is one input line during quotation reflow.
type line struct {
	text    string
	escaped bool // already final markup, never escaped again
	dropped bool // merged into an earlier line's blockquote
}

// quoter collects consecutive quoted lines into one blockquote.
type quoter struct {
	lines  []line
	strict bool
	queue  []int // indexes of lines waiting to be quoted
}

// Reflow turns runs of quoted lines into single <blockquote> tags.
//
// A line starting with ">" joins the current run; the first line that does
// not ends it. A line starting with "**>" opens an expandable quotation that
// runs until a line ending with "||" or until the quoted lines stop. In
// strict mode every line that is not quotation markup is HTML-escaped, so
// stray angle brackets survive the HTML stage.
func Reflow(text string, strict bool) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	raw := strings.Split(text, "\n")

	q := &quoter{lines: make([]line, len(raw)), strict: strict}
	for i, s := range raw {
		q.lines[i].text = s
	}

	q.expandable()
	q.plain()

	out := make([]string, 0, len(q.lines))
	for _, l := range q.lines {
		if l.dropped {
			continue
		}
		if strict && !l.escaped {
			l.text = html.Escape(l.text)
		}
		out = append(out, l.text)
	}
	return strings.Join(out, "\n")
}

// expandable handles "**>" quotations.
func (q *quoter) expandable() {
	inside := false
	for i := range q.lines {
		s := q.lines[i].text
		if inside && !strings.HasPrefix(s, quoteDelim) {
			// The quoted lines stopped without an end marker.
			q.flush(true)
			inside = false
		}

		switch {
		case inside && strings.HasSuffix(s, expandableQuoteEnd):
			q.push(i, strings.TrimSuffix(stripDelim(s, quoteDelim), expandableQuoteEnd))
			q.flush(true)
			inside = false
		case inside:
			q.push(i, stripDelim(s, quoteDelim))
		case strings.HasPrefix(s, expandableQuoteDelim):
			s = stripDelim(s, expandableQuoteDelim)
			if strings.HasSuffix(s, expandableQuoteEnd) {
				q.push(i, strings.TrimSuffix(s, expandableQuoteEnd))
				q.flush(true)
				continue
			}
			q.push(i, s)
			inside = true
		}
	}
	q.flush(true)
}

// plain handles ">" quotations.
func (q *quoter) plain() {
	for i := range q.lines {
		l := q.lines[i]
		if l.dropped {
			continue
		}
		if !l.escaped && strings.HasPrefix(l.text, quoteDelim) {
			q.push(i, stripDelim(l.text, quoteDelim))
			continue
		}
		q.flush(false)
	}
	q.flush(false)
}

func (q *quoter) push(i int, s string) {
	if q.strict {
		s = html.Escape(s)
	}
	q.lines[i].text = s
	q.lines[i].escaped = true
	q.queue = append(q.queue, i)
}

// flush merges the queued lines into the first of them, enclosed in a
// blockquote, and drops the rest.
func (q *quoter) flush(expandable bool) {
	if len(q.queue) == 0 {
		return
	}
	parts := make([]string, len(q.queue))
	for n, i := range q.queue {
		parts[n] = q.lines[i].text
		if n > 0 {
			q.lines[i].dropped = true
		}
	}

	open := "<blockquote>"
	if expandable {
		open = "<blockquote expandable>"
	}
	q.lines[q.queue[0]].text = open + strings.Join(parts, "\n") + "</blockquote>"
	q.queue = q.queue[:0]
}

// stripDelim removes delim and one following space from the start of s.
func stripDelim(s, delim string) string {
	s = strings.TrimPrefix(s, delim)
	return strings.TrimPrefix(s, " ")
}
