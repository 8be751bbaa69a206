package markdown

import (
	"regexp"
	"strings"
)

const (
	boldDelim      = "*"
	italicDelim    = "_"
	underlineDelim = "__"
	strikeDelim    = "~"
	spoilerDelim   = "||"
	codeDelim      = "`"
	preDelim       = "```"

	emojiURLPrefix = "tg://emoji?id="
)

// delimTags maps each inline delimiter to the tag it becomes.
var delimTags = map[string]string{
	boldDelim:      "b",
	italicDelim:    "i",
	underlineDelim: "u",
	strikeDelim:    "s",
	spoilerDelim:   "spoiler",
	codeDelim:      "code",
	preDelim:       "pre",
}

// markdownRe matches one delimiter, or a [text](url) link, or an
// ![emoji](tg://emoji?id=N) custom emoji. Alternation order is precedence:
// longer delimiters are listed before their prefixes.
var markdownRe = regexp.MustCompile(`(` + strings.Join([]string{
	regexp.QuoteMeta(preDelim),
	regexp.QuoteMeta(codeDelim),
	regexp.QuoteMeta(strikeDelim),
	regexp.QuoteMeta(underlineDelim),
	regexp.QuoteMeta(italicDelim),
	regexp.QuoteMeta(boldDelim),
	regexp.QuoteMeta(spoilerDelim),
}, "|") + `)|(!?)\[(.+?)\]\((.+?)\)`)

func isFixedWidth(delim string) bool {
	return delim == codeDelim || delim == preDelim
}

// scanner holds the state of one ToHTML call.
type scanner struct {
	out   []byte
	open  map[string]bool // delimiters seen an odd number of times
	fixed bool            // inside a code or pre span
}

// ToHTML replaces inline delimiters, links and custom emoji in text with
// HTML-like tags.
//
// Delimiters pair by occurrence: the first occurrence of a delimiter opens
// its tag and the next one closes it, regardless of what lies between.
// Inside a code or pre span every other delimiter, link and emoji is kept
// literally. A pre opener followed by a language name and a newline on the
// same line takes the name as its language; the newline after the opener and
// the one before the closer are part of the markup, not of the code.
func ToHTML(text string) string {
	s := &scanner{
		out:  make([]byte, 0, len(text)+len(text)/4),
		open: make(map[string]bool),
	}

	pos := 0
	for pos < len(text) {
		m := markdownRe.FindStringSubmatchIndex(text[pos:])
		if m == nil {
			break
		}
		start, end := pos+m[0], pos+m[1]
		delim, bang := group(text, pos, m, 1), group(text, pos, m, 2)
		label, url := group(text, pos, m, 3), group(text, pos, m, 4)
		s.out = append(s.out, text[pos:start]...)
		pos = s.match(text, start, end, delim, bang == "!", label, url)
	}
	if pos < len(text) {
		s.out = append(s.out, text[pos:]...)
	}
	return string(s.out)
}

// match rewrites the match at text[start:end] and returns the position at
// which scanning resumes.
func (s *scanner) match(text string, start, end int, delim string, isEmoji bool, label, url string) int {
	full := text[start:end]

	if isFixedWidth(delim) {
		s.fixed = !s.fixed
	}
	if s.fixed && !isFixedWidth(delim) {
		s.write(full)
		return end
	}

	if delim == "" {
		if isEmoji {
			s.write(`<emoji id="`, attrEscape(strings.TrimPrefix(url, emojiURLPrefix)), `">`, label, "</emoji>")
		} else {
			s.write(`<a href="`, attrEscape(url), `">`, label, "</a>")
		}
		return end
	}

	tag := delimTags[delim]
	if s.open[delim] {
		delete(s.open, delim)
		if delim == preDelim {
			s.trimTrailingNewline()
		}
		s.write("</", tag, ">")
		return end
	}

	s.open[delim] = true
	if delim == preDelim {
		lang, next := preLanguage(text, end)
		if lang != "" {
			s.write(`<pre language="`, attrEscape(lang), `">`)
		} else {
			s.write("<pre>")
		}
		return next
	}
	s.write("<", tag, ">")
	return end
}

// preLanguage reads the rest of the line after a pre opener ending at pos.
// If it is a language name (possibly empty) followed by a newline, it
// returns the name and the position after the newline.
func preLanguage(text string, pos int) (string, int) {
	eol := strings.IndexByte(text[pos:], '\n')
	if eol < 0 {
		return "", pos
	}
	rest := strings.TrimSpace(text[pos : pos+eol])
	if strings.ContainsAny(rest, "` \t") {
		return "", pos
	}
	return rest, pos + eol + 1
}

func (s *scanner) write(parts ...string) {
	for _, p := range parts {
		s.out = append(s.out, p...)
	}
}

func (s *scanner) trimTrailingNewline() {
	if n := len(s.out); n > 0 && s.out[n-1] == '\n' {
		s.out = s.out[:n-1]
	}
}

// attrEscape escapes a double quote so the value cannot end its attribute.
func attrEscape(v string) string {
	return strings.ReplaceAll(v, `"`, "&quot;")
}

func group(text string, base int, m []int, n int) string {
	if m[2*n] < 0 {
		return ""
	}
	return text[base+m[2*n] : base+m[2*n+1]]
}
