// Package markdown converts between plain text with entities and Telegram's
// delimiter-based Markdown.
//
// Parsing works in two phases. Reflow turns quoted lines into blockquote
// tags, then ToHTML rewrites inline delimiters into tags. The resulting
// HTML-like markup is handed to the html package, which computes every
// offset and length.
package markdown

import (
	"errors"

	"github.com/riverfjs/tgmarkup/internal/html"
	"github.com/riverfjs/tgmarkup/internal/types"
)

// Parse converts Markdown into plain text and entities.
func Parse(text string, strict bool) (*html.Result, error) {
	markup := ToHTML(Reflow(text, strict))
	res, err := html.Parse(markup)
	if err != nil {
		var pe *types.ParseError
		if errors.As(err, &pe) {
			pe.Syntax = "markdown"
			pe.Offset = -1
		}
		return nil, err
	}
	return res, nil
}
