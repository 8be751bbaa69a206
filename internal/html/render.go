package html

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/yuin/goldmark/util"

	"github.com/riverfjs/tgmarkup/internal/codeunit"
	"github.com/riverfjs/tgmarkup/internal/types"
)

// DefaultMaxDepth bounds entity nesting in Render.
const DefaultMaxDepth = 128

// Escape escapes the characters that are significant in markup.
func Escape(s string) string {
	return string(util.EscapeHTML([]byte(s)))
}

// tagPair returns the opening and closing tags for e, or ok == false if e
// has no HTML form.
func tagPair(e types.Entity) (openTag, closeTag string, ok bool) {
	switch e.Type {
	case types.Bold:
		return "<b>", "</b>", true
	case types.Italic:
		return "<i>", "</i>", true
	case types.Underline:
		return "<u>", "</u>", true
	case types.Strikethrough:
		return "<s>", "</s>", true
	case types.Code:
		return "<code>", "</code>", true
	case types.Spoiler:
		return "<spoiler>", "</spoiler>", true
	case types.Pre:
		if e.Language != "" {
			return `<pre language="` + Escape(e.Language) + `">`, "</pre>", true
		}
		return "<pre>", "</pre>", true
	case types.Blockquote:
		if e.Collapsed {
			return "<blockquote expandable>", "</blockquote>", true
		}
		return "<blockquote>", "</blockquote>", true
	case types.TextLink:
		return `<a href="` + Escape(e.URL) + `">`, "</a>", true
	case types.CustomEmoji:
		return `<emoji id="` + strconv.FormatInt(e.CustomEmojiID, 10) + `">`, "</emoji>", true
	}
	return "", "", false
}

// renderer holds the state of a single Render call.
type renderer struct {
	entities []types.Entity
	markers  []codeunit.Marker // in emission order
	maxDepth int
}

// Render converts text and entities into HTML-like markup.
//
// Entities are expected to nest cleanly; partially overlapping entities
// produce best-effort output. Entities of unknown type are skipped. Nesting
// deeper than maxDepth (DefaultMaxDepth if maxDepth <= 0) is reported as a
// ParseError wrapping types.ErrTooDeep.
func Render(text string, entities []types.Entity, maxDepth int) (string, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	sorted := make([]types.Entity, len(entities))
	copy(sorted, entities)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Offset != sorted[j].Offset {
			return sorted[i].Offset < sorted[j].Offset
		}
		return sorted[i].Length > sorted[j].Length
	})

	r := &renderer{
		entities: sorted,
		markers:  make([]codeunit.Marker, 0, 2*len(sorted)),
		maxDepth: maxDepth,
	}
	for i := 0; i < len(sorted); {
		n, err := r.walk(i, 1)
		if err != nil {
			return "", err
		}
		i += n
	}

	// Apply from the end so earlier offsets stay valid.
	applied := make([]codeunit.Marker, len(r.markers))
	for i, m := range r.markers {
		applied[len(r.markers)-1-i] = m
	}
	return codeunit.Splice(codeunit.Encode(text), applied, Escape), nil
}

// walk emits the entity at index i together with every following entity
// that starts before it ends, and returns how many entities it consumed.
func (r *renderer) walk(i, depth int) (int, error) {
	if depth > r.maxDepth {
		return 0, &types.ParseError{
			Syntax: "html",
			Offset: -1,
			Msg:    fmt.Sprintf("entity %d nests deeper than %d", i, r.maxDepth),
			Err:    types.ErrTooDeep,
		}
	}

	e := r.entities[i]
	openTag, closeTag, ok := tagPair(e)
	if !ok {
		return 1, nil
	}
	end := e.End()

	r.markers = append(r.markers, codeunit.Marker{Text: openTag, Offset: e.Offset})
	j := i + 1
	for j < len(r.entities) && r.entities[j].Offset < end {
		n, err := r.walk(j, depth+1)
		if err != nil {
			return 0, err
		}
		j += n
	}
	r.markers = append(r.markers, codeunit.Marker{Text: closeTag, Offset: end})
	return j - i, nil
}
