// Package html converts between plain text with entities and Telegram's
// HTML-like markup.
package html

import (
	"errors"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	xhtml "golang.org/x/net/html"

	"github.com/riverfjs/tgmarkup/internal/buffer"
	"github.com/riverfjs/tgmarkup/internal/types"
)

var (
	// 外层标签外侧的空白会被去掉，标签内部的空白保持不变
	leadingTagRe  = regexp.MustCompile(`^\s+(<[\w<>=\s"]*>)`)
	trailingTagRe = regexp.MustCompile(`(</[\w</>]*>)\s+$`)
)

// Result is the outcome of parsing markup.
type Result struct {
	Text     string
	Entities []types.Entity
	// Unclosed lists the tags still open at the end of input, in order of
	// first appearance. Their entities are dropped.
	Unclosed []types.UnclosedTag
}

// parser holds the state of a single Parse call.
type parser struct {
	text     *buffer.TextBuffer
	open     map[string][]types.Entity // per tag name, innermost last
	order    []string // tag names in order of first open
	finished []types.Entity
}

// Parse converts HTML-like markup into plain text and entities.
//
// Unknown tags are ignored but their content is kept. A closing tag without
// a matching opening tag is ignored. Entities that are never closed, or that
// cover no text, are dropped. The returned entities are sorted by offset;
// entities with equal offsets stay in the order they were closed.
func Parse(markup string) (*Result, error) {
	markup = leadingTagRe.ReplaceAllString(markup, "$1")
	markup = trailingTagRe.ReplaceAllString(markup, "$1")

	p := &parser{
		text: buffer.New(),
		open: make(map[string][]types.Entity),
	}

	z := xhtml.NewTokenizer(strings.NewReader(markup))
	consumed := 0
	for {
		tt := z.Next()
		if tt != xhtml.ErrorToken {
			consumed += len(z.Raw())
		}
		switch tt {
		case xhtml.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, &types.ParseError{
					Syntax: "html",
					Offset: len(markup) - len(z.Buffered()),
					Msg:    "cannot tokenize markup",
					Err:    err,
				}
			}
			// 末尾未完成的标签（如 "a<b"）按普通文本保留
			if consumed < len(markup) {
				p.text.Write(xhtml.UnescapeString(markup[consumed:]))
			}
			return p.result(), nil
		case xhtml.TextToken:
			// Raw keeps "\r"; Text would turn it into "\n".
			p.text.Write(xhtml.UnescapeString(string(z.Raw())))
		case xhtml.StartTagToken:
			tok := z.Token()
			if _, ok := tagTypes[tok.Data]; !ok {
				// <title>, <xmp>, <script>... 的内容照常解析
				z.NextIsNotRawText()
			}
			if err := p.startTag(tok); err != nil {
				return nil, err
			}
		case xhtml.SelfClosingTagToken:
			tok := z.Token()
			if err := p.startTag(tok); err != nil {
				return nil, err
			}
			p.endTag(tok.Data)
		case xhtml.EndTagToken:
			name, _ := z.TagName()
			p.endTag(string(name))
		}
	}
}

func (p *parser) startTag(tok xhtml.Token) error {
	kind, ok := tagTypes[tok.Data]
	if !ok {
		return nil
	}
	e := types.Entity{Type: kind, Offset: p.text.Len()}
	if extract := attrExtractors[kind]; extract != nil {
		if err := extract(&e, attrMap(tok.Attr)); err != nil {
			return err
		}
	}

	if _, seen := p.open[tok.Data]; !seen {
		p.order = append(p.order, tok.Data)
	}
	p.open[tok.Data] = append(p.open[tok.Data], e)
	return nil
}

func (p *parser) endTag(name string) {
	stack := p.open[name]
	if len(stack) == 0 {
		return
	}
	top := stack[len(stack)-1]
	p.open[name] = stack[:len(stack)-1]

	top.Length = p.text.Len() - top.Offset
	p.finished = append(p.finished, top)
}

func (p *parser) result() *Result {
	res := &Result{Text: p.text.String()}
	for _, name := range p.order {
		if n := len(p.open[name]); n > 0 {
			res.Unclosed = append(res.Unclosed, types.UnclosedTag{Name: name, Count: n})
		}
	}

	res.Entities = make([]types.Entity, 0, len(p.finished))
	for _, e := range p.finished {
		if e.Length > 0 {
			res.Entities = append(res.Entities, e)
		}
	}
	sort.SliceStable(res.Entities, func(i, j int) bool {
		return res.Entities[i].Offset < res.Entities[j].Offset
	})
	return res
}

// tagTypes maps every accepted tag name to its entity type.
var tagTypes = map[string]types.Type{
	"b":          types.Bold,
	"strong":     types.Bold,
	"i":          types.Italic,
	"em":         types.Italic,
	"u":          types.Underline,
	"ins":        types.Underline,
	"s":          types.Strikethrough,
	"del":        types.Strikethrough,
	"strike":     types.Strikethrough,
	"code":       types.Code,
	"pre":        types.Pre,
	"spoiler":    types.Spoiler,
	"tg-spoiler": types.Spoiler,
	"a":          types.TextLink,
	"emoji":      types.CustomEmoji,
	"tg-emoji":   types.CustomEmoji,
	"blockquote": types.Blockquote,
}

type attrExtractor func(e *types.Entity, attrs map[string]string) error

// attrExtractors fills the variant-specific fields of an entity.
var attrExtractors = map[types.Type]attrExtractor{
	types.Pre: func(e *types.Entity, attrs map[string]string) error {
		if lang, ok := attrs["language"]; ok {
			e.Language = lang
		} else {
			e.Language = attrs["lang"]
		}
		return nil
	},
	types.TextLink: func(e *types.Entity, attrs map[string]string) error {
		e.URL = attrs["href"]
		return nil
	},
	types.CustomEmoji: func(e *types.Entity, attrs map[string]string) error {
		raw, ok := attrs["id"]
		if !ok {
			raw = attrs["emoji-id"]
		}
		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return &types.ParseError{Syntax: "html", Offset: -1, Msg: "invalid custom emoji id " + strconv.Quote(raw), Err: err}
		}
		e.CustomEmojiID = id
		return nil
	},
	types.Blockquote: func(e *types.Entity, attrs map[string]string) error {
		_, expandable := attrs["expandable"]
		_, collapsed := attrs["collapsed"]
		e.Collapsed = expandable || collapsed
		return nil
	},
}

func attrMap(attrs []xhtml.Attribute) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		if _, dup := m[a.Key]; !dup {
			m[a.Key] = a.Val
		}
	}
	return m
}
