package tgmarkup

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/riverfjs/tgmarkup/internal/html"
	"github.com/riverfjs/tgmarkup/internal/markdown"
)

// Syntax selects a markup language.
type Syntax int

const (
	// HTML is the tag syntax: <b>, <i>, <a href="...">, <blockquote expandable>...
	HTML Syntax = iota
	// Markdown is the delimiter syntax: *bold*, _italic_, __underline__, ~strike~,
	// ||spoiler||, `code`, ```pre```, [text](url), > quote.
	Markdown
)

// String returns the lower-case name of s.
func (s Syntax) String() string {
	switch s {
	case HTML:
		return "html"
	case Markdown:
		return "markdown"
	default:
		return fmt.Sprintf("Syntax(%d)", int(s))
	}
}

// ParseSyntax returns the Syntax named name ("html", "markdown" or "md",
// case-insensitive).
func ParseSyntax(name string) (Syntax, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "html":
		return HTML, nil
	case "markdown", "md":
		return Markdown, nil
	}
	return 0, fmt.Errorf("tgmarkup: unknown syntax %q", name)
}

// Result is plain text with its entities.
type Result struct {
	Text     string   `json:"text"`
	Entities []Entity `json:"entities"`
	// Unclosed lists tags (after Markdown delimiters were turned into tags)
	// that were still open at the end of input. Their entities were dropped.
	Unclosed []UnclosedTag `json:"unclosed,omitempty"`
}

// Parse converts markup in the given syntax into plain text and entities.
//
// Recoverable problems never fail: unclosed tags, stray closing tags and
// empty entities are dropped. A *ParseError reports input that cannot be
// tokenized or carries an invalid custom emoji id; any other failure is an
// *InternalError. Offsets and lengths are in UTF-16 code units.
func Parse(markup string, syntax Syntax, opts ...Option) (res *Result, err error) {
	cfg := applyOptions(opts...)
	log := cfg.logger().With("syntax", syntax.String())
	defer func() {
		if r := recover(); r != nil {
			err = &InternalError{Op: "parse", Err: fmt.Errorf("panic: %v", r)}
			res = nil
		}
		if err != nil {
			logFailure(log, "parse", err)
		}
	}()

	var parsed *html.Result
	switch syntax {
	case HTML:
		parsed, err = html.Parse(markup)
	case Markdown:
		parsed, err = markdown.Parse(markup, cfg.Strict)
	default:
		return nil, &InternalError{Op: "parse", Err: fmt.Errorf("unknown syntax %v", syntax)}
	}
	if err != nil {
		return nil, wrapInternal("parse", err)
	}

	for _, u := range parsed.Unclosed {
		log.Debug("unclosed tag dropped", "tag", u.Name, "count", u.Count)
	}
	return &Result{
		Text:     parsed.Text,
		Entities: parsed.Entities,
		Unclosed: parsed.Unclosed,
	}, nil
}

// Render converts text and entities into markup in the given syntax.
//
// For HTML, entities must nest cleanly; partial overlaps give best-effort
// output. Markdown delimiters are independent insertions and need no
// nesting. Entities of unknown type are skipped.
func Render(text string, entities []Entity, syntax Syntax, opts ...Option) (out string, err error) {
	cfg := applyOptions(opts...)
	log := cfg.logger().With("syntax", syntax.String())
	defer func() {
		if r := recover(); r != nil {
			err = &InternalError{Op: "render", Err: fmt.Errorf("panic: %v", r)}
			out = ""
		}
		if err != nil {
			logFailure(log, "render", err)
		}
	}()

	switch syntax {
	case HTML:
		out, err = html.Render(text, entities, cfg.MaxDepth)
		return out, wrapInternal("render", err)
	case Markdown:
		return markdown.Render(text, entities), nil
	}
	return "", &InternalError{Op: "render", Err: fmt.Errorf("unknown syntax %v", syntax)}
}

// ParseHTML is Parse(markup, HTML, opts...).
func ParseHTML(markup string, opts ...Option) (*Result, error) {
	return Parse(markup, HTML, opts...)
}

// ParseMarkdown is Parse(markup, Markdown, opts...).
func ParseMarkdown(markup string, opts ...Option) (*Result, error) {
	return Parse(markup, Markdown, opts...)
}

// RenderHTML is Render(text, entities, HTML, opts...).
func RenderHTML(text string, entities []Entity, opts ...Option) (string, error) {
	return Render(text, entities, HTML, opts...)
}

// RenderMarkdown is Render(text, entities, Markdown, opts...).
func RenderMarkdown(text string, entities []Entity, opts ...Option) (string, error) {
	return Render(text, entities, Markdown, opts...)
}

// wrapInternal passes ParseErrors through and wraps everything else.
func wrapInternal(op string, err error) error {
	if err == nil {
		return nil
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return err
	}
	var ie *InternalError
	if errors.As(err, &ie) {
		return err
	}
	return &InternalError{Op: op, Err: err}
}

func logFailure(log *slog.Logger, op string, err error) {
	var pe *ParseError
	if errors.As(err, &pe) {
		log.Error("markup error", "op", op, "err", err)
		return
	}
	log.Error("unexpected error", "op", op, "err", err)
}
