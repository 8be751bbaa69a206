// Command tgmarkup converts between Telegram markup and plain text with
// entities.
//
//	tgmarkup parse message.md            # Markdown -> JSON {text, entities}
//	tgmarkup parse --syntax=html -        # HTML from stdin
//	tgmarkup parse --split=4096 long.md   # JSON array of message chunks
//	tgmarkup render --syntax=html in.json # JSON -> HTML
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/riverfjs/tgmarkup"
)

const version = "0.1.0"

// CLI defines the command-line interface for tgmarkup.
var CLI struct {
	Debug bool `help:"Log diagnostics such as dropped unclosed tags to stderr"`

	Parse   ParseCmd   `cmd:"" help:"Parse markup into text and entities (JSON)"`
	Render  RenderCmd  `cmd:"" help:"Render text and entities (JSON) into markup"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// ParseCmd parses markup.
type ParseCmd struct {
	Syntax string `short:"s" enum:"html,markdown,md" default:"markdown" help:"Input syntax (html, markdown)"`
	Strict bool   `help:"Escape <, > and & in Markdown input before tags are read"`
	Split  int    `help:"Split the result into messages of at most N UTF-16 code units"`
	File   string `arg:"" optional:"" help:"Input file (default stdin)"`
}

func (c *ParseCmd) Run() error {
	return c.run(os.Stdin, os.Stdout)
}

func (c *ParseCmd) run(stdin io.Reader, stdout io.Writer) error {
	syntax, err := tgmarkup.ParseSyntax(c.Syntax)
	if err != nil {
		return err
	}
	input, err := readInput(c.File, stdin)
	if err != nil {
		return err
	}
	opts := options(tgmarkup.WithStrict(c.Strict))

	if c.Split > 0 {
		chunks, err := tgmarkup.Messages(string(input), syntax, c.Split, opts...)
		if err != nil {
			return err
		}
		return writeJSON(stdout, chunks)
	}

	res, err := tgmarkup.Parse(string(input), syntax, opts...)
	if err != nil {
		return err
	}
	for _, u := range res.Unclosed {
		fmt.Fprintf(os.Stderr, "warning: unclosed %s dropped\n", u)
	}
	return writeJSON(stdout, res)
}

// RenderCmd renders a JSON document {"text": ..., "entities": [...]}.
type RenderCmd struct {
	Syntax   string `short:"s" enum:"html,markdown,md" default:"markdown" help:"Output syntax (html, markdown)"`
	MaxDepth int    `name:"max-depth" help:"Maximum entity nesting for HTML output (0 = default)"`
	File     string `arg:"" optional:"" help:"Input JSON file (default stdin)"`
}

func (c *RenderCmd) Run() error {
	return c.run(os.Stdin, os.Stdout)
}

func (c *RenderCmd) run(stdin io.Reader, stdout io.Writer) error {
	syntax, err := tgmarkup.ParseSyntax(c.Syntax)
	if err != nil {
		return err
	}
	input, err := readInput(c.File, stdin)
	if err != nil {
		return err
	}
	var doc tgmarkup.Result
	if err := json.Unmarshal(input, &doc); err != nil {
		return fmt.Errorf("invalid input JSON: %w", err)
	}

	var opts []tgmarkup.Option
	if c.MaxDepth > 0 {
		opts = append(opts, tgmarkup.WithMaxDepth(c.MaxDepth))
	}
	out, err := tgmarkup.Render(doc.Text, doc.Entities, syntax, options(opts...)...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("tgmarkup version %s\n", version)
	return nil
}

// Helper functions

func options(opts ...tgmarkup.Option) []tgmarkup.Option {
	if CLI.Debug {
		opts = append(opts, tgmarkup.WithLogger(debugLogger()))
	}
	return opts
}

func debugLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With("lib", "tgmarkup")
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("tgmarkup"),
		kong.Description("Convert Telegram HTML/Markdown to text with entities and back"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
