package tgmarkup

import (
	"log/slog"
	"sync"

	"github.com/riverfjs/tgmarkup/internal/html"
)

// Config controls parsing and rendering.
type Config struct {
	// Strict HTML-escapes Markdown input before the HTML stage, so that
	// stray angle brackets and ampersands are kept as text.
	Strict bool
	// MaxDepth bounds entity nesting when rendering HTML.
	MaxDepth int
	// Logger receives diagnostics. Nil means the package Logger.
	Logger *slog.Logger
}

var (
	defaultConfig     *Config
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default configuration (singleton). Do not modify
// it; options are applied to a copy.
func DefaultConfig() *Config {
	defaultConfigOnce.Do(func() {
		defaultConfig = &Config{
			Strict:   false,
			MaxDepth: html.DefaultMaxDepth,
		}
	})
	return defaultConfig
}

func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return Logger
}
