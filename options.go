package tgmarkup

import "log/slog"

// Option is a function that configures a Config.
type Option func(*Config)

// WithStrict sets whether Markdown input is HTML-escaped before tags are
// interpreted.
func WithStrict(enable bool) Option {
	return func(c *Config) {
		c.Strict = enable
	}
}

// WithMaxDepth sets the maximum entity nesting accepted by the HTML renderer.
func WithMaxDepth(depth int) Option {
	return func(c *Config) {
		c.MaxDepth = depth
	}
}

// WithLogger sets the logger used for a single call.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithConfig replaces all settings with a copy of config.
func WithConfig(config *Config) Option {
	return func(c *Config) {
		if config != nil {
			*c = *config
		}
	}
}

// applyOptions applies the given options to a copy of the default config.
func applyOptions(opts ...Option) *Config {
	c := *DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}
