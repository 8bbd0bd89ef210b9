package preview

import (
	"time"

	"github.com/rs/zerolog"
)

// Config holds all configuration for the preview server.
type Config struct {
	Addr       string        // Listen address (default ":3000")
	ContentDir string        // Directory of page sources (default "content")
	CacheTTL   time.Duration // Site metadata cache TTL (default 1m, negative disables)
}

func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithLogger sets the logger used for request and error logs.
func WithLogger(l zerolog.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}
