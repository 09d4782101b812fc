package i18n

import (
	"log/slog"
	"strings"
)

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the locale that terminates every fallback chain.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = strings.ToLower(lang)
		}
	}
}

// WithLogger sets the logger used for load and missing-message records.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMissingMessagesLogging logs a warning whenever a key is absent from the
// whole fallback chain. Off by default.
func WithMissingMessagesLogging(enabled bool) Option {
	return func(c *Catalog) {
		c.missingLogMode = enabled
	}
}
