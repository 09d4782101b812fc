package i18n

import (
	"context"
	"embed"
)

//go:embed messages/*.yaml
var defaultMessages embed.FS

// DefaultMessages returns the adapter for the built-in catalog, which holds
// the error envelope and validation messages in English and Japanese.
func DefaultMessages() Adapter {
	return NewFSAdapter(defaultMessages, "messages/*.yaml")
}

// Default loads the built-in catalog.
func Default(ctx context.Context, options ...Option) (*Catalog, error) {
	return New(ctx, DefaultMessages(), options...)
}
