package main

import (
	"context"
	"log/slog"

	"github.com/jse-go/restkit/pkg/errorcode"
	"github.com/jse-go/restkit/pkg/httpserver"
	"github.com/jse-go/restkit/pkg/i18n"
	"github.com/jse-go/restkit/pkg/logger"
)

type appConfig struct {
	Log    logger.Config
	HTTP   httpserver.Config
	Errors errorcode.Config
	I18n   i18nConfig
}

type i18nConfig struct {
	// CatalogFile replaces the built-in catalog when set (.yaml, .yml or .json).
	CatalogFile     string   `env:"I18N_CATALOG_FILE"`
	DefaultLanguage string   `env:"I18N_DEFAULT_LANGUAGE" envDefault:"en"`
	Languages       []string `env:"I18N_LANGUAGES" envDefault:"en,ja" envSeparator:","`
}

func (c appConfig) errorCodes() *errorcode.Table {
	return errorcode.NewFromConfig(c.Errors)
}

func (c i18nConfig) catalog(ctx context.Context, log *slog.Logger) (*i18n.Catalog, error) {
	opts := []i18n.Option{
		i18n.WithDefaultLanguage(c.DefaultLanguage),
		i18n.WithLogger(log),
	}
	if c.CatalogFile == "" {
		return i18n.Default(ctx, opts...)
	}
	return i18n.New(ctx, i18n.NewFileAdapter(c.CatalogFile), opts...)
}
