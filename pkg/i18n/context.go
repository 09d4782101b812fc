package i18n

import (
	"context"
	"log/slog"

	"github.com/jse-go/restkit/pkg/logger"
)

type localeContextKey struct{}

// SetLocale stores the request locale in ctx.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the locale stored in ctx, or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	if ctx == nil {
		return DefaultLanguage
	}
	locale, _ := ctx.Value(localeContextKey{}).(string)
	if locale == "" {
		return DefaultLanguage
	}
	return locale
}

// LocaleFromContext returns the locale stored in ctx and whether one was set.
func LocaleFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	locale, _ := ctx.Value(localeContextKey{}).(string)
	return locale, locale != ""
}

// LoggerExtractor adds "locale" to records logged with a context that
// carries one.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if lang, ok := LocaleFromContext(ctx); ok {
			return logger.Locale(lang), true
		}
		return slog.Attr{}, false
	}
}
