package i18n

import (
	"net/http"
	"slices"
	"strings"
)

// LangExtractor finds the preferred locale of a request, or "".
type LangExtractor func(r *http.Request) string

// Middleware stores the locale found by extr in the request context.
// Requests without a preference are left alone so that lookups fall through
// to the catalog's default language. A nil extractor uses
// DefaultLangExtractor with no supported-language list.
func Middleware(extr LangExtractor) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor(nil)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if lang := extr(r); lang != "" {
				r = r.WithContext(SetLocale(r.Context(), lang))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// DefaultLangExtractor checks, in order, the "lang" query parameter, the
// "lang" cookie and the Accept-Language header. When supported is non-empty
// explicit values must be in it (or have their base language in it) and the
// header is negotiated against it.
func DefaultLangExtractor(supported []string) LangExtractor {
	normalized := make([]string, 0, len(supported))
	for _, s := range supported {
		normalized = append(normalized, strings.ToLower(s))
	}

	accept := func(lang string) string {
		lang = Normalize(lang)
		if lang == "" || len(normalized) == 0 {
			return lang
		}
		if slices.Contains(normalized, lang) {
			return lang
		}
		if idx := strings.IndexByte(lang, '-'); idx > 0 && slices.Contains(normalized, lang[:idx]) {
			return lang[:idx]
		}
		return ""
	}

	return func(r *http.Request) string {
		if lang := accept(r.URL.Query().Get("lang")); lang != "" {
			return lang
		}
		if cookie, err := r.Cookie("lang"); err == nil {
			if lang := accept(cookie.Value); lang != "" {
				return lang
			}
		}
		header := r.Header.Get("Accept-Language")
		if header == "" {
			return ""
		}
		if len(normalized) > 0 {
			return Negotiate(header, normalized, "")
		}
		return Preferred(header)
	}
}
