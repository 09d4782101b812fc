package i18n_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jse-go/restkit/pkg/i18n"
)

func TestNegotiate(t *testing.T) {
	t.Parallel()

	supported := []string{"en", "ja"}
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", "en"},
		{"exact match", "ja", "ja"},
		{"regional variant", "ja-JP", "ja"},
		{"quality ordering", "en;q=0.5,ja;q=0.9", "ja"},
		{"no match", "fr-FR", "en"},
		{"malformed", ";;;q=abc", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, i18n.Negotiate(tt.header, supported, "en"))
		})
	}

	t.Run("no supported languages", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "xx", i18n.Negotiate("ja", nil, "xx"))
	})
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ja-jp", i18n.Normalize("ja_JP"))
	assert.Equal(t, "en", i18n.Normalize(" en "))
	assert.Equal(t, "", i18n.Normalize(""))
	assert.Equal(t, "", i18n.Normalize("not a locale!"))
}

func TestPreferred(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ja-jp", i18n.Preferred("ja-JP, en;q=0.5"))
	assert.Equal(t, "en", i18n.Preferred("ja;q=0.1, en"))
	assert.Equal(t, "", i18n.Preferred(""))
}

func TestGetLocale(t *testing.T) {
	t.Parallel()

	assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(t.Context()))
	assert.Equal(t, "ja", i18n.GetLocale(i18n.SetLocale(t.Context(), "ja")))
	assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(i18n.SetLocale(t.Context(), "")))

	_, ok := i18n.LocaleFromContext(t.Context())
	assert.False(t, ok)
	lang, ok := i18n.LocaleFromContext(i18n.SetLocale(t.Context(), "ja"))
	assert.True(t, ok)
	assert.Equal(t, "ja", lang)
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := i18n.LoggerExtractor()
	_, ok := extract(t.Context())
	assert.False(t, ok)

	attr, ok := extract(i18n.SetLocale(t.Context(), "ja"))
	assert.True(t, ok)
	assert.Equal(t, "locale", attr.Key)
	assert.Equal(t, "ja", attr.Value.String())
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	run := func(extr i18n.LangExtractor, req *http.Request) string {
		var got string
		h := i18n.Middleware(extr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, _ = i18n.LocaleFromContext(r.Context())
		}))
		h.ServeHTTP(httptest.NewRecorder(), req)
		return got
	}

	t.Run("no preference stores nothing", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Empty(t, run(nil, req))
	})

	t.Run("no preference resolves in the catalog default", func(t *testing.T) {
		t.Parallel()
		catalog, err := i18n.New(t.Context(), &i18n.MapAdapter{Data: map[string]map[string]any{
			"en": {"hello": "Hello"},
			"ja": {"hello": "こんにちは"},
		}}, i18n.WithDefaultLanguage("ja"))
		require.NoError(t, err)

		var got string
		h := i18n.Middleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = catalog.Tc(r.Context(), "hello")
		}))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "こんにちは", got)
	})

	t.Run("query parameter wins", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/?lang=ja", nil)
		req.Header.Set("Accept-Language", "en")
		assert.Equal(t, "ja", run(i18n.DefaultLangExtractor([]string{"en", "ja"}), req))
	})

	t.Run("cookie", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "lang", Value: "ja-JP"})
		assert.Equal(t, "ja", run(i18n.DefaultLangExtractor([]string{"en", "ja"}), req))
	})

	t.Run("unsupported explicit value falls through to header", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/?lang=fr", nil)
		req.Header.Set("Accept-Language", "ja-JP,en;q=0.5")
		assert.Equal(t, "ja", run(i18n.DefaultLangExtractor([]string{"en", "ja"}), req))
	})

	t.Run("header without supported list", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "ja-JP;q=0.9, en")
		assert.Equal(t, "en", run(nil, req), "highest quality first")
	})

	t.Run("unmatched header stores nothing", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "fr")
		assert.Empty(t, run(i18n.DefaultLangExtractor([]string{"en", "ja"}), req))
	})
}
