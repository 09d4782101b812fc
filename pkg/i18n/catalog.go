package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"sort"
	"strings"
)

// Catalog resolves message templates by locale and key.
//
// A Catalog is loaded once and never mutated afterwards, so lookups take no
// locks and are safe from any number of goroutines.
type Catalog struct {
	messages       map[string]map[string]any
	defaultLang    string
	missingLogMode bool
	logger         *slog.Logger
}

// New loads messages from adapter and builds a Catalog.
func New(ctx context.Context, adapter Adapter, options ...Option) (*Catalog, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	c := &Catalog{
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(c)
	}

	messages, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateMessages(messages); err != nil {
		return nil, err
	}

	// Locales are matched case-insensitively.
	c.messages = make(map[string]map[string]any, len(messages))
	for lang, m := range messages {
		c.messages[strings.ToLower(lang)] = m
	}

	c.logger.InfoContext(ctx, "message catalog loaded",
		slog.Any("languages", c.Languages()),
		slog.String("default_language", c.defaultLang),
	)
	return c, nil
}

func validateMessages(messages map[string]map[string]any) error {
	for lang, m := range messages {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if m == nil {
			return fmt.Errorf("%w: %s", ErrNilMessages, lang)
		}
	}
	return nil
}

// DefaultLanguage returns the last locale of every fallback chain.
func (c *Catalog) DefaultLanguage() string {
	return c.defaultLang
}

// Languages returns the loaded locales, sorted.
func (c *Catalog) Languages() []string {
	langs := make([]string, 0, len(c.messages))
	for lang := range c.messages {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Chain returns the locales consulted for lang, in order: the locale itself,
// its base language ("ja-jp" -> "ja") and the default locale.
func (c *Catalog) Chain(lang string) []string {
	lang = strings.ToLower(strings.ReplaceAll(lang, "_", "-"))
	chain := make([]string, 0, 3)
	if lang != "" {
		chain = append(chain, lang)
		if idx := strings.IndexByte(lang, '-'); idx > 0 {
			chain = append(chain, lang[:idx])
		}
	}
	if !slices.Contains(chain, c.defaultLang) {
		chain = append(chain, c.defaultLang)
	}
	return chain
}

// Has reports whether key exists for exactly lang, without fallback.
func (c *Catalog) Has(lang, key string) bool {
	m, ok := c.messages[strings.ToLower(lang)]
	if !ok {
		return false
	}
	_, ok = lookupString(m, key)
	return ok
}

// Lookup returns the raw template for key, walking the fallback chain of lang.
// No placeholder substitution is performed.
func (c *Catalog) Lookup(lang, key string) (string, bool) {
	for _, l := range c.Chain(lang) {
		m, ok := c.messages[l]
		if !ok {
			continue
		}
		if tmpl, ok := lookupString(m, key); ok {
			return tmpl, true
		}
	}
	if c.missingLogMode {
		c.logger.Warn("message not found", slog.String("lang", lang), slog.String("key", key))
	}
	return "", false
}

// T resolves key for lang and substitutes {name} placeholders from args,
// given as key, value, key, value, ... If nothing in the chain has the key,
// the key itself is used as the template.
//
//	// "greeting": "Hello, {name}!"
//	c.T("en", "greeting", "name", "Aiko") // "Hello, Aiko!"
func (c *Catalog) T(lang, key string, args ...string) string {
	tmpl, ok := c.Lookup(lang, key)
	if !ok {
		tmpl = key
	}
	return Format(tmpl, args...)
}

// Td is like T but falls back to defaultValue instead of the key.
func (c *Catalog) Td(lang, key, defaultValue string, args ...string) string {
	tmpl, ok := c.Lookup(lang, key)
	if !ok {
		tmpl = defaultValue
	}
	return Format(tmpl, args...)
}

// Tc resolves key using the locale stored in ctx, or the catalog default
// language when there is none.
func (c *Catalog) Tc(ctx context.Context, key string, args ...string) string {
	lang, _ := LocaleFromContext(ctx)
	return c.T(lang, key, args...)
}

// lookupString finds key in m. A flat key wins over dot traversal so that
// keys such as "E-REST-SERVER#599" or "a.b" stored verbatim are found first.
func lookupString(m map[string]any, key string) (string, bool) {
	if v, ok := m[key]; ok {
		return asString(v)
	}

	parts := strings.Split(key, ".")
	if len(parts) == 1 {
		return "", false
	}

	current := m
	for i, part := range parts {
		v, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			return asString(v)
		}
		next, ok := asMap(v)
		if !ok {
			return "", false
		}
		current = next
	}
	return "", false
}

func asString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case fmt.Stringer:
		return s.String(), true
	default:
		return "", false
	}
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out, true
	default:
		return nil, false
	}
}

var placeholderRegex = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Format substitutes {name} placeholders from key/value pairs. Unknown
// placeholders are left as they are; an odd trailing argument is ignored.
func Format(tmpl string, args ...string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := params[match[1:len(match)-1]]; ok {
			return v
		}
		return match
	})
}
