package validator

import "strings"

const (
	// maxInterpolationDepth bounds catalog keys that resolve to other keys.
	maxInterpolationDepth = 5

	validatedValueExpr = "validatedValue"
)

// MessageResolver returns the message stored under key for lang, walking
// whatever fallback chain it implements. *i18n.Catalog satisfies it.
type MessageResolver interface {
	Lookup(lang, key string) (string, bool)
}

// Interpolator renders constraint message templates.
//
//	{name}              declaration attribute, else catalog key, else kept as is
//	${validatedValue}   the rejected value, inserted literally
//	\{ \} \$ \\         escapes
//
// Attribute values and the rejected value are never interpolated again, so a
// rejected value that looks like a template stays verbatim.
type Interpolator struct {
	Resolver MessageResolver
	// Fallbacks are consulted when Resolver has no message for a key.
	Fallbacks map[string]string
}

// Interpolate renders tmpl for lang.
func (in Interpolator) Interpolate(tmpl, lang string, attrs map[string]string, validated string) string {
	return in.render(tmpl, lang, attrs, validated, 0)
}

func (in Interpolator) render(tmpl, lang string, attrs map[string]string, validated string, depth int) string {
	if !strings.ContainsAny(tmpl, `{$\`) {
		return tmpl
	}

	var b strings.Builder
	b.Grow(len(tmpl))
	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		switch {
		case c == '\\' && i+1 < len(tmpl) && strings.IndexByte(`{}$\`, tmpl[i+1]) >= 0:
			b.WriteByte(tmpl[i+1])
			i++

		case c == '$' && i+1 < len(tmpl) && tmpl[i+1] == '{':
			end := closingBrace(tmpl, i+2)
			if end < 0 {
				b.WriteByte(c)
				continue
			}
			expr := strings.TrimSpace(tmpl[i+2 : end])
			if expr == validatedValueExpr {
				b.WriteString(validated)
			} else {
				b.WriteString(tmpl[i : end+1])
			}
			i = end

		case c == '{':
			end := closingBrace(tmpl, i+1)
			if end < 0 {
				b.WriteByte(c)
				continue
			}
			b.WriteString(in.param(tmpl[i+1:end], tmpl[i:end+1], lang, attrs, validated, depth))
			i = end

		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func (in Interpolator) param(name, raw, lang string, attrs map[string]string, validated string, depth int) string {
	if v, ok := attrs[name]; ok {
		return v
	}
	if depth >= maxInterpolationDepth {
		return raw
	}
	msg, ok := in.lookup(lang, name)
	if !ok {
		if msg, ok = in.Fallbacks[name]; !ok {
			return raw
		}
	}
	return in.render(msg, lang, attrs, validated, depth+1)
}

func (in Interpolator) lookup(lang, key string) (msg string, ok bool) {
	if in.Resolver == nil {
		return "", false
	}
	defer func() {
		if recover() != nil {
			msg, ok = "", false
		}
	}()
	return in.Resolver.Lookup(lang, key)
}

// closingBrace returns the index of the first unescaped '}' at or after from.
func closingBrace(s string, from int) int {
	for i := from; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '{':
			return -1
		case '}':
			return i
		}
	}
	return -1
}
