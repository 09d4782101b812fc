package validator

import (
	"context"
	"errors"
	"reflect"
	"regexp"
	"sync"

	"github.com/jse-go/restkit/pkg/i18n"
)

const (
	// RegexMessageKey is the catalog key of the default regex message.
	RegexMessageKey = "validation.regex"

	// DefaultRegexMessage is the template used when a Regex declares none.
	DefaultRegexMessage = "{" + RegexMessageKey + "}"

	regexConstraint = "regex"
)

// builtinMessages back the catalog when it has no entry at all for a key.
var builtinMessages = map[string]string{
	RegexMessageKey: `must match "{value}"`,
}

// defaultResolver is the embedded catalog, loaded on first use.
var defaultResolver = sync.OnceValue(func() MessageResolver {
	c, err := i18n.Default(context.Background())
	if err != nil {
		return nil
	}
	return c
})

// Regex declares that a character sequence must match Pattern in full.
type Regex struct {
	Pattern string
	// Message is the failure template; see Interpolator. Empty means
	// DefaultRegexMessage.
	Message string
	Groups  []string
	Payload []any
}

// RegexOption configures a compiled RegexValidator.
type RegexOption func(*RegexValidator)

// WithMessages sets the resolver used for catalog keys in the message.
// The embedded catalog is used by default.
func WithMessages(r MessageResolver) RegexOption {
	return func(v *RegexValidator) {
		v.interp.Resolver = r
	}
}

// RegexValidator is a compiled Regex. It is immutable and safe for
// concurrent use.
type RegexValidator struct {
	decl   Regex
	re     *regexp.Regexp
	interp Interpolator
}

// Compile checks the pattern once and prepares the anchored matcher. A bad
// pattern is a configuration error wrapping ErrInvalidPattern.
func (d Regex) Compile(opts ...RegexOption) (*RegexValidator, error) {
	// The raw pattern is compiled on its own first so that something like
	// "a)|(b" cannot change meaning once wrapped in the anchor group.
	if _, err := regexp.Compile(d.Pattern); err != nil {
		return nil, &ConfigError{Constraint: regexConstraint, Err: errors.Join(ErrInvalidPattern, err)}
	}
	re, err := regexp.Compile(`^(?:` + d.Pattern + `)$`)
	if err != nil {
		return nil, &ConfigError{Constraint: regexConstraint, Err: errors.Join(ErrInvalidPattern, err)}
	}

	if d.Message == "" {
		d.Message = DefaultRegexMessage
	}
	v := &RegexValidator{
		decl: d,
		re:   re,
		interp: Interpolator{
			Resolver:  defaultResolver(),
			Fallbacks: builtinMessages,
		},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// MustCompile is like Compile but panics on a bad declaration.
func (d Regex) MustCompile(opts ...RegexOption) *RegexValidator {
	v, err := d.Compile(opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Declaration returns the declaration v was compiled from.
func (v *RegexValidator) Declaration() Regex { return v.decl }

// Supports is the capability guard: it fails for any type that cannot be
// read as a character sequence.
func (v *RegexValidator) Supports(t reflect.Type) error {
	if isCharSequence(t) {
		return nil
	}
	return &ConfigError{Constraint: regexConstraint, Err: &UnexpectedTypeError{Type: t}}
}

// IsValid reports whether s matches the whole pattern. The empty string is
// always valid; presence is a separate constraint.
func (v *RegexValidator) IsValid(s string) bool {
	return s == "" || v.re.MatchString(s)
}

// Message renders the failure message for the rejected value in lang.
func (v *RegexValidator) Message(lang, rejected string) string {
	return v.interp.Interpolate(v.decl.Message, lang, v.attributes(), rejected)
}

// Check builds a Rule for value, which may be any supported type including
// nil. An unsupported type is reported as a configuration error instead of
// a rule.
func (v *RegexValidator) Check(field string, value any, lang string) (Rule, error) {
	rv := reflect.ValueOf(value)
	if value != nil {
		if err := v.Supports(rv.Type()); err != nil {
			var cfgErr *ConfigError
			if errors.As(err, &cfgErr) {
				cfgErr.Field = field
			}
			return Rule{}, err
		}
	}

	s, present := charSequence(rv)
	valid := !present || v.IsValid(s)
	rule := Rule{Check: func() bool { return valid }}
	if !valid {
		rule.Error = v.validationError(field, s, lang)
	}
	return rule, nil
}

func (v *RegexValidator) validationError(field, rejected, lang string) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        v.Message(lang, rejected),
		TranslationKey: RegexMessageKey,
		TranslationValues: map[string]any{
			"field":          field,
			"value":          v.decl.Pattern,
			"validatedValue": rejected,
		},
	}
}

func (v *RegexValidator) attributes() map[string]string {
	return map[string]string{
		"value":   v.decl.Pattern,
		"pattern": v.decl.Pattern,
		"regexp":  v.decl.Pattern,
	}
}

// CharSequence is satisfied by the types Matches accepts without reflection.
type CharSequence interface {
	~string | ~[]byte | ~[]rune
}

// Matches builds a Rule for a statically typed value.
func Matches[S CharSequence](v *RegexValidator, field string, value S, lang string) Rule {
	s := string(value)
	valid := v.IsValid(s)
	rule := Rule{Check: func() bool { return valid }}
	if !valid {
		rule.Error = v.validationError(field, s, lang)
	}
	return rule
}
