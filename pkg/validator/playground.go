package validator

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	playground "github.com/go-playground/validator/v10"
)

// PlaygroundTag is the go-playground/validator tag backed by Regex. Patterns
// containing '|' or ',' must spell them 0x7C and 0x2C inside the tag:
//
//	Code string `validate:"regexp=(ok0x7COK)"`
const PlaygroundTag = "regexp"

// regexCache shares compiled patterns between playground validations.
type regexCache struct {
	opts []RegexOption
	m    sync.Map // pattern -> *RegexValidator
}

func (c *regexCache) get(pattern string) *RegexValidator {
	if v, ok := c.m.Load(pattern); ok {
		return v.(*RegexValidator)
	}
	// Bad tags panic, as they do for the library's own validators.
	v := Regex{Pattern: pattern}.MustCompile(c.opts...)
	actual, _ := c.m.LoadOrStore(pattern, v)
	return actual.(*RegexValidator)
}

// RegisterPlayground registers PlaygroundTag on v with full-string matching.
// nil and empty values pass, as with Regex.
func RegisterPlayground(v *playground.Validate, opts ...RegexOption) error {
	cache := &regexCache{opts: opts}
	return v.RegisterValidation(PlaygroundTag, func(fl playground.FieldLevel) bool {
		rv := cache.get(fl.Param())
		field := fl.Field()
		if field.IsValid() {
			if err := rv.Supports(field.Type()); err != nil {
				panic(err)
			}
		}
		s, present := charSequence(field)
		return !present || rv.IsValid(s)
	}, true)
}

// NewPlayground returns a go-playground validator that names fields by
// their json tag and understands PlaygroundTag.
func NewPlayground(opts ...RegexOption) (*playground.Validate, error) {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fieldName(fld)
	})
	if err := RegisterPlayground(v, opts...); err != nil {
		return nil, err
	}
	return v, nil
}

// FromPlayground converts go-playground validation errors into
// ValidationErrors. Regex failures get localized messages; other tags keep
// a generic message keyed "validation.<tag>". Errors of any other kind are
// returned unchanged.
func FromPlayground(err error, lang string, opts ...RegexOption) error {
	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var errs ValidationErrors
	for _, fe := range fieldErrs {
		if fe.Tag() != PlaygroundTag {
			errs.Add(ValidationError{
				Field:          fe.Field(),
				Message:        "failed on " + fe.Tag(),
				TranslationKey: "validation." + strings.ToLower(fe.Tag()),
				TranslationValues: map[string]any{
					"field": fe.Field(),
					"param": fe.Param(),
				},
			})
			continue
		}
		rv, cerr := Regex{Pattern: fe.Param()}.Compile(opts...)
		if cerr != nil {
			return cerr
		}
		s, _ := charSequence(reflect.ValueOf(fe.Value()))
		errs.Add(rv.validationError(fe.Field(), s, lang))
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}
