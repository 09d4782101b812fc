package validator_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jse-go/restkit/pkg/validator"
)

var (
	okValids   = []string{"ok", "OK", ""}
	okInvalids = []string{"NG", " "}
)

type label string

type stringer struct{ s string }

func (s stringer) String() string { return s.s }

func TestRegex_Compile(t *testing.T) {
	t.Parallel()

	t.Run("invalid pattern is a configuration error", func(t *testing.T) {
		t.Parallel()
		_, err := validator.Regex{Pattern: "["}.Compile()
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrInvalidPattern)
		assert.True(t, validator.IsConfigError(err))
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("pattern cannot escape the anchor group", func(t *testing.T) {
		t.Parallel()
		_, err := validator.Regex{Pattern: "a)|(b"}.Compile()
		assert.ErrorIs(t, err, validator.ErrInvalidPattern)
	})

	t.Run("must compile panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { validator.Regex{Pattern: "("}.MustCompile() })
	})

	t.Run("default message", func(t *testing.T) {
		t.Parallel()
		v := validator.Regex{Pattern: "x"}.MustCompile()
		assert.Equal(t, validator.DefaultRegexMessage, v.Declaration().Message)
	})
}

func TestRegexValidator_IsValid(t *testing.T) {
	t.Parallel()

	v := validator.Regex{Pattern: "(ok|OK)"}.MustCompile()

	for _, s := range okValids {
		assert.True(t, v.IsValid(s), "%q should be valid", s)
	}
	for _, s := range okInvalids {
		assert.False(t, v.IsValid(s), "%q should be invalid", s)
	}
	for _, valid := range okValids {
		for _, invalid := range okInvalids {
			assert.False(t, v.IsValid(valid+invalid), "%q", valid+invalid)
			assert.False(t, v.IsValid(invalid+valid), "%q", invalid+valid)
		}
	}

	t.Run("matching is anchored", func(t *testing.T) {
		t.Parallel()
		v := validator.Regex{Pattern: "[0-9]+"}.MustCompile()
		assert.True(t, v.IsValid("123"))
		assert.False(t, v.IsValid("a123"))
		assert.False(t, v.IsValid("123a"))
		assert.False(t, v.IsValid("12\n3"))
	})

	t.Run("alternation is anchored as a whole", func(t *testing.T) {
		t.Parallel()
		v := validator.Regex{Pattern: "a|b"}.MustCompile()
		assert.True(t, v.IsValid("a"))
		assert.False(t, v.IsValid("ab"))
		assert.False(t, v.IsValid("xa"))
	})
}

func TestRegexValidator_Supports(t *testing.T) {
	t.Parallel()

	v := validator.Regex{Pattern: "x"}.MustCompile()

	supported := []any{"", label(""), new(string), []byte(nil), []rune(nil), stringer{}, &stringer{}, new(fmt.Stringer)}
	for _, s := range supported {
		assert.NoError(t, v.Supports(reflect.TypeOf(s)), "%T", s)
	}

	unsupported := []any{0, 1.5, struct{}{}, map[string]string{}, []int{}, new(any)}
	for _, u := range unsupported {
		err := v.Supports(reflect.TypeOf(u))
		require.Error(t, err, "%T", u)
		assert.ErrorIs(t, err, validator.ErrUnexpectedType)
		var typeErr *validator.UnexpectedTypeError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, reflect.TypeOf(u), typeErr.Type)
	}
}

func TestRegexValidator_Check(t *testing.T) {
	t.Parallel()

	v := validator.Regex{Pattern: "(ok|OK)"}.MustCompile()
	var nilPtr *string
	ok := "ok"

	valid := []any{nil, nilPtr, &ok, "OK", "", []byte("ok"), []rune("OK"), label("ok"), stringer{"OK"}}
	for _, value := range valid {
		rule, err := v.Check("code", value, "en")
		require.NoError(t, err, "%T", value)
		assert.NoError(t, validator.Apply(rule), "%#v", value)
	}

	ng := "NG"
	invalid := []any{"NG", " ", &ng, []byte("NG"), stringer{"NG"}}
	for _, value := range invalid {
		rule, err := v.Check("code", value, "en")
		require.NoError(t, err)
		errs := validator.ExtractValidationErrors(validator.Apply(rule))
		require.Len(t, errs, 1, "%#v", value)
		assert.Equal(t, "code", errs[0].Field)
		assert.Equal(t, validator.RegexMessageKey, errs[0].TranslationKey)
		assert.Equal(t, "(ok|OK)", errs[0].TranslationValues["value"])
	}

	t.Run("unsupported type", func(t *testing.T) {
		t.Parallel()
		_, err := v.Check("count", 42, "en")
		assert.ErrorIs(t, err, validator.ErrUnexpectedType)
		var cfgErr *validator.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "count", cfgErr.Field)
	})
}

func TestRegexValidator_Message(t *testing.T) {
	t.Parallel()

	for _, invalid := range okInvalids {
		t.Run("japanese default message/"+invalid, func(t *testing.T) {
			t.Parallel()
			v := validator.Regex{Pattern: "(ok|OK)"}.MustCompile()
			rule, err := v.Check("value", invalid, "ja")
			require.NoError(t, err)
			errs := validator.ExtractValidationErrors(validator.Apply(rule))
			require.Len(t, errs, 1)
			assert.Equal(t, "正規表現の形式((ok|OK))で入力してください。", errs[0].Message)
		})

		t.Run("override message/"+invalid, func(t *testing.T) {
			t.Parallel()
			v := validator.Regex{
				Pattern: "(ok|OK)",
				Message: "入力形式が不正です。({value})${validatedValue}",
			}.MustCompile()
			assert.Equal(t, "入力形式が不正です。((ok|OK))"+invalid, v.Message("ja", invalid))
		})
	}

	t.Run("regional locale falls back to base language", func(t *testing.T) {
		t.Parallel()
		v := validator.Regex{Pattern: "(ok|OK)"}.MustCompile()
		assert.Equal(t, "正規表現の形式((ok|OK))で入力してください。", v.Message("ja-JP", "NG"))
	})

	t.Run("unknown locale falls back to default language", func(t *testing.T) {
		t.Parallel()
		v := validator.Regex{Pattern: "(ok|OK)"}.MustCompile()
		assert.Equal(t, "Please enter a value matching the regular expression ((ok|OK)).", v.Message("fr", "NG"))
	})

	t.Run("catalog without the key uses the built-in message", func(t *testing.T) {
		t.Parallel()
		v := validator.Regex{Pattern: "(ok|OK)"}.MustCompile(validator.WithMessages(mapResolver{}))
		assert.Equal(t, `must match "(ok|OK)"`, v.Message("en", "NG"))
	})

	t.Run("custom catalog", func(t *testing.T) {
		t.Parallel()
		v := validator.Regex{Pattern: "x"}.MustCompile(validator.WithMessages(mapResolver{
			"en": {validator.RegexMessageKey: "want {value}, got ${validatedValue}"},
		}))
		assert.Equal(t, "want x, got y", v.Message("en", "y"))
	})
}

func TestMatches(t *testing.T) {
	t.Parallel()

	v := validator.Regex{Pattern: "(ok|OK)"}.MustCompile()

	err := validator.Apply(
		validator.Matches(v, "a", "ok", "en"),
		validator.Matches(v, "b", []byte("OK"), "en"),
		validator.Matches(v, "c", label(""), "en"),
		validator.Matches(v, "d", []rune("NG"), "en"),
	)
	errs := validator.ExtractValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "d", errs[0].Field)
	assert.Equal(t, "NG", errs[0].TranslationValues["validatedValue"])
}
