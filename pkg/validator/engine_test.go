package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jse-go/restkit/pkg/i18n"
	"github.com/jse-go/restkit/pkg/validator"
)

type regexTarget struct {
	Value *string `json:"value" regex:"(ok|OK)"`
}

type messageTarget struct {
	Value string `regex:"(ok|OK)" message:"入力形式が不正です。({value})${validatedValue}"`
}

type groupedTarget struct {
	Always  string `json:"always" regex:"[a-z]+"`
	Create  string `json:"create" regex:"[a-z]+" groups:"create"`
	Updates string `json:"updates" regex:"[a-z]+" groups:"create, update"`
	Skipped string `json:"-" regex:"[a-z]+"`
	ignored string `regex:"[a-z]+"`
}

type badPatternTarget struct {
	Value string `regex:"["`
}

type objectTarget struct {
	Value any `regex:"(ok|OK)"`
}

type Embedded struct {
	Code string `json:"code" regex:"(ok|OK)"`
}

type embeddingTarget struct {
	*Embedded
	Name string `json:"name"`
}

func ptr(s string) *string { return &s }

func TestValidator_Struct(t *testing.T) {
	t.Parallel()

	v := validator.New()

	t.Run("valid values", func(t *testing.T) {
		t.Parallel()
		for _, value := range []*string{ptr("ok"), ptr("OK"), ptr(""), nil} {
			assert.NoError(t, v.Struct(t.Context(), regexTarget{Value: value}))
			assert.NoError(t, v.Struct(t.Context(), &regexTarget{Value: value}))
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		t.Parallel()
		for _, value := range okInvalids {
			err := v.Struct(t.Context(), regexTarget{Value: ptr(value)})
			errs := validator.ExtractValidationErrors(err)
			require.Len(t, errs, 1, "%q", value)
			assert.Equal(t, "value", errs[0].Field)
		}
	})

	t.Run("concatenations are invalid", func(t *testing.T) {
		t.Parallel()
		for _, valid := range okValids {
			for _, invalid := range okInvalids {
				assert.Error(t, v.Struct(t.Context(), regexTarget{Value: ptr(valid + invalid)}))
				assert.Error(t, v.Struct(t.Context(), regexTarget{Value: ptr(invalid + valid)}))
			}
		}
	})

	t.Run("message in context locale", func(t *testing.T) {
		t.Parallel()
		ctx := i18n.SetLocale(t.Context(), "ja")
		errs := validator.ExtractValidationErrors(v.Struct(ctx, regexTarget{Value: ptr("NG")}))
		require.Len(t, errs, 1)
		assert.Equal(t, "正規表現の形式((ok|OK))で入力してください。", errs[0].Message)
	})

	t.Run("message override", func(t *testing.T) {
		t.Parallel()
		for _, invalid := range okInvalids {
			errs := validator.ExtractValidationErrors(v.Struct(t.Context(), messageTarget{Value: invalid}))
			require.Len(t, errs, 1)
			assert.Equal(t, "入力形式が不正です。((ok|OK))"+invalid, errs[0].Message)
			assert.Equal(t, "Value", errs[0].Field)
		}
	})

	t.Run("fixed locale without context locale", func(t *testing.T) {
		t.Parallel()
		jv := validator.New(validator.WithLocale("ja"))
		errs := validator.ExtractValidationErrors(jv.Struct(t.Context(), regexTarget{Value: ptr("NG")}))
		require.Len(t, errs, 1)
		assert.Equal(t, "正規表現の形式((ok|OK))で入力してください。", errs[0].Message)
	})

	t.Run("custom catalog", func(t *testing.T) {
		t.Parallel()
		cv := validator.New(validator.WithCatalog(mapResolver{"en": {validator.RegexMessageKey: "nope"}}))
		errs := validator.ExtractValidationErrors(cv.Struct(t.Context(), regexTarget{Value: ptr("NG")}))
		require.Len(t, errs, 1)
		assert.Equal(t, "nope", errs[0].Message)
	})

	t.Run("invalid pattern is a configuration error", func(t *testing.T) {
		t.Parallel()
		for range 2 {
			err := v.Struct(t.Context(), badPatternTarget{Value: "anything"})
			require.Error(t, err)
			assert.ErrorIs(t, err, validator.ErrInvalidPattern)
			assert.False(t, validator.IsValidationError(err))

			var cfgErr *validator.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, "Value", cfgErr.Field)
		}
	})

	t.Run("unsupported field type is a configuration error", func(t *testing.T) {
		t.Parallel()
		err := v.Struct(t.Context(), objectTarget{Value: "ok"})
		assert.ErrorIs(t, err, validator.ErrUnexpectedType)
		assert.True(t, validator.IsConfigError(err))

		err = v.Struct(t.Context(), objectTarget{})
		assert.ErrorIs(t, err, validator.ErrUnexpectedType, "checked regardless of the value")
	})

	t.Run("groups", func(t *testing.T) {
		t.Parallel()
		target := groupedTarget{Always: "1", Create: "2", Updates: "3", Skipped: "4", ignored: "5"}

		errs := validator.ExtractValidationErrors(v.Struct(t.Context(), target))
		assert.Equal(t, []string{"always", "Skipped"}, errs.Fields())

		errs = validator.ExtractValidationErrors(v.Struct(t.Context(), target, "create"))
		assert.Equal(t, []string{"create", "updates"}, errs.Fields())

		errs = validator.ExtractValidationErrors(v.Struct(t.Context(), target, "update", validator.DefaultGroup))
		assert.Equal(t, []string{"always", "updates", "Skipped"}, errs.Fields())

		assert.NoError(t, v.Struct(t.Context(), target, "unknown"))
	})

	t.Run("embedded struct", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, v.Struct(t.Context(), embeddingTarget{Name: "x"}))

		errs := validator.ExtractValidationErrors(v.Struct(t.Context(), embeddingTarget{Embedded: &Embedded{Code: "NG"}}))
		assert.Equal(t, []string{"code"}, errs.Fields())
	})

	t.Run("invalid targets", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, v.Struct(t.Context(), nil), validator.ErrInvalidTarget)
		assert.ErrorIs(t, v.Struct(t.Context(), "string"), validator.ErrInvalidTarget)
		assert.ErrorIs(t, v.Struct(t.Context(), (*regexTarget)(nil)), validator.ErrInvalidTarget)
	})
}
