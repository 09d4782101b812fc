// Package validator checks input against declared constraints and reports
// failures as ValidationErrors with localized messages.
//
// The central constraint is Regex: a character sequence must match a
// regular expression in full. nil and empty values always pass; presence is
// a separate concern. A declaration is compiled once:
//
//	code := validator.Regex{Pattern: "(ok|OK)"}.MustCompile()
//	err := validator.Apply(validator.Matches(code, "code", input, "ja"))
//
// Structs can declare constraints in tags and be checked with a Validator,
// which caches one plan per struct type:
//
//	type Request struct {
//		Code string `json:"code" regex:"(ok|OK)" message:"bad: ({value})${validatedValue}"`
//	}
//
//	err := validator.New().Struct(ctx, req)
//
// Broken declarations, a pattern that does not compile or a constraint on a
// type that is not text, are reported as *ConfigError, never as
// ValidationErrors.
//
// # Messages
//
// Message templates are rendered by Interpolator. {value} is the pattern,
// ${validatedValue} the rejected input and any other {key} is looked up in
// the message catalog for the request locale, falling back to the base
// language, the catalog default language and finally a built-in English
// message.
//
// # go-playground/validator
//
// RegisterPlayground adds the same constraint to a *validator.Validate under
// the "regexp" tag, and FromPlayground converts its errors.
package validator
