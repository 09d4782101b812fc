package validator

import (
	"context"
	"errors"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/jse-go/restkit/pkg/i18n"
)

// DefaultGroup is the group of constraints that declare none.
const DefaultGroup = "Default"

// Struct tags read by Validator.
const (
	TagRegex   = "regex"
	TagMessage = "message"
	TagGroups  = "groups"
)

// Option configures a Validator.
type Option func(*Validator)

// WithCatalog sets the resolver for catalog keys in messages.
func WithCatalog(r MessageResolver) Option {
	return func(v *Validator) {
		v.resolver = r
	}
}

// WithLocale sets the language used when the context carries none. Without
// it such requests get the catalog's default language.
func WithLocale(lang string) Option {
	return func(v *Validator) {
		if lang != "" {
			v.locale = lang
		}
	}
}

// Validator checks tagged struct fields:
//
//	type Signup struct {
//		Code string `json:"code" regex:"(ok|OK)" message:"{validation.regex}"`
//	}
//
// Constraints are compiled once per struct type. A broken declaration is
// reported as *ConfigError on every call for that type.
type Validator struct {
	resolver MessageResolver
	locale   string
	plans    sync.Map // reflect.Type -> planResult
}

// New returns a Validator backed by the embedded catalog unless WithCatalog
// says otherwise.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

type fieldConstraint struct {
	index     []int
	name      string
	groups    []string
	validator *RegexValidator
}

type planResult struct {
	constraints []fieldConstraint
	err         error
}

// Struct validates s, a struct or a pointer to one, against the constraints
// in groups (DefaultGroup when none are given). Failures are returned as
// ValidationErrors with messages in the context locale.
func (v *Validator) Struct(ctx context.Context, s any, groups ...string) error {
	rv := reflect.ValueOf(s)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ErrInvalidTarget
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return ErrInvalidTarget
	}

	plan := v.plan(rv.Type())
	if plan.err != nil {
		return plan.err
	}

	if len(groups) == 0 {
		groups = []string{DefaultGroup}
	}
	lang, ok := i18n.LocaleFromContext(ctx)
	if !ok {
		lang = v.locale
	}

	var errs ValidationErrors
	for _, c := range plan.constraints {
		if !inGroups(c.groups, groups) {
			continue
		}
		fv, err := rv.FieldByIndexErr(c.index)
		if err != nil {
			// nil embedded pointer: nothing to check
			continue
		}
		str, present := charSequence(fv)
		if !present || c.validator.IsValid(str) {
			continue
		}
		errs.Add(c.validator.validationError(c.name, str, lang))
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func (v *Validator) plan(t reflect.Type) planResult {
	if p, ok := v.plans.Load(t); ok {
		return p.(planResult)
	}
	p, _ := v.plans.LoadOrStore(t, v.buildPlan(t))
	return p.(planResult)
}

func (v *Validator) buildPlan(t reflect.Type) planResult {
	var opts []RegexOption
	if v.resolver != nil {
		opts = append(opts, WithMessages(v.resolver))
	}

	var constraints []fieldConstraint
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() {
			continue
		}
		pattern, ok := f.Tag.Lookup(TagRegex)
		if !ok {
			continue
		}

		decl := Regex{
			Pattern: pattern,
			Message: f.Tag.Get(TagMessage),
			Groups:  splitList(f.Tag.Get(TagGroups)),
		}
		rv, err := decl.Compile(opts...)
		if err == nil {
			err = rv.Supports(f.Type)
		}
		if err != nil {
			var cfgErr *ConfigError
			if errors.As(err, &cfgErr) {
				cfgErr.Type = t
				cfgErr.Field = f.Name
			}
			return planResult{err: err}
		}

		constraints = append(constraints, fieldConstraint{
			index:     f.Index,
			name:      fieldName(f),
			groups:    decl.Groups,
			validator: rv,
		})
	}
	return planResult{constraints: constraints}
}

func inGroups(declared, requested []string) bool {
	if len(declared) == 0 {
		return slices.Contains(requested, DefaultGroup)
	}
	for _, g := range declared {
		if slices.Contains(requested, g) {
			return true
		}
	}
	return false
}

// fieldName prefers the json name so errors line up with the request body.
func fieldName(f reflect.StructField) string {
	if tag := f.Tag.Get("json"); tag != "" {
		if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
