package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jse-go/restkit/pkg/binder"
	"github.com/jse-go/restkit/pkg/logger"
	"github.com/jse-go/restkit/pkg/validator"
)

// Mapper turns an error into a response.
type Mapper func(ctx Context, err error) Response

type mapperEntry func(ctx Context, err error) (Response, bool)

// Mappers dispatches errors to mappers registered per error type. The first
// registered mapper whose type matches (errors.As) wins, so registration
// order is priority order. Register everything before serving; a Mappers is
// read-only afterwards.
type Mappers struct {
	entries  []mapperEntry
	fallback Mapper
	logger   *slog.Logger
}

// NewMappers creates an empty registry. fallback handles errors no mapper
// matched and must not be nil.
func NewMappers(log *slog.Logger, fallback Mapper) *Mappers {
	if log == nil {
		log = slog.Default()
	}
	return &Mappers{fallback: fallback, logger: log}
}

// Register adds fn for errors of type E. E may be a concrete error type or
// an interface. fn receives both the matched E and the error as returned by
// the handler, which keeps any wrapping context for logging:
//
//	handler.Register(m, func(ctx handler.Context, nf *NotFoundError, err error) handler.Response {
//		return b.Build(ctx, http.StatusNotFound, err)
//	})
func Register[E error](m *Mappers, fn func(ctx Context, matched E, err error) Response) {
	m.entries = append(m.entries, func(ctx Context, err error) (Response, bool) {
		var target E
		if !errors.As(err, &target) {
			return nil, false
		}
		return fn(ctx, target, err), true
	})
}

// Map returns the response for err.
func (m *Mappers) Map(ctx Context, err error) Response {
	for _, entry := range m.entries {
		if resp, ok := entry(ctx, err); ok && resp != nil {
			return resp
		}
	}
	return m.fallback(ctx, err)
}

// ErrorHandler adapts m for use with WithErrorHandler.
func (m *Mappers) ErrorHandler() ErrorHandler[Context] {
	return func(ctx Context, err error) {
		resp := m.Map(ctx, err)
		if rerr := resp.Render(ctx.ResponseWriter(), ctx.Request()); rerr != nil {
			m.logger.LogAttrs(ctx, slog.LevelError, "failed to render error response",
				logger.Error(rerr),
				logger.Component("error_mappers"),
			)
		}
	}
}

// DefaultMappers registers, in order: ServerError, validator.ConfigError,
// validator.ValidationErrors, ValidationError, HTTPError and binder errors.
// Anything else is an unclassified 500.
func DefaultMappers(b *ErrorResponseBuilder) *Mappers {
	m := NewMappers(b.logger, b.MapUnknown)
	Register(m, b.MapServerError)
	Register(m, b.MapConfigError)
	Register(m, b.MapValidationErrors)
	Register(m, b.MapValidationError)
	Register(m, b.MapHTTPError)
	Register(m, b.MapBindError)
	return m
}

// MapServerError mirrors the classified status.
func (b *ErrorResponseBuilder) MapServerError(ctx Context, se *ServerError, err error) Response {
	return b.Build(ctx, se.Status, err)
}

// MapConfigError reports a broken constraint declaration as a 500. The
// client never sees the declaration details.
func (b *ErrorResponseBuilder) MapConfigError(ctx Context, _ *validator.ConfigError, err error) Response {
	return b.Build(ctx, http.StatusInternalServerError, err)
}

// MapValidationErrors responds 400 with the field messages as details.
func (b *ErrorResponseBuilder) MapValidationErrors(ctx Context, ve validator.ValidationErrors, err error) Response {
	return b.BuildWithDetails(ctx, http.StatusBadRequest, err, ve.Map())
}

// MapValidationError responds 400 with the field messages as details.
func (b *ErrorResponseBuilder) MapValidationError(ctx Context, ve ValidationError, err error) Response {
	var details map[string][]string
	if !ve.IsEmpty() {
		details = map[string][]string(ve)
	}
	return b.BuildWithDetails(ctx, http.StatusBadRequest, err, details)
}

// MapHTTPError responds with the error's own status. A non-empty Key is
// tried in the catalog before the status-derived keys.
func (b *ErrorResponseBuilder) MapHTTPError(ctx Context, he HTTPError, err error) Response {
	return b.build(ctx, he.Code, err, nil, he.Key)
}

// MapBindError classifies binder failures. Errors that are not from the
// binder package return nil so the next mapper gets a chance.
func (b *ErrorResponseBuilder) MapBindError(ctx Context, _ error, err error) Response {
	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return b.Build(ctx, http.StatusUnsupportedMediaType, err)
	case errors.Is(err, binder.ErrRequestTooLarge):
		return b.Build(ctx, http.StatusRequestEntityTooLarge, err)
	case errors.Is(err, binder.ErrFailedToParseJSON):
		return b.Build(ctx, http.StatusBadRequest, err)
	}
	return nil
}

// MapUnknown treats err as an unclassified server error.
func (b *ErrorResponseBuilder) MapUnknown(ctx Context, err error) Response {
	return b.Build(ctx, http.StatusInternalServerError, err)
}
