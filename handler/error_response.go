package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/jse-go/restkit/pkg/errmsg"
	"github.com/jse-go/restkit/pkg/errorcode"
	"github.com/jse-go/restkit/pkg/i18n"
	"github.com/jse-go/restkit/pkg/logger"
)

const builderComponent = "error_response"

// defaultCatalog is the embedded catalog, loaded on first use.
var defaultCatalog = sync.OnceValue(func() errmsg.Resolver {
	c, err := i18n.Default(context.Background())
	if err != nil {
		return nil
	}
	return c
})

// BuilderOption configures an ErrorResponseBuilder.
type BuilderOption func(*ErrorResponseBuilder)

// WithCodes sets the status to error code table.
func WithCodes(t *errorcode.Table) BuilderOption {
	return func(b *ErrorResponseBuilder) {
		if t != nil {
			b.codes = t
		}
	}
}

// WithMessages sets the message catalog.
func WithMessages(r errmsg.Resolver) BuilderOption {
	return func(b *ErrorResponseBuilder) {
		if r != nil {
			b.messages = r
		}
	}
}

// WithIDGenerator replaces the uuid v4 correlation id generator.
func WithIDGenerator(gen func() string) BuilderOption {
	return func(b *ErrorResponseBuilder) {
		if gen != nil {
			b.newID = gen
		}
	}
}

// ErrorResponseBuilder turns an error and its status into the JSON error
// envelope and writes one log record per error: error level for 5xx, warn
// for 4xx. It is the last line of defence and never panics. Request-scoped
// attributes such as the request id come from the logger's context
// extractors.
//
// It is immutable after construction and safe for concurrent use.
type ErrorResponseBuilder struct {
	logger   *slog.Logger
	codes    *errorcode.Table
	messages errmsg.Resolver
	newID    func() string
}

// NewErrorResponseBuilder uses errorcode.Default and the embedded catalog
// unless told otherwise. A nil logger means slog.Default.
func NewErrorResponseBuilder(log *slog.Logger, opts ...BuilderOption) *ErrorResponseBuilder {
	if log == nil {
		log = slog.Default()
	}
	b := &ErrorResponseBuilder{
		logger: log,
		codes:  errorcode.Default(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.messages == nil {
		b.messages = defaultCatalog()
	}
	return b
}

// Build returns the error response for err with status mirrored as given.
// Anything that is not an error status (below 400 or beyond three digits)
// is replaced by 500.
func (b *ErrorResponseBuilder) Build(ctx context.Context, status int, err error) ErrorResponse {
	return b.build(ctx, status, err, nil)
}

// BuildWithDetails is Build with per-field messages added to the body.
func (b *ErrorResponseBuilder) BuildWithDetails(ctx context.Context, status int, err error, details map[string][]string) ErrorResponse {
	return b.build(ctx, status, err, details)
}

// build resolves the message from keys first, then from the status.
func (b *ErrorResponseBuilder) build(ctx context.Context, status int, err error, details map[string][]string, keys ...string) ErrorResponse {
	if status < http.StatusBadRequest || status > 999 {
		status = http.StatusInternalServerError
	}
	b.logger.LogAttrs(ctx, slog.LevelDebug, "building error response",
		logger.Status(status),
		logger.Component(builderComponent),
	)

	msg := b.message(ctx, status, keys)

	level := slog.LevelError
	if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		level = slog.LevelWarn
	}
	b.logger.LogAttrs(ctx, level, msg.Log(),
		logger.Error(err),
		logger.Status(status),
		logger.ErrorID(msg.ID),
		logger.ErrorCode(msg.Code),
		logger.Component(builderComponent),
	)

	return ErrorResponse{Body: ErrorBody{ErrorMessage: msg, Details: details}}
}

// message resolves the text by the caller's keys, then the rendered code,
// then the table's stable keys, so catalogs survive a changed prefix or
// bucket. Requests without a negotiated locale get the catalog default.
func (b *ErrorResponseBuilder) message(ctx context.Context, status int, keys []string) (msg errmsg.ErrorMessage) {
	defer func() {
		if recover() != nil {
			msg = errmsg.ErrorMessage{
				ID:      uuid.NewString(),
				Status:  status,
				Code:    b.codes.Get(status).String(),
				Message: errmsg.DefaultMessage,
			}
		}
	}()

	code := b.codes.Get(status)
	lang, _ := i18n.LocaleFromContext(ctx)
	return errmsg.Create(status).
		WithIDGenerator(b.newID).
		WithFormatter(i18n.Format).
		ID().
		Code(code).
		Keys(keys...).
		Keys(code.String()).
		Keys(b.codes.MessageKeys(status)...).
		Args("status", strconv.Itoa(status)).
		Resolve(lang, b.messages).
		Get()
}
