package handler

import (
	"errors"
	"net/http"
	"sync"

	"github.com/jse-go/restkit/pkg/binder"
	"github.com/jse-go/restkit/pkg/validator"
)

// HandlerFunc provides type-safe HTTP request handling with custom context support.
// C must implement the Context interface, R can be any request type.
//
// Example with standard context:
//
//	handler := handler.HandlerFunc[handler.Context, CreateItemRequest](
//		func(ctx handler.Context, req CreateItemRequest) handler.Response {
//			item := createItem(req.Code)
//			return handler.JSON(item)
//		},
//	)
//
// Example with custom context:
//
//	handler := handler.HandlerFunc[AppContext, CreateItemRequest](
//		func(ctx AppContext, req CreateItemRequest) handler.Response {
//			tenant := ctx.Tenant() // Direct access to custom methods
//			return handler.JSON(item)
//		},
//	)
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself to an http.ResponseWriter.
// Implementations should set headers, status code, and write body.
// Errors are handled by the framework (returns 500).
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind parses HTTP requests into typed values.
type Bind func(r *http.Request, v any) error

// ErrorHandler handles errors from binding or rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc to add cross-cutting functionality.
// Decorators are applied in order, with the first decorator in the list
// being the outermost wrapper.
//
// Example logger decorator:
//
//	func Logger[C Context, R any]() Decorator[C, R] {
//		return func(next HandlerFunc[C, R]) HandlerFunc[C, R] {
//			return func(ctx C, req R) Response {
//				log.Printf("Request: %+v", req)
//				resp := next(ctx, req)
//				log.Printf("Response complete")
//				return resp
//			}
//		}
//	}
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption configures the Wrap function.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

// wrapConfig holds configuration for Wrap.
type wrapConfig[C Context, R any] struct {
	binders        []Bind
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
	decorators     []Decorator[C, R]
	validator      *validator.Validator
	groups         []string
}

// WithBinder sets a single request binder, replacing any set before.
func WithBinder[C Context, R any](b Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if b != nil {
			c.binders = []Bind{b}
		}
	}
}

// WithBinders sets multiple request binders that will be applied in order.
// Each binder should process only its specific struct tags.
//
// Example:
//
//	http.HandleFunc("/items", handler.Wrap(create,
//		handler.WithBinders[handler.Context, CreateItemRequest](
//			binder.JSON(),
//		),
//	))
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.binders = append(c.binders, binders...)
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory sets a custom context factory.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

// WithValidator checks the bound request with v before the handler runs.
// Failures go to the error handler as validator.ValidationErrors, broken
// declarations as *validator.ConfigError.
func WithValidator[C Context, R any](v *validator.Validator, groups ...string) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.validator = v
		c.groups = groups
	}
}

// WithDecorators adds decorators to wrap the handler.
// Decorators are applied in order, with the first decorator being the outermost.
//
// Example:
//
//	http.HandleFunc("/items", handler.Wrap(handler,
//		handler.WithDecorators(
//			Logger[handler.Context, CreateItemRequest](),
//			RequireAuth[handler.Context, CreateItemRequest](),
//		),
//	))
func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

var defaultMappers = sync.OnceValue(func() *Mappers {
	return DefaultMappers(NewErrorResponseBuilder(nil))
})

// defaultErrorHandler renders JSON error envelopes through DefaultMappers
// with slog.Default, errorcode.Default and the embedded catalog.
func defaultErrorHandler[C Context](ctx C, err error) {
	defaultMappers().ErrorHandler()(ctx, err)
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
//
// Usage with standard context:
//
//	handler := handler.HandlerFunc[handler.Context, CreateItemRequest](...)
//	http.HandleFunc("/items", handler.Wrap(handler))
//
// Usage with custom context:
//
//	handler := handler.HandlerFunc[AppContext, CreateItemRequest](...)
//	http.HandleFunc("/items", handler.Wrap(handler,
//		handler.WithContextFactory(NewAppContext),
//	))
//
// With options:
//
//	http.HandleFunc("/items", handler.Wrap(handler,
//		handler.WithBinder(customBinder),
//		handler.WithErrorHandler(customErrorHandler),
//		handler.WithContextFactory(customContextFactory),
//		handler.WithDecorators(Logger(), RequireAuth()),
//	))
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{
		errorHandler: defaultErrorHandler[C],
	}

	// Set default context factory if none provided and C can be created with NewContext
	if cfg.contextFactory == nil {
		cfg.contextFactory = func(w http.ResponseWriter, r *http.Request) C {
			ctx := NewContext(w, r)
			if c, ok := any(ctx).(C); ok {
				return c
			}
			// This will panic if C is not compatible with the default Context
			panic("cannot use default context factory with custom context type - provide WithContextFactory")
		}
	}

	for _, opt := range opts {
		opt(cfg)
	}

	// Apply decorators in reverse order so first decorator is outermost
	finalHandler := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		finalHandler = cfg.decorators[i](finalHandler)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		var req R

		// Apply binders in order - skip those that are not applicable
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				// Skip binders that are not applicable to this request
				if errors.Is(err, binder.ErrBinderNotApplicable) {
					continue
				}
				cfg.errorHandler(ctx, err)
				return
			}
		}

		if cfg.validator != nil {
			if err := cfg.validator.Struct(ctx, &req, cfg.groups...); err != nil {
				cfg.errorHandler(ctx, err)
				return
			}
		}

		response := finalHandler(ctx, req)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
