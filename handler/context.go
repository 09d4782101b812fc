package handler

import (
	"context"
	"net/http"

	"github.com/jse-go/restkit/pkg/i18n"
	"github.com/jse-go/restkit/pkg/requestid"
)

// Context is what handlers and error mappers receive. It is the request's
// context.Context, so cancellation and request-scoped values work as usual,
// plus the pieces of the exchange an error path needs.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	// RequestID returns the id assigned by requestid.Middleware, or "".
	RequestID() string
	// Locale returns the negotiated locale, or "" when the client expressed
	// no usable preference and the catalog default applies.
	Locale() string
}

// NewContext binds w and r. Values and deadlines come from r.Context() as it
// is at the time of the call.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{Context: r.Context(), w: w, r: r}
}

type httpContext struct {
	context.Context
	w http.ResponseWriter
	r *http.Request
}

func (c *httpContext) Request() *http.Request { return c.r }
func (c *httpContext) ResponseWriter() http.ResponseWriter { return c.w }
func (c *httpContext) RequestID() string { return requestid.FromContext(c) }

func (c *httpContext) Locale() string {
	lang, _ := i18n.LocaleFromContext(c)
	return lang
}
