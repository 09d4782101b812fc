package handler

import (
	"encoding/json"
	"net/http"

	"github.com/jse-go/restkit/pkg/errmsg"
)

const contentTypeJSON = "application/json; charset=utf-8"

// JSONResponse is the envelope for successful JSON responses.
type JSONResponse struct {
	Data any            `json:"data,omitempty"`
	Meta map[string]any `json:"meta,omitempty"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithJSONStatus sets the HTTP status code.
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta adds metadata to the envelope.
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		if body, ok := r.body.(JSONResponse); ok {
			body.Meta = meta
			r.body = body
		}
	}
}

// JSON renders v as {"data": v} with status 200 unless overridden.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK}
	if body, ok := v.(JSONResponse); ok {
		r.body = body
	} else {
		r.body = JSONResponse{Data: v}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type emptyResponse struct {
	status int
}

func (e emptyResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

// Empty responds 204 No Content.
func Empty() Response {
	return emptyResponse{status: http.StatusNoContent}
}

// EmptyWithStatus responds with status and no body.
func EmptyWithStatus(status int) Response {
	return emptyResponse{status: status}
}

// ErrorBody is the error envelope on the wire. Details is only present for
// validation failures.
type ErrorBody struct {
	errmsg.ErrorMessage
	Details map[string][]string `json:"details,omitempty"`
}

// ErrorResponse renders an ErrorBody with the status it carries.
type ErrorResponse struct {
	Body ErrorBody
}

func (e ErrorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(e.Body.Status)
	return json.NewEncoder(w).Encode(e.Body)
}

type errorResult struct {
	err error
}

func (e errorResult) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error returns a Response that writes nothing and hands err to the
// error handler configured for the route, so handlers can fail with
// typed errors and still get the standard envelope.
//
//	if !found {
//		return handler.Error(handler.ErrNotFound)
//	}
func Error(err error) Response {
	if err == nil {
		err = ErrNilResponse
	}
	return errorResult{err: err}
}
