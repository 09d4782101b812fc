package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20

// JSONOption configures the JSON binder.
type JSONOption func(*jsonBinder)

// WithMaxSize overrides DefaultMaxJSONSize.
func WithMaxSize(n int64) JSONOption {
	return func(b *jsonBinder) {
		if n > 0 {
			b.maxSize = n
		}
	}
}

// WithUnknownFields lets the decoder accept fields the target does not declare.
func WithUnknownFields() JSONOption {
	return func(b *jsonBinder) {
		b.allowUnknown = true
	}
}

type jsonBinder struct {
	maxSize      int64
	allowUnknown bool
}

// JSON returns a binder that decodes an application/json body into v.
// Unknown fields and trailing data are rejected. Bodiless GET, HEAD and
// DELETE requests return ErrBinderNotApplicable.
//
//	http.HandleFunc("/items", handler.Wrap(createItem,
//		handler.WithBinders[handler.Context, CreateItem](binder.JSON()),
//	))
func JSON(opts ...JSONOption) func(r *http.Request, v any) error {
	b := &jsonBinder{maxSize: DefaultMaxJSONSize}
	for _, opt := range opts {
		opt(b)
	}
	return b.bind
}

func (b *jsonBinder) bind(r *http.Request, v any) error {
	if err := r.Context().Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
	}

	if r.ContentLength == 0 && isBodiless(r.Method) {
		return ErrBinderNotApplicable
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "application/json" {
		return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, contentType)
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, b.maxSize+1))
	if err != nil {
		return fmt.Errorf("%w: failed to read request body: %w", ErrFailedToParseJSON, err)
	}
	if int64(len(body)) > b.maxSize {
		return fmt.Errorf("%w: max %d bytes", ErrRequestTooLarge, b.maxSize)
	}
	if len(body) == 0 {
		return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	if !b.allowUnknown {
		decoder.DisallowUnknownFields()
	}
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
	}

	var extra json.RawMessage
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
	}
	return nil
}

func isBodiless(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodDelete:
		return true
	}
	return false
}
