package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrMissingContentType   = errors.New("missing content type")
	ErrRequestTooLarge      = errors.New("request body too large")

	// ErrBinderNotApplicable tells the caller to skip this binder for the
	// request, e.g. a body binder on a bodiless GET.
	ErrBinderNotApplicable = errors.New("binder not applicable")
)
