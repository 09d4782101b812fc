// Package binder decodes HTTP requests into typed request structs for
// handler.Wrap. A binder returns ErrBinderNotApplicable when the request
// carries nothing for it to bind, and handler.Wrap moves on to the next one.
// Other errors are classified by the handler package: ErrUnsupportedMediaType
// and ErrMissingContentType become 415, everything else 400.
package binder
