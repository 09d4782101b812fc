package errorcode

import "errors"

var (
	// ErrMalformedCode is returned by Parse for strings that are not in the
	// <prefix>-<subsystem>#<number> format.
	ErrMalformedCode = errors.New("malformed error code")
)
