package httpserver

import "errors"

// Run and Shutdown wrap their failures with one of these; match with
// errors.Is.
var (
	ErrInvalidOption  = errors.New("httpserver: invalid option")
	ErrAlreadyRunning = errors.New("httpserver: already running")
	ErrStart          = errors.New("httpserver: listen and serve")
	ErrShutdown       = errors.New("httpserver: graceful shutdown")
)
