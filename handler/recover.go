package handler

import (
	"errors"
	"fmt"
	"net/http"
)

// Recover turns panics in next into 500 ServerErrors rendered by m.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func Recover(m *Mappers) func(http.Handler) http.Handler {
	errorHandler := m.ErrorHandler()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				var cause error
				if err, ok := rec.(error); ok {
					cause = fmt.Errorf("%w: %w", ErrPanic, err)
				} else {
					cause = fmt.Errorf("%w: %v", ErrPanic, rec)
				}
				errorHandler(NewContext(w, r), NewServerError(http.StatusInternalServerError, cause))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
