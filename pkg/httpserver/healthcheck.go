package httpserver

import (
	"context"
	"net/http"

	"github.com/jse-go/restkit/handler"
)

// Check reports whether one dependency is ready to serve.
type Check func(context.Context) error

// HealthCheckHandler serves liveness and readiness checks. Without checks
// it always answers 200 "ALIVE". With checks it runs each in order and
// answers 200 "READY", or hands the first failure to b as a 503 so the
// caller gets the usual error envelope and the failure is logged once.
func HealthCheckHandler(b *handler.ErrorResponseBuilder, checks ...Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				resp := b.Build(r.Context(), http.StatusServiceUnavailable,
					handler.NewServerError(http.StatusServiceUnavailable, err))
				_ = resp.Render(w, r)
				return
			}
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if len(checks) == 0 {
			_, _ = w.Write([]byte("ALIVE"))
			return
		}
		_, _ = w.Write([]byte("READY"))
	}
}
