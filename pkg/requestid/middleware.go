package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/jse-go/restkit/pkg/validator"
)

// Header carries the request id in both directions.
const Header = "X-Request-ID"

// Client-supplied ids are reused only when they match in full.
var validID = validator.Regex{Pattern: `[a-zA-Z0-9_-]{1,128}`}.MustCompile()

// Middleware stores a request id in the request context and echoes it in
// the response header. A missing or malformed X-Request-ID is replaced by a
// fresh uuid v4.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if !isValidRequestID(id) {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
	})
}

func isValidRequestID(id string) bool {
	return id != "" && validID.IsValid(id)
}
