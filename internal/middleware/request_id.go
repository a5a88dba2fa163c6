package middleware

import (
	"net/http"

	"github.com/fharvey/fileaccess-ms-go/internal/api_context"
	guuid "github.com/google/uuid"
)

// WithRequestID tags every request with an id, honouring one supplied by
// the caller. The id travels in the context so log lines can carry it, and
// is echoed back in the response headers.
func WithRequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-Id")
			if id == "" {
				id = guuid.NewString()
			}
			w.Header().Set("X-Request-Id", id)

			// stash it in context and call the real handler
			ctx := api_context.WithRequestID(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
