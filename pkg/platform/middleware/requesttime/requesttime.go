// Package requesttime pins a single "now" per HTTP request. Every timestamp
// taken during one evaluation (decision, audit event, log line) reads the
// same instant from the context.
package requesttime

import (
	"net/http"
	"time"

	"guardian/pkg/requestcontext"
)

// Middleware captures the arrival time and stores it in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
