// Package httpapi composes the HTTP surface: middleware, module handlers,
// health, and metrics. Transport concerns stay here so domain handlers
// remain thin.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	decisionhandler "guardian/internal/decision/handler"
	loghandler "guardian/internal/decisionlog/handler"
	ledgerhandler "guardian/internal/ledger/handler"
	policyhandler "guardian/internal/policy/handler"
	"guardian/pkg/platform/httputil"
	"guardian/pkg/platform/middleware/requesttime"
	"guardian/pkg/requestcontext"
)

// Handlers groups the module handlers mounted on the router.
type Handlers struct {
	Decision *decisionhandler.Handler
	History  *loghandler.Handler
	Wallet   *ledgerhandler.Handler
	Policy   *policyhandler.Handler
}

// NewRouter wires all public endpoints.
func NewRouter(h Handlers, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(requesttime.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/healthz", handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	h.Decision.Register(r)
	h.History.Register(r)
	h.Wallet.Register(r)
	h.Policy.Register(r)

	return r
}

// requestIDMiddleware propagates the caller's correlation ID or mints one.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
