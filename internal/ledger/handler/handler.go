// Package handler exposes the subscription roster and wallet statistics for
// dashboards. Read-only: all mutation flows through decisions.
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"guardian/internal/ledger"
	"guardian/pkg/platform/httputil"
)

// Handler serves roster and statistics endpoints.
type Handler struct {
	ledger *ledger.Ledger
}

func New(l *ledger.Ledger) *Handler {
	return &Handler{ledger: l}
}

// Register mounts wallet endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/subscriptions", h.HandleSubscriptions)
	r.Get("/wallet/stats", h.HandleStats)
}

// HandleSubscriptions handles GET /subscriptions.
func (h *Handler) HandleSubscriptions(w http.ResponseWriter, r *http.Request) {
	subs := h.ledger.Subscriptions()
	out := make([]SubscriptionResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, FromSubscription(s))
	}
	httputil.WriteJSON(w, http.StatusOK, SubscriptionsResponse{Subscriptions: out})
}

// HandleStats handles GET /wallet/stats.
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, FromStatistics(h.ledger.Stats()))
}
