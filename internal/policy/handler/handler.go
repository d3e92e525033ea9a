// Package handler exposes the spending policy for display.
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"guardian/internal/policy"
	"guardian/pkg/platform/httputil"
)

// Handler serves the read-only policy view.
type Handler struct {
	store *policy.Store
}

func New(store *policy.Store) *Handler {
	return &Handler{store: store}
}

// Register mounts the policy endpoint on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/policy", h.HandlePolicy)
}

// HandlePolicy handles GET /policy.
func (h *Handler) HandlePolicy(w http.ResponseWriter, r *http.Request) {
	p := h.store.Current()
	httputil.WriteJSON(w, http.StatusOK, PolicyResponse{
		MonthlyCap:               p.MonthlyCap.StringFixed(2),
		MaxPerSubscription:       p.MaxPerSubscription.StringFixed(2),
		TrustedMerchants:         p.TrustedMerchants,
		AutoBlockTrialConversion: p.AutoBlockTrialConversion,
		InactivityThresholdDays:  p.InactivityThresholdDays,
	})
}

// PolicyResponse is the JSON body for GET /policy.
type PolicyResponse struct {
	MonthlyCap               string   `json:"monthly_cap"`
	MaxPerSubscription       string   `json:"max_per_subscription"`
	TrustedMerchants         []string `json:"trusted_merchants"`
	AutoBlockTrialConversion bool     `json:"auto_block_trial_conversion"`
	InactivityThresholdDays  int      `json:"inactivity_threshold_days"`
}
