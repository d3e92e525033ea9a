// Package handler exposes the decision history for audit display and export.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"guardian/internal/decision"
	"guardian/internal/decisionlog"
	dErrors "guardian/pkg/domain-errors"
	"guardian/pkg/platform/httputil"
	"guardian/pkg/requestcontext"
)

// Handler serves read-only history endpoints.
type Handler struct {
	store  decisionlog.Store
	logger *slog.Logger
}

func New(store decisionlog.Store, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{store: store, logger: logger}
}

// Register mounts history endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/decisions", h.HandleHistory)
	r.Get("/decisions/export", h.HandleExport)
}

// HandleHistory handles GET /decisions, newest first.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	history, err := h.store.History(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read decision history",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read decision history"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, HistoryResponse{Decisions: history})
}

// HandleExport handles GET /decisions/export as a newline-delimited JSON
// download, newest first.
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	history, err := h.store.History(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to export decision history",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to export decision history"))
		return
	}

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("Content-Disposition", `attachment; filename="decisions.ndjson"`)
	enc := json.NewEncoder(w)
	for _, d := range history {
		if err := enc.Encode(d); err != nil {
			h.logger.WarnContext(ctx, "failed to encode decision during export",
				"decision_id", d.ID,
				"error", err,
			)
			return
		}
	}
}

// HistoryResponse is the JSON envelope for GET /decisions.
type HistoryResponse struct {
	Decisions []decision.Decision `json:"decisions"`
}
