package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/creditodds/creditodds-api/internal/domain"
)

type engagementService interface {
	Record(ctx context.Context, referralID int64, event domain.ReferralEvent) error
}

// EngagementHandler accepts referral impression and click events.
type EngagementHandler struct {
	svc engagementService
	log *slog.Logger
}

// NewEngagementHandler creates an EngagementHandler.
func NewEngagementHandler(svc engagementService, logger *slog.Logger) *EngagementHandler {
	return &EngagementHandler{svc: svc, log: logger.With("handler", "engagement")}
}

type engagementRequest struct {
	ReferralID int64  `json:"referral_id"`
	EventType  string `json:"event_type"`
}

// Record handles POST /referral-stats. Any valid event is answered with 202,
// whether or not the store kept it.
func (h *EngagementHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req engagementRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.svc.Record(r.Context(), req.ReferralID, domain.ReferralEvent(req.EventType)); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}
