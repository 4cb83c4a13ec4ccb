package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/creditodds/creditodds-api/internal/domain"
)

type profileService interface {
	Get(ctx context.Context) (domain.Profile, error)
}

// ProfileHandler serves GET /profile.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type profileResponse struct {
	UserID    string             `json:"user_id"`
	Records   []recordResponse   `json:"records"`
	Referrals []referralResponse `json:"referrals"`
	Wallet    []walletResponse   `json:"wallet"`
}

// Get handles GET /profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := profileResponse{
		UserID:    p.UserID,
		Records:   toRecordResponses(p.Records, toRecordResponse),
		Referrals: make([]referralResponse, len(p.Referrals)),
		Wallet:    toWalletResponses(p.Wallet),
	}
	for i, ref := range p.Referrals {
		resp.Referrals[i] = toReferralWithStatsResponse(ref.Referral, ref.Stats)
	}
	writeJSON(w, http.StatusOK, resp)
}
