package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/creditodds/creditodds-api/internal/domain"
	"github.com/creditodds/creditodds-api/internal/service/referral"
	"github.com/creditodds/creditodds-api/internal/transport/dataloader"
)

type referralService interface {
	Submit(ctx context.Context, sub domain.ReferralSubmission) (domain.Referral, error)
	ListMine(ctx context.Context) (referral.Mine, error)
	Delete(ctx context.Context, id int64) error
	Random(ctx context.Context, cardID int64) (domain.Referral, error)
	AdminList(ctx context.Context, f domain.ReferralFilter) ([]domain.Referral, error)
	Approve(ctx context.Context, id int64, approved bool) error
	UpdateLink(ctx context.Context, id int64, link string) error
	AdminDelete(ctx context.Context, id int64) error
}

// ReferralHandler serves referral endpoints, admin ones included.
type ReferralHandler struct {
	svc referralService
	log *slog.Logger
}

// NewReferralHandler creates a ReferralHandler.
func NewReferralHandler(svc referralService, logger *slog.Logger) *ReferralHandler {
	return &ReferralHandler{svc: svc, log: logger.With("handler", "referral")}
}

type myReferralsResponse struct {
	Referrals     []referralResponse     `json:"referrals"`
	OpenReferrals []openReferralResponse `json:"open_referrals"`
}

// ListMine handles GET /referrals. Engagement counts come from the
// request's loader so the whole list costs one aggregate query.
func (h *ReferralHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	mine, err := h.svc.ListMine(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	ids := make([]int64, len(mine.Referrals))
	for i, ref := range mine.Referrals {
		ids[i] = ref.ID
	}
	stats, err := dataloader.FromContext(r.Context()).LoadReferralStats(r.Context(), ids)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := myReferralsResponse{
		Referrals:     make([]referralResponse, len(mine.Referrals)),
		OpenReferrals: make([]openReferralResponse, len(mine.Open)),
	}
	for i, ref := range mine.Referrals {
		resp.Referrals[i] = toReferralWithStatsResponse(ref, stats[i])
	}
	for i, o := range mine.Open {
		resp.OpenReferrals[i] = openReferralResponse{CardID: o.CardID, CardName: o.CardName}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Submit handles POST /referrals.
func (h *ReferralHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var sub domain.ReferralSubmission
	if err := decodeJSON(r, &sub); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	ref, err := h.svc.Submit(r.Context(), sub)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReferralResponse(ref))
}

// Delete handles DELETE /referrals?referral_id=.
func (h *ReferralHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "referral_id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Random handles GET /referrals/random?card_id=.
func (h *ReferralHandler) Random(w http.ResponseWriter, r *http.Request) {
	cardID, err := idParam(r, "card_id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	ref, err := h.svc.Random(r.Context(), cardID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, randomReferralResponse{
		ReferralID:   ref.ID,
		CardID:       ref.CardID,
		ReferralLink: ref.Link,
	})
}

// AdminList handles GET /admin/referrals?status=&limit=&offset=.
func (h *ReferralHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	var (
		f   domain.ReferralFilter
		err error
	)
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.ReferralStatus(raw)
		f.Status = &status
	}
	if f.Limit, f.Offset, err = pageParams(r); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	refs, err := h.svc.AdminList(r.Context(), f)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]referralResponse, len(refs))
	for i, ref := range refs {
		out[i] = toAdminReferralResponse(ref)
	}
	writeJSON(w, http.StatusOK, out)
}

type approveRequest struct {
	ReferralID int64 `json:"referral_id"`
	Approved   *bool `json:"approved"`
}

// Approve handles POST /admin/referrals/approve.
func (h *ReferralHandler) Approve(w http.ResponseWriter, r *http.Request) {
	var req approveRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if req.ReferralID <= 0 {
		respondError(w, r, h.log, domain.NewValidationError("referral_id", "must be greater than 0"))
		return
	}
	if req.Approved == nil {
		respondError(w, r, h.log, domain.NewValidationError("approved", "is required"))
		return
	}

	if err := h.svc.Approve(r.Context(), req.ReferralID, *req.Approved); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"referral_id": req.ReferralID, "approved": *req.Approved})
}

type updateLinkRequest struct {
	ReferralID   int64  `json:"referral_id"`
	ReferralLink string `json:"referral_link"`
}

// UpdateLink handles PATCH /admin/referrals.
func (h *ReferralHandler) UpdateLink(w http.ResponseWriter, r *http.Request) {
	var req updateLinkRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if req.ReferralID <= 0 {
		respondError(w, r, h.log, domain.NewValidationError("referral_id", "must be greater than 0"))
		return
	}

	if err := h.svc.UpdateLink(r.Context(), req.ReferralID, req.ReferralLink); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"referral_id":   req.ReferralID,
		"referral_link": strings.TrimSpace(req.ReferralLink),
	})
}

// AdminDelete handles DELETE /admin/referrals?referral_id=.
func (h *ReferralHandler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "referral_id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.AdminDelete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
