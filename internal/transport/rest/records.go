package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/creditodds/creditodds-api/internal/domain"
	"github.com/creditodds/creditodds-api/internal/validation"
)

type recordService interface {
	Submit(ctx context.Context, sub domain.RecordSubmission) (domain.Record, error)
	ListMine(ctx context.Context) ([]domain.Record, error)
	Delete(ctx context.Context, id int64) error
	AdminList(ctx context.Context, f domain.RecordFilter) ([]domain.Record, error)
	Review(ctx context.Context, id int64, reviewed bool) error
	AdminDelete(ctx context.Context, id int64) error
}

// RecordHandler serves approval record endpoints, admin ones included.
type RecordHandler struct {
	svc recordService
	log *slog.Logger
}

// NewRecordHandler creates a RecordHandler.
func NewRecordHandler(svc recordService, logger *slog.Logger) *RecordHandler {
	return &RecordHandler{svc: svc, log: logger.With("handler", "record")}
}

// Submit handles POST /records.
func (h *RecordHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var sub domain.RecordSubmission
	if err := decodeJSON(r, &sub); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	rec, err := h.svc.Submit(r.Context(), sub)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRecordResponse(rec))
}

// ListMine handles GET /records.
func (h *RecordHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.ListMine(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordResponses(records, toRecordResponse))
}

// Delete handles DELETE /records?record_id=.
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "record_id")
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

// Rules handles GET /records/rules.
func (h *RecordHandler) Rules(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toRuleResponses(validation.RecordRules()))
}

// AdminList handles GET /admin/records?card_id=&reviewed=&limit=&offset=.
func (h *RecordHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	var (
		f   domain.RecordFilter
		err error
	)
	if f.CardID, err = optionalIDParam(r, "card_id"); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if f.Reviewed, err = optionalBoolParam(r, "reviewed"); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if f.Limit, f.Offset, err = pageParams(r); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	records, err := h.svc.AdminList(r.Context(), f)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordResponses(records, toAdminRecordResponse))
}

type reviewRequest struct {
	RecordID    int64 `json:"record_id"`
	AdminReview *bool `json:"admin_review"`
}

// Review handles POST /admin/records/review.
func (h *RecordHandler) Review(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if req.RecordID <= 0 {
		respondError(w, r, h.log, domain.NewValidationError("record_id", "must be greater than 0"))
		return
	}
	if req.AdminReview == nil {
		respondError(w, r, h.log, domain.NewValidationError("admin_review", "is required"))
		return
	}

	if err := h.svc.Review(r.Context(), req.RecordID, *req.AdminReview); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"record_id": req.RecordID, "admin_review": *req.AdminReview})
}

// AdminDelete handles DELETE /admin/records?record_id=.
func (h *RecordHandler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "record_id")
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
