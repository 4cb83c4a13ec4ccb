package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/creditodds/creditodds-api/internal/domain"
)

type auditLog interface {
	List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error)
}

// AuditHandler serves the admin audit trail.
type AuditHandler struct {
	audit auditLog
	log   *slog.Logger
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(audit auditLog, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{audit: audit, log: logger.With("handler", "audit")}
}

// List handles GET /admin/audit-log?limit=&offset=, newest first.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pageParams(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	entries, err := h.audit.List(r.Context(), domain.AuditFilter{Limit: limit, Offset: offset})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]auditEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = toAuditEntryResponse(e)
	}
	writeJSON(w, http.StatusOK, out)
}
