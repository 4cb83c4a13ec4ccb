package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/creditodds/creditodds-api/internal/domain"
)

type walletService interface {
	List(ctx context.Context) ([]domain.WalletCard, error)
	Add(ctx context.Context, sub domain.WalletSubmission) (domain.WalletCard, error)
	Delete(ctx context.Context, id int64) error
}

// WalletHandler serves the signed-in user's wallet.
type WalletHandler struct {
	svc walletService
	log *slog.Logger
}

// NewWalletHandler creates a WalletHandler.
func NewWalletHandler(svc walletService, logger *slog.Logger) *WalletHandler {
	return &WalletHandler{svc: svc, log: logger.With("handler", "wallet")}
}

// List handles GET /wallet.
func (h *WalletHandler) List(w http.ResponseWriter, r *http.Request) {
	cards, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toWalletResponses(cards))
}

// Add handles POST /wallet.
func (h *WalletHandler) Add(w http.ResponseWriter, r *http.Request) {
	var sub domain.WalletSubmission
	if err := decodeJSON(r, &sub); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	card, err := h.svc.Add(r.Context(), sub)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWalletResponse(card))
}

// Delete handles DELETE /wallet?wallet_id=.
func (h *WalletHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "wallet_id")
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
