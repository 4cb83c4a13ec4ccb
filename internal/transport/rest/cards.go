package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/creditodds/creditodds-api/internal/domain"
)

type cardService interface {
	ListCards(ctx context.Context) ([]domain.MergedCard, error)
	GetCard(ctx context.Context, name string) (domain.MergedCard, error)
	Graphs(ctx context.Context, name string) (domain.CardGraphs, error)
}

// CardHandler serves the public card endpoints.
type CardHandler struct {
	svc cardService
	log *slog.Logger
}

// NewCardHandler creates a CardHandler.
func NewCardHandler(svc cardService, logger *slog.Logger) *CardHandler {
	return &CardHandler{svc: svc, log: logger.With("handler", "card")}
}

// List handles GET /cards.
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	cards, err := h.svc.ListCards(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]cardResponse, len(cards))
	for i, c := range cards {
		out[i] = toCardResponse(c)
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /card?card_name=.
func (h *CardHandler) Get(w http.ResponseWriter, r *http.Request) {
	card, err := h.svc.GetCard(r.Context(), strings.TrimSpace(r.URL.Query().Get("card_name")))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCardResponse(card))
}

// Graphs handles GET /graphs?card_name=.
func (h *CardHandler) Graphs(w http.ResponseWriter, r *http.Request) {
	graphs, err := h.svc.Graphs(r.Context(), strings.TrimSpace(r.URL.Query().Get("card_name")))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toGraphsResponse(graphs))
}
