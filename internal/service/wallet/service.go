// Package wallet manages the cards a user holds.
package wallet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/creditodds/creditodds-api/internal/domain"
	"github.com/creditodds/creditodds-api/internal/validation"
	"github.com/creditodds/creditodds-api/pkg/ctxutil"
)

type walletRepo interface {
	List(ctx context.Context, userID string) ([]domain.WalletCard, error)
	Add(ctx context.Context, w domain.WalletCard) (domain.WalletCard, error)
	Delete(ctx context.Context, id int64, userID string) error
}

type cardRepo interface {
	GetByID(ctx context.Context, id int64) (domain.Card, error)
}

// Service provides wallet operations for the signed-in user.
type Service struct {
	wallet walletRepo
	cards  cardRepo
	log    *slog.Logger
}

// NewService creates a new wallet service.
func NewService(log *slog.Logger, wallet walletRepo, cards cardRepo) *Service {
	return &Service{
		wallet: wallet,
		cards:  cards,
		log:    log.With("service", "wallet"),
	}
}

// List returns the caller's wallet.
func (s *Service) List(ctx context.Context) ([]domain.WalletCard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.wallet.List(ctx, userID)
}

// Add puts a card in the caller's wallet. A card already there is ErrAlreadyExists.
func (s *Service) Add(ctx context.Context, sub domain.WalletSubmission) (domain.WalletCard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.WalletCard{}, domain.ErrUnauthorized
	}
	if err := validation.Struct(sub); err != nil {
		return domain.WalletCard{}, err
	}

	card, err := s.cards.GetByID(ctx, sub.CardID)
	if err != nil {
		return domain.WalletCard{}, fmt.Errorf("add wallet card: %w", err)
	}

	added, err := s.wallet.Add(ctx, domain.WalletCard{
		UserID:        userID,
		CardID:        card.ID,
		AcquiredMonth: sub.AcquiredMonth,
		AcquiredYear:  sub.AcquiredYear,
	})
	if err != nil {
		return domain.WalletCard{}, fmt.Errorf("add wallet card: %w", err)
	}
	added.CardName = card.Name

	s.log.InfoContext(ctx, "wallet card added", slog.String("user_id", userID), slog.Int64("card_id", card.ID))
	return added, nil
}

// Delete removes one of the caller's wallet entries.
func (s *Service) Delete(ctx context.Context, id int64) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := s.wallet.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("delete wallet card: %w", err)
	}
	return nil
}
