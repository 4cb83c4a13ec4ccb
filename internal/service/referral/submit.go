package referral

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/creditodds/creditodds-api/internal/domain"
	"github.com/creditodds/creditodds-api/internal/validation"
	"github.com/creditodds/creditodds-api/pkg/ctxutil"
)

// Submit stores a referral for the caller. The caller must hold the card.
// A referral of theirs on the card, or the same link used on the card by
// someone else, is ErrConflict and nothing is written.
func (s *Service) Submit(ctx context.Context, sub domain.ReferralSubmission) (domain.Referral, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Referral{}, domain.ErrUnauthorized
	}

	sub.ReferralLink = strings.TrimSpace(sub.ReferralLink)
	if err := validation.Struct(sub); err != nil {
		return domain.Referral{}, err
	}

	ok, err := s.eligible(ctx, userID, sub.CardID)
	if err != nil {
		return domain.Referral{}, fmt.Errorf("submit referral: %w", err)
	}
	if !ok {
		return domain.Referral{}, fmt.Errorf("card %d not held by user: %w", sub.CardID, domain.ErrForbidden)
	}

	var created domain.Referral
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.referrals.CreateGuarded(txCtx, domain.Referral{
			CardID:      sub.CardID,
			SubmitterID: userID,
			Link:        sub.ReferralLink,
			SubmitterIP: ctxutil.ClientIPFromCtx(ctx),
		})
		return err
	})
	if err != nil {
		return domain.Referral{}, fmt.Errorf("submit referral: %w", err)
	}

	s.log.InfoContext(ctx, "referral submitted",
		slog.String("user_id", userID),
		slog.Int64("referral_id", created.ID),
		slog.Int64("card_id", created.CardID),
	)
	return created, nil
}

// ListMine returns the caller's referrals and open cards, loaded concurrently.
func (s *Service) ListMine(ctx context.Context) (Mine, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Mine{}, domain.ErrUnauthorized
	}

	var mine Mine
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		mine.Referrals, err = s.referrals.ListBySubmitter(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		mine.Open, err = s.OpenReferrals(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return Mine{}, fmt.Errorf("list referrals: %w", err)
	}
	return mine, nil
}

// Delete removes one of the caller's referrals and its engagement events.
func (s *Service) Delete(ctx context.Context, id int64) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := s.referrals.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("delete referral: %w", err)
	}
	s.log.InfoContext(ctx, "referral deleted", slog.String("user_id", userID), slog.Int64("referral_id", id))
	return nil
}

// Random picks an approved referral for the card that is not the caller's.
// Anonymous callers may see any approved referral.
func (s *Service) Random(ctx context.Context, cardID int64) (domain.Referral, error) {
	if cardID <= 0 {
		return domain.Referral{}, domain.NewValidationError("card_id", "must be greater than 0")
	}
	userID, _ := ctxutil.UserIDFromCtx(ctx)
	return s.referrals.RandomApproved(ctx, cardID, userID)
}
