package referral

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/creditodds/creditodds-api/internal/domain"
)

// holdings returns the cards the user has an active record or a wallet entry for.
func (s *Service) holdings(ctx context.Context, userID string) (map[int64]struct{}, error) {
	var recordIDs, walletIDs []int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		recordIDs, err = s.records.CardIDsBySubmitter(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		walletIDs, err = s.wallet.CardIDsByUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load holdings: %w", err)
	}

	held := make(map[int64]struct{}, len(recordIDs)+len(walletIDs))
	for _, id := range recordIDs {
		held[id] = struct{}{}
	}
	for _, id := range walletIDs {
		held[id] = struct{}{}
	}
	return held, nil
}

// openCardIDs is held minus referred, in ascending id order.
func openCardIDs(held map[int64]struct{}, referred []int64) []int64 {
	taken := make(map[int64]struct{}, len(referred))
	for _, id := range referred {
		taken[id] = struct{}{}
	}

	open := make([]int64, 0, len(held))
	for id := range held {
		if _, ok := taken[id]; !ok {
			open = append(open, id)
		}
	}
	slices.Sort(open)
	return open
}

// OpenReferrals lists the cards the user may still submit a referral for:
// cards they have a record or wallet entry for, without a referral of theirs.
func (s *Service) OpenReferrals(ctx context.Context, userID string) ([]domain.OpenReferral, error) {
	var (
		held     map[int64]struct{}
		referred []int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		held, err = s.holdings(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		referred, err = s.referrals.CardIDsBySubmitter(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("open referrals: %w", err)
	}

	ids := openCardIDs(held, referred)
	if len(ids) == 0 {
		return []domain.OpenReferral{}, nil
	}

	cards, err := s.cards.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("open referrals: %w", err)
	}
	out := make([]domain.OpenReferral, 0, len(cards))
	for _, c := range cards {
		out = append(out, domain.OpenReferral{CardID: c.ID, CardName: c.Name})
	}
	return out, nil
}

// eligible reports whether the user holds cardID.
func (s *Service) eligible(ctx context.Context, userID string, cardID int64) (bool, error) {
	held, err := s.holdings(ctx, userID)
	if err != nil {
		return false, err
	}
	_, ok := held[cardID]
	return ok, nil
}
