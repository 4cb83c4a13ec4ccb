// Package profile assembles everything a signed-in user owns.
package profile

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/creditodds/creditodds-api/internal/domain"
	"github.com/creditodds/creditodds-api/pkg/ctxutil"
)

type recordRepo interface {
	ListBySubmitter(ctx context.Context, submitterID string) ([]domain.Record, error)
}

type referralRepo interface {
	ListBySubmitter(ctx context.Context, submitterID string) ([]domain.Referral, error)
}

type walletRepo interface {
	List(ctx context.Context, userID string) ([]domain.WalletCard, error)
}

type engagementCounter interface {
	Counts(ctx context.Context, ids []int64) (map[int64]domain.ReferralStats, error)
}

// Service builds user profiles.
type Service struct {
	records    recordRepo
	referrals  referralRepo
	wallet     walletRepo
	engagement engagementCounter
	log        *slog.Logger
}

// NewService creates a new profile service.
func NewService(
	log *slog.Logger,
	records recordRepo,
	referrals referralRepo,
	wallet walletRepo,
	engagement engagementCounter,
) *Service {
	return &Service{
		records:    records,
		referrals:  referrals,
		wallet:     wallet,
		engagement: engagement,
		log:        log.With("service", "profile"),
	}
}

// Get loads the caller's records, referrals with engagement counts and
// wallet concurrently. Any failing read fails the whole profile.
func (s *Service) Get(ctx context.Context) (domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Profile{}, domain.ErrUnauthorized
	}

	var (
		records   []domain.Record
		referrals []domain.ReferralWithStats
		wallet    []domain.WalletCard
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.records.ListBySubmitter(gctx, userID)
		if err != nil {
			return fmt.Errorf("records: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		referrals, err = s.referralsWithStats(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		wallet, err = s.wallet.List(gctx, userID)
		if err != nil {
			return fmt.Errorf("wallet: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.Profile{}, fmt.Errorf("get profile: %w", err)
	}

	return domain.Profile{
		UserID:    userID,
		Records:   nonNil(records),
		Referrals: nonNil(referrals),
		Wallet:    nonNil(wallet),
	}, nil
}

func (s *Service) referralsWithStats(ctx context.Context, userID string) ([]domain.ReferralWithStats, error) {
	refs, err := s.referrals.ListBySubmitter(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("referrals: %w", err)
	}
	if len(refs) == 0 {
		return nil, nil
	}

	ids := make([]int64, len(refs))
	for i, r := range refs {
		ids[i] = r.ID
	}
	counts, err := s.engagement.Counts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("referral counts: %w", err)
	}

	out := make([]domain.ReferralWithStats, len(refs))
	for i, r := range refs {
		st, ok := counts[r.ID]
		if !ok {
			st = domain.ReferralStats{ReferralID: r.ID}
		}
		out[i] = domain.ReferralWithStats{Referral: r, Stats: st}
	}
	return out, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
