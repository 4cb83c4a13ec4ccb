// Package engagement counts referral impressions and clicks.
package engagement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/creditodds/creditodds-api/internal/domain"
)

type statRepo interface {
	Insert(ctx context.Context, referralID int64, event domain.ReferralEvent) error
	CountsByReferralIDs(ctx context.Context, ids []int64) (map[int64]domain.ReferralStats, error)
}

// Service records and aggregates engagement events.
type Service struct {
	stats statRepo
	log   *slog.Logger
}

// NewService creates a new engagement service.
func NewService(log *slog.Logger, stats statRepo) *Service {
	return &Service{
		stats: stats,
		log:   log.With("service", "engagement"),
	}
}

// Record appends one event. An unknown event type is a validation error;
// every store failure, including an unknown referral, is logged and dropped.
func (s *Service) Record(ctx context.Context, referralID int64, event domain.ReferralEvent) error {
	if !event.IsValid() {
		return domain.NewValidationError("event_type", "must be one of impression, click")
	}
	if referralID <= 0 {
		return domain.NewValidationError("referral_id", "must be greater than 0")
	}

	if err := s.stats.Insert(ctx, referralID, event); err != nil {
		s.log.WarnContext(ctx, "engagement event dropped",
			slog.Int64("referral_id", referralID),
			slog.String("event_type", event.String()),
			slog.String("error", err.Error()),
		)
	}
	return nil
}

// Counts returns per-referral counts; ids without events have zero counts.
func (s *Service) Counts(ctx context.Context, ids []int64) (map[int64]domain.ReferralStats, error) {
	counts, err := s.stats.CountsByReferralIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("referral counts: %w", err)
	}
	return counts, nil
}
