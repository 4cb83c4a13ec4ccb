// Package referral implements referral submission with its eligibility
// check and fraud guard, owner management and admin moderation.
package referral

import (
	"context"
	"log/slog"

	"github.com/creditodds/creditodds-api/internal/domain"
)

type referralRepo interface {
	CreateGuarded(ctx context.Context, ref domain.Referral) (domain.Referral, error)
	GetByID(ctx context.Context, id int64) (domain.Referral, error)
	ListBySubmitter(ctx context.Context, submitterID string) ([]domain.Referral, error)
	List(ctx context.Context, f domain.ReferralFilter) ([]domain.Referral, error)
	CardIDsBySubmitter(ctx context.Context, submitterID string) ([]int64, error)
	RandomApproved(ctx context.Context, cardID int64, excludeSubmitter string) (domain.Referral, error)
	Delete(ctx context.Context, id int64, submitterID string) error
	AdminDelete(ctx context.Context, id int64) (domain.Referral, error)
	SetApproved(ctx context.Context, id int64, approved bool) error
	UpdateLink(ctx context.Context, id int64, link string) (string, error)
}

type recordCards interface {
	CardIDsBySubmitter(ctx context.Context, submitterID string) ([]int64, error)
}

type walletCards interface {
	CardIDsByUser(ctx context.Context, userID string) ([]int64, error)
}

type cardRepo interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Card, error)
}

type auditSink interface {
	Emit(ctx context.Context, entry domain.AuditEntry)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides referral operations.
type Service struct {
	referrals referralRepo
	records   recordCards
	wallet    walletCards
	cards     cardRepo
	audit     auditSink
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new referral service.
func NewService(
	log *slog.Logger,
	referrals referralRepo,
	records recordCards,
	wallet walletCards,
	cards cardRepo,
	audit auditSink,
	tx txManager,
) *Service {
	return &Service{
		referrals: referrals,
		records:   records,
		wallet:    wallet,
		cards:     cards,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "referral"),
	}
}

// Mine is the caller's referral page: their referrals and the cards they
// may still refer.
type Mine struct {
	Referrals []domain.Referral
	Open      []domain.OpenReferral
}
