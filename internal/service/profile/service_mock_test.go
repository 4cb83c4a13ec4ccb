package profile

import (
	"context"
	"sync"

	"github.com/creditodds/creditodds-api/internal/domain"
)

var (
	_ recordRepo        = &recordRepoMock{}
	_ referralRepo      = &referralRepoMock{}
	_ walletRepo        = &walletRepoMock{}
	_ engagementCounter = &engagementCounterMock{}
)

type recordRepoMock struct {
	ListBySubmitterFunc func(ctx context.Context, submitterID string) ([]domain.Record, error)
}

func (mock *recordRepoMock) ListBySubmitter(ctx context.Context, submitterID string) ([]domain.Record, error) {
	if mock.ListBySubmitterFunc == nil {
		panic("recordRepoMock.ListBySubmitterFunc: method is nil but recordRepo.ListBySubmitter was just called")
	}
	return mock.ListBySubmitterFunc(ctx, submitterID)
}

type referralRepoMock struct {
	ListBySubmitterFunc func(ctx context.Context, submitterID string) ([]domain.Referral, error)
}

func (mock *referralRepoMock) ListBySubmitter(ctx context.Context, submitterID string) ([]domain.Referral, error) {
	if mock.ListBySubmitterFunc == nil {
		panic("referralRepoMock.ListBySubmitterFunc: method is nil but referralRepo.ListBySubmitter was just called")
	}
	return mock.ListBySubmitterFunc(ctx, submitterID)
}

type walletRepoMock struct {
	ListFunc func(ctx context.Context, userID string) ([]domain.WalletCard, error)
}

func (mock *walletRepoMock) List(ctx context.Context, userID string) ([]domain.WalletCard, error) {
	if mock.ListFunc == nil {
		panic("walletRepoMock.ListFunc: method is nil but walletRepo.List was just called")
	}
	return mock.ListFunc(ctx, userID)
}

type engagementCounterMock struct {
	CountsFunc func(ctx context.Context, ids []int64) (map[int64]domain.ReferralStats, error)

	calls struct {
		Counts []struct{ IDs []int64 }
	}
	lockCounts sync.RWMutex
}

func (mock *engagementCounterMock) Counts(ctx context.Context, ids []int64) (map[int64]domain.ReferralStats, error) {
	if mock.CountsFunc == nil {
		panic("engagementCounterMock.CountsFunc: method is nil but engagementCounter.Counts was just called")
	}
	mock.lockCounts.Lock()
	mock.calls.Counts = append(mock.calls.Counts, struct{ IDs []int64 }{ids})
	mock.lockCounts.Unlock()
	return mock.CountsFunc(ctx, ids)
}

func (mock *engagementCounterMock) CountsCalls() []struct{ IDs []int64 } {
	mock.lockCounts.RLock()
	defer mock.lockCounts.RUnlock()
	return mock.calls.Counts
}
