package wallet

import (
	"context"
	"sync"

	"github.com/creditodds/creditodds-api/internal/domain"
)

var (
	_ walletRepo = &walletRepoMock{}
	_ cardRepo   = &cardRepoMock{}
)

type walletRepoMock struct {
	ListFunc   func(ctx context.Context, userID string) ([]domain.WalletCard, error)
	AddFunc    func(ctx context.Context, w domain.WalletCard) (domain.WalletCard, error)
	DeleteFunc func(ctx context.Context, id int64, userID string) error

	calls struct {
		Add []struct{ W domain.WalletCard }
	}
	lockAdd sync.RWMutex
}

func (mock *walletRepoMock) List(ctx context.Context, userID string) ([]domain.WalletCard, error) {
	if mock.ListFunc == nil {
		panic("walletRepoMock.ListFunc: method is nil but walletRepo.List was just called")
	}
	return mock.ListFunc(ctx, userID)
}

func (mock *walletRepoMock) Add(ctx context.Context, w domain.WalletCard) (domain.WalletCard, error) {
	if mock.AddFunc == nil {
		panic("walletRepoMock.AddFunc: method is nil but walletRepo.Add was just called")
	}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, struct{ W domain.WalletCard }{w})
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, w)
}

func (mock *walletRepoMock) AddCalls() []struct{ W domain.WalletCard } {
	mock.lockAdd.RLock()
	defer mock.lockAdd.RUnlock()
	return mock.calls.Add
}

func (mock *walletRepoMock) Delete(ctx context.Context, id int64, userID string) error {
	if mock.DeleteFunc == nil {
		panic("walletRepoMock.DeleteFunc: method is nil but walletRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, id, userID)
}

type cardRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (domain.Card, error)
}

func (mock *cardRepoMock) GetByID(ctx context.Context, id int64) (domain.Card, error) {
	if mock.GetByIDFunc == nil {
		panic("cardRepoMock.GetByIDFunc: method is nil but cardRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}
