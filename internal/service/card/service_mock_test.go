package card

import (
	"context"
	"sync"

	"github.com/creditodds/creditodds-api/internal/domain"
)

var (
	_ catalogSource = &catalogSourceMock{}
	_ cardRepo      = &cardRepoMock{}
	_ recordRepo    = &recordRepoMock{}
	_ txManager     = &txManagerMock{}
)

type catalogSourceMock struct {
	CardsFunc      func(ctx context.Context) ([]domain.CatalogCard, error)
	FetchFreshFunc func(ctx context.Context) ([]domain.CatalogCard, error)

	calls struct {
		Cards      []struct{ Ctx context.Context }
		FetchFresh []struct{ Ctx context.Context }
	}
	lockCards      sync.RWMutex
	lockFetchFresh sync.RWMutex
}

func (mock *catalogSourceMock) Cards(ctx context.Context) ([]domain.CatalogCard, error) {
	if mock.CardsFunc == nil {
		panic("catalogSourceMock.CardsFunc: method is nil but catalogSource.Cards was just called")
	}
	mock.lockCards.Lock()
	mock.calls.Cards = append(mock.calls.Cards, struct{ Ctx context.Context }{ctx})
	mock.lockCards.Unlock()
	return mock.CardsFunc(ctx)
}

func (mock *catalogSourceMock) CardsCalls() []struct{ Ctx context.Context } {
	mock.lockCards.RLock()
	defer mock.lockCards.RUnlock()
	return mock.calls.Cards
}

func (mock *catalogSourceMock) FetchFresh(ctx context.Context) ([]domain.CatalogCard, error) {
	if mock.FetchFreshFunc == nil {
		panic("catalogSourceMock.FetchFreshFunc: method is nil but catalogSource.FetchFresh was just called")
	}
	mock.lockFetchFresh.Lock()
	mock.calls.FetchFresh = append(mock.calls.FetchFresh, struct{ Ctx context.Context }{ctx})
	mock.lockFetchFresh.Unlock()
	return mock.FetchFreshFunc(ctx)
}

func (mock *catalogSourceMock) FetchFreshCalls() []struct{ Ctx context.Context } {
	mock.lockFetchFresh.RLock()
	defer mock.lockFetchFresh.RUnlock()
	return mock.calls.FetchFresh
}

type cardRepoMock struct {
	ListFunc   func(ctx context.Context) ([]domain.Card, error)
	UpsertFunc func(ctx context.Context, slug, name, bank string) (bool, error)

	calls struct {
		List   []struct{ Ctx context.Context }
		Upsert []struct {
			Ctx              context.Context
			Slug, Name, Bank string
		}
	}
	lockList   sync.RWMutex
	lockUpsert sync.RWMutex
}

func (mock *cardRepoMock) List(ctx context.Context) ([]domain.Card, error) {
	if mock.ListFunc == nil {
		panic("cardRepoMock.ListFunc: method is nil but cardRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{ Ctx context.Context }{ctx})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *cardRepoMock) Upsert(ctx context.Context, slug, name, bank string) (bool, error) {
	if mock.UpsertFunc == nil {
		panic("cardRepoMock.UpsertFunc: method is nil but cardRepo.Upsert was just called")
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, struct {
		Ctx              context.Context
		Slug, Name, Bank string
	}{ctx, slug, name, bank})
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, slug, name, bank)
}

func (mock *cardRepoMock) UpsertCalls() []struct {
	Ctx              context.Context
	Slug, Name, Bank string
} {
	mock.lockUpsert.RLock()
	defer mock.lockUpsert.RUnlock()
	return mock.calls.Upsert
}

type recordRepoMock struct {
	StatsByCardFunc func(ctx context.Context) (map[int64]domain.CardStats, error)
	ListCountedFunc func(ctx context.Context, cardID int64) ([]domain.Record, error)

	calls struct {
		ListCounted []struct {
			Ctx    context.Context
			CardID int64
		}
	}
	lockListCounted sync.RWMutex
}

func (mock *recordRepoMock) StatsByCard(ctx context.Context) (map[int64]domain.CardStats, error) {
	if mock.StatsByCardFunc == nil {
		panic("recordRepoMock.StatsByCardFunc: method is nil but recordRepo.StatsByCard was just called")
	}
	return mock.StatsByCardFunc(ctx)
}

func (mock *recordRepoMock) ListCounted(ctx context.Context, cardID int64) ([]domain.Record, error) {
	if mock.ListCountedFunc == nil {
		panic("recordRepoMock.ListCountedFunc: method is nil but recordRepo.ListCounted was just called")
	}
	mock.lockListCounted.Lock()
	mock.calls.ListCounted = append(mock.calls.ListCounted, struct {
		Ctx    context.Context
		CardID int64
	}{ctx, cardID})
	mock.lockListCounted.Unlock()
	return mock.ListCountedFunc(ctx, cardID)
}

func (mock *recordRepoMock) ListCountedCalls() []struct {
	Ctx    context.Context
	CardID int64
} {
	mock.lockListCounted.RLock()
	defer mock.lockListCounted.RUnlock()
	return mock.calls.ListCounted
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}
