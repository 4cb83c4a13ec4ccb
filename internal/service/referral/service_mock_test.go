package referral

import (
	"context"
	"sync"

	"github.com/creditodds/creditodds-api/internal/domain"
)

var (
	_ referralRepo = &referralRepoMock{}
	_ recordCards  = &recordCardsMock{}
	_ walletCards  = &walletCardsMock{}
	_ cardRepo     = &cardRepoMock{}
	_ auditSink    = &auditSinkMock{}
	_ txManager    = &txManagerMock{}
)

type referralRepoMock struct {
	CreateGuardedFunc      func(ctx context.Context, ref domain.Referral) (domain.Referral, error)
	GetByIDFunc            func(ctx context.Context, id int64) (domain.Referral, error)
	ListBySubmitterFunc    func(ctx context.Context, submitterID string) ([]domain.Referral, error)
	ListFunc               func(ctx context.Context, f domain.ReferralFilter) ([]domain.Referral, error)
	CardIDsBySubmitterFunc func(ctx context.Context, submitterID string) ([]int64, error)
	RandomApprovedFunc     func(ctx context.Context, cardID int64, excludeSubmitter string) (domain.Referral, error)
	DeleteFunc             func(ctx context.Context, id int64, submitterID string) error
	AdminDeleteFunc        func(ctx context.Context, id int64) (domain.Referral, error)
	SetApprovedFunc        func(ctx context.Context, id int64, approved bool) error
	UpdateLinkFunc         func(ctx context.Context, id int64, link string) (string, error)

	calls struct {
		CreateGuarded  []struct{ Ref domain.Referral }
		RandomApproved []struct {
			CardID           int64
			ExcludeSubmitter string
		}
	}
	lockCreateGuarded  sync.RWMutex
	lockRandomApproved sync.RWMutex
}

func (mock *referralRepoMock) CreateGuarded(ctx context.Context, ref domain.Referral) (domain.Referral, error) {
	if mock.CreateGuardedFunc == nil {
		panic("referralRepoMock.CreateGuardedFunc: method is nil but referralRepo.CreateGuarded was just called")
	}
	mock.lockCreateGuarded.Lock()
	mock.calls.CreateGuarded = append(mock.calls.CreateGuarded, struct{ Ref domain.Referral }{ref})
	mock.lockCreateGuarded.Unlock()
	return mock.CreateGuardedFunc(ctx, ref)
}

func (mock *referralRepoMock) CreateGuardedCalls() []struct{ Ref domain.Referral } {
	mock.lockCreateGuarded.RLock()
	defer mock.lockCreateGuarded.RUnlock()
	return mock.calls.CreateGuarded
}

func (mock *referralRepoMock) GetByID(ctx context.Context, id int64) (domain.Referral, error) {
	if mock.GetByIDFunc == nil {
		panic("referralRepoMock.GetByIDFunc: method is nil but referralRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *referralRepoMock) ListBySubmitter(ctx context.Context, submitterID string) ([]domain.Referral, error) {
	if mock.ListBySubmitterFunc == nil {
		panic("referralRepoMock.ListBySubmitterFunc: method is nil but referralRepo.ListBySubmitter was just called")
	}
	return mock.ListBySubmitterFunc(ctx, submitterID)
}

func (mock *referralRepoMock) List(ctx context.Context, f domain.ReferralFilter) ([]domain.Referral, error) {
	if mock.ListFunc == nil {
		panic("referralRepoMock.ListFunc: method is nil but referralRepo.List was just called")
	}
	return mock.ListFunc(ctx, f)
}

func (mock *referralRepoMock) CardIDsBySubmitter(ctx context.Context, submitterID string) ([]int64, error) {
	if mock.CardIDsBySubmitterFunc == nil {
		panic("referralRepoMock.CardIDsBySubmitterFunc: method is nil but referralRepo.CardIDsBySubmitter was just called")
	}
	return mock.CardIDsBySubmitterFunc(ctx, submitterID)
}

func (mock *referralRepoMock) RandomApproved(ctx context.Context, cardID int64, excludeSubmitter string) (domain.Referral, error) {
	if mock.RandomApprovedFunc == nil {
		panic("referralRepoMock.RandomApprovedFunc: method is nil but referralRepo.RandomApproved was just called")
	}
	mock.lockRandomApproved.Lock()
	mock.calls.RandomApproved = append(mock.calls.RandomApproved, struct {
		CardID           int64
		ExcludeSubmitter string
	}{cardID, excludeSubmitter})
	mock.lockRandomApproved.Unlock()
	return mock.RandomApprovedFunc(ctx, cardID, excludeSubmitter)
}

func (mock *referralRepoMock) RandomApprovedCalls() []struct {
	CardID           int64
	ExcludeSubmitter string
} {
	mock.lockRandomApproved.RLock()
	defer mock.lockRandomApproved.RUnlock()
	return mock.calls.RandomApproved
}

func (mock *referralRepoMock) Delete(ctx context.Context, id int64, submitterID string) error {
	if mock.DeleteFunc == nil {
		panic("referralRepoMock.DeleteFunc: method is nil but referralRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, id, submitterID)
}

func (mock *referralRepoMock) AdminDelete(ctx context.Context, id int64) (domain.Referral, error) {
	if mock.AdminDeleteFunc == nil {
		panic("referralRepoMock.AdminDeleteFunc: method is nil but referralRepo.AdminDelete was just called")
	}
	return mock.AdminDeleteFunc(ctx, id)
}

func (mock *referralRepoMock) SetApproved(ctx context.Context, id int64, approved bool) error {
	if mock.SetApprovedFunc == nil {
		panic("referralRepoMock.SetApprovedFunc: method is nil but referralRepo.SetApproved was just called")
	}
	return mock.SetApprovedFunc(ctx, id, approved)
}

func (mock *referralRepoMock) UpdateLink(ctx context.Context, id int64, link string) (string, error) {
	if mock.UpdateLinkFunc == nil {
		panic("referralRepoMock.UpdateLinkFunc: method is nil but referralRepo.UpdateLink was just called")
	}
	return mock.UpdateLinkFunc(ctx, id, link)
}

type recordCardsMock struct {
	CardIDsBySubmitterFunc func(ctx context.Context, submitterID string) ([]int64, error)
}

func (mock *recordCardsMock) CardIDsBySubmitter(ctx context.Context, submitterID string) ([]int64, error) {
	if mock.CardIDsBySubmitterFunc == nil {
		panic("recordCardsMock.CardIDsBySubmitterFunc: method is nil but recordCards.CardIDsBySubmitter was just called")
	}
	return mock.CardIDsBySubmitterFunc(ctx, submitterID)
}

type walletCardsMock struct {
	CardIDsByUserFunc func(ctx context.Context, userID string) ([]int64, error)
}

func (mock *walletCardsMock) CardIDsByUser(ctx context.Context, userID string) ([]int64, error) {
	if mock.CardIDsByUserFunc == nil {
		panic("walletCardsMock.CardIDsByUserFunc: method is nil but walletCards.CardIDsByUser was just called")
	}
	return mock.CardIDsByUserFunc(ctx, userID)
}

type cardRepoMock struct {
	GetByIDsFunc func(ctx context.Context, ids []int64) ([]domain.Card, error)

	calls struct {
		GetByIDs []struct{ IDs []int64 }
	}
	lockGetByIDs sync.RWMutex
}

func (mock *cardRepoMock) GetByIDs(ctx context.Context, ids []int64) ([]domain.Card, error) {
	if mock.GetByIDsFunc == nil {
		panic("cardRepoMock.GetByIDsFunc: method is nil but cardRepo.GetByIDs was just called")
	}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, struct{ IDs []int64 }{ids})
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *cardRepoMock) GetByIDsCalls() []struct{ IDs []int64 } {
	mock.lockGetByIDs.RLock()
	defer mock.lockGetByIDs.RUnlock()
	return mock.calls.GetByIDs
}

type auditSinkMock struct {
	calls struct {
		Emit []struct{ Entry domain.AuditEntry }
	}
	lockEmit sync.RWMutex
}

func (mock *auditSinkMock) Emit(_ context.Context, entry domain.AuditEntry) {
	mock.lockEmit.Lock()
	mock.calls.Emit = append(mock.calls.Emit, struct{ Entry domain.AuditEntry }{entry})
	mock.lockEmit.Unlock()
}

func (mock *auditSinkMock) EmitCalls() []struct{ Entry domain.AuditEntry } {
	mock.lockEmit.RLock()
	defer mock.lockEmit.RUnlock()
	return mock.calls.Emit
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	defer mock.lockRunInTx.RUnlock()
	return mock.calls.RunInTx
}
