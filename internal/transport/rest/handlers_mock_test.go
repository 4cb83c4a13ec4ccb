package rest

import (
	"context"
	"sync"

	"github.com/creditodds/creditodds-api/internal/domain"
	"github.com/creditodds/creditodds-api/internal/service/referral"
)

var (
	_ cardService       = &cardServiceMock{}
	_ recordService     = &recordServiceMock{}
	_ referralService   = &referralServiceMock{}
	_ engagementService = &engagementServiceMock{}
	_ walletService     = &walletServiceMock{}
	_ profileService    = &profileServiceMock{}
	_ auditLog          = &auditLogMock{}
)

type cardServiceMock struct {
	ListCardsFunc func(ctx context.Context) ([]domain.MergedCard, error)
	GetCardFunc   func(ctx context.Context, name string) (domain.MergedCard, error)
	GraphsFunc    func(ctx context.Context, name string) (domain.CardGraphs, error)

	calls struct {
		GetCard []struct{ Name string }
	}
	lockGetCard sync.RWMutex
}

func (mock *cardServiceMock) ListCards(ctx context.Context) ([]domain.MergedCard, error) {
	if mock.ListCardsFunc == nil {
		panic("cardServiceMock.ListCardsFunc: method is nil but cardService.ListCards was just called")
	}
	return mock.ListCardsFunc(ctx)
}

func (mock *cardServiceMock) GetCard(ctx context.Context, name string) (domain.MergedCard, error) {
	if mock.GetCardFunc == nil {
		panic("cardServiceMock.GetCardFunc: method is nil but cardService.GetCard was just called")
	}
	mock.lockGetCard.Lock()
	mock.calls.GetCard = append(mock.calls.GetCard, struct{ Name string }{name})
	mock.lockGetCard.Unlock()
	return mock.GetCardFunc(ctx, name)
}

func (mock *cardServiceMock) GetCardCalls() []struct{ Name string } {
	mock.lockGetCard.RLock()
	defer mock.lockGetCard.RUnlock()
	return mock.calls.GetCard
}

func (mock *cardServiceMock) Graphs(ctx context.Context, name string) (domain.CardGraphs, error) {
	if mock.GraphsFunc == nil {
		panic("cardServiceMock.GraphsFunc: method is nil but cardService.Graphs was just called")
	}
	return mock.GraphsFunc(ctx, name)
}

type recordServiceMock struct {
	SubmitFunc      func(ctx context.Context, sub domain.RecordSubmission) (domain.Record, error)
	ListMineFunc    func(ctx context.Context) ([]domain.Record, error)
	DeleteFunc      func(ctx context.Context, id int64) error
	AdminListFunc   func(ctx context.Context, f domain.RecordFilter) ([]domain.Record, error)
	ReviewFunc      func(ctx context.Context, id int64, reviewed bool) error
	AdminDeleteFunc func(ctx context.Context, id int64) error

	calls struct {
		Submit    []struct{ Sub domain.RecordSubmission }
		AdminList []struct{ F domain.RecordFilter }
	}
	lockSubmit    sync.RWMutex
	lockAdminList sync.RWMutex
}

func (mock *recordServiceMock) Submit(ctx context.Context, sub domain.RecordSubmission) (domain.Record, error) {
	if mock.SubmitFunc == nil {
		panic("recordServiceMock.SubmitFunc: method is nil but recordService.Submit was just called")
	}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, struct{ Sub domain.RecordSubmission }{sub})
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, sub)
}

func (mock *recordServiceMock) SubmitCalls() []struct{ Sub domain.RecordSubmission } {
	mock.lockSubmit.RLock()
	defer mock.lockSubmit.RUnlock()
	return mock.calls.Submit
}

func (mock *recordServiceMock) ListMine(ctx context.Context) ([]domain.Record, error) {
	if mock.ListMineFunc == nil {
		panic("recordServiceMock.ListMineFunc: method is nil but recordService.ListMine was just called")
	}
	return mock.ListMineFunc(ctx)
}

func (mock *recordServiceMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("recordServiceMock.DeleteFunc: method is nil but recordService.Delete was just called")
	}
	return mock.DeleteFunc(ctx, id)
}

func (mock *recordServiceMock) AdminList(ctx context.Context, f domain.RecordFilter) ([]domain.Record, error) {
	if mock.AdminListFunc == nil {
		panic("recordServiceMock.AdminListFunc: method is nil but recordService.AdminList was just called")
	}
	mock.lockAdminList.Lock()
	mock.calls.AdminList = append(mock.calls.AdminList, struct{ F domain.RecordFilter }{f})
	mock.lockAdminList.Unlock()
	return mock.AdminListFunc(ctx, f)
}

func (mock *recordServiceMock) AdminListCalls() []struct{ F domain.RecordFilter } {
	mock.lockAdminList.RLock()
	defer mock.lockAdminList.RUnlock()
	return mock.calls.AdminList
}

func (mock *recordServiceMock) Review(ctx context.Context, id int64, reviewed bool) error {
	if mock.ReviewFunc == nil {
		panic("recordServiceMock.ReviewFunc: method is nil but recordService.Review was just called")
	}
	return mock.ReviewFunc(ctx, id, reviewed)
}

func (mock *recordServiceMock) AdminDelete(ctx context.Context, id int64) error {
	if mock.AdminDeleteFunc == nil {
		panic("recordServiceMock.AdminDeleteFunc: method is nil but recordService.AdminDelete was just called")
	}
	return mock.AdminDeleteFunc(ctx, id)
}

type referralServiceMock struct {
	SubmitFunc      func(ctx context.Context, sub domain.ReferralSubmission) (domain.Referral, error)
	ListMineFunc    func(ctx context.Context) (referral.Mine, error)
	DeleteFunc      func(ctx context.Context, id int64) error
	RandomFunc      func(ctx context.Context, cardID int64) (domain.Referral, error)
	AdminListFunc   func(ctx context.Context, f domain.ReferralFilter) ([]domain.Referral, error)
	ApproveFunc     func(ctx context.Context, id int64, approved bool) error
	UpdateLinkFunc  func(ctx context.Context, id int64, link string) error
	AdminDeleteFunc func(ctx context.Context, id int64) error
}

func (mock *referralServiceMock) Submit(ctx context.Context, sub domain.ReferralSubmission) (domain.Referral, error) {
	if mock.SubmitFunc == nil {
		panic("referralServiceMock.SubmitFunc: method is nil but referralService.Submit was just called")
	}
	return mock.SubmitFunc(ctx, sub)
}

func (mock *referralServiceMock) ListMine(ctx context.Context) (referral.Mine, error) {
	if mock.ListMineFunc == nil {
		panic("referralServiceMock.ListMineFunc: method is nil but referralService.ListMine was just called")
	}
	return mock.ListMineFunc(ctx)
}

func (mock *referralServiceMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("referralServiceMock.DeleteFunc: method is nil but referralService.Delete was just called")
	}
	return mock.DeleteFunc(ctx, id)
}

func (mock *referralServiceMock) Random(ctx context.Context, cardID int64) (domain.Referral, error) {
	if mock.RandomFunc == nil {
		panic("referralServiceMock.RandomFunc: method is nil but referralService.Random was just called")
	}
	return mock.RandomFunc(ctx, cardID)
}

func (mock *referralServiceMock) AdminList(ctx context.Context, f domain.ReferralFilter) ([]domain.Referral, error) {
	if mock.AdminListFunc == nil {
		panic("referralServiceMock.AdminListFunc: method is nil but referralService.AdminList was just called")
	}
	return mock.AdminListFunc(ctx, f)
}

func (mock *referralServiceMock) Approve(ctx context.Context, id int64, approved bool) error {
	if mock.ApproveFunc == nil {
		panic("referralServiceMock.ApproveFunc: method is nil but referralService.Approve was just called")
	}
	return mock.ApproveFunc(ctx, id, approved)
}

func (mock *referralServiceMock) UpdateLink(ctx context.Context, id int64, link string) error {
	if mock.UpdateLinkFunc == nil {
		panic("referralServiceMock.UpdateLinkFunc: method is nil but referralService.UpdateLink was just called")
	}
	return mock.UpdateLinkFunc(ctx, id, link)
}

func (mock *referralServiceMock) AdminDelete(ctx context.Context, id int64) error {
	if mock.AdminDeleteFunc == nil {
		panic("referralServiceMock.AdminDeleteFunc: method is nil but referralService.AdminDelete was just called")
	}
	return mock.AdminDeleteFunc(ctx, id)
}

type engagementServiceMock struct {
	RecordFunc func(ctx context.Context, referralID int64, event domain.ReferralEvent) error
}

func (mock *engagementServiceMock) Record(ctx context.Context, referralID int64, event domain.ReferralEvent) error {
	if mock.RecordFunc == nil {
		panic("engagementServiceMock.RecordFunc: method is nil but engagementService.Record was just called")
	}
	return mock.RecordFunc(ctx, referralID, event)
}

type walletServiceMock struct {
	ListFunc   func(ctx context.Context) ([]domain.WalletCard, error)
	AddFunc    func(ctx context.Context, sub domain.WalletSubmission) (domain.WalletCard, error)
	DeleteFunc func(ctx context.Context, id int64) error
}

func (mock *walletServiceMock) List(ctx context.Context) ([]domain.WalletCard, error) {
	if mock.ListFunc == nil {
		panic("walletServiceMock.ListFunc: method is nil but walletService.List was just called")
	}
	return mock.ListFunc(ctx)
}

func (mock *walletServiceMock) Add(ctx context.Context, sub domain.WalletSubmission) (domain.WalletCard, error) {
	if mock.AddFunc == nil {
		panic("walletServiceMock.AddFunc: method is nil but walletService.Add was just called")
	}
	return mock.AddFunc(ctx, sub)
}

func (mock *walletServiceMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("walletServiceMock.DeleteFunc: method is nil but walletService.Delete was just called")
	}
	return mock.DeleteFunc(ctx, id)
}

type profileServiceMock struct {
	GetFunc func(ctx context.Context) (domain.Profile, error)
}

func (mock *profileServiceMock) Get(ctx context.Context) (domain.Profile, error) {
	if mock.GetFunc == nil {
		panic("profileServiceMock.GetFunc: method is nil but profileService.Get was just called")
	}
	return mock.GetFunc(ctx)
}

type auditLogMock struct {
	ListFunc func(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error)
}

func (mock *auditLogMock) List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error) {
	if mock.ListFunc == nil {
		panic("auditLogMock.ListFunc: method is nil but auditLog.List was just called")
	}
	return mock.ListFunc(ctx, f)
}
