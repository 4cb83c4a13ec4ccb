package record

import (
	"context"
	"sync"

	"github.com/creditodds/creditodds-api/internal/domain"
)

var (
	_ recordRepo = &recordRepoMock{}
	_ cardRepo   = &cardRepoMock{}
	_ auditSink  = &auditSinkMock{}
)

type recordRepoMock struct {
	CreateFunc          func(ctx context.Context, rec domain.Record) (domain.Record, error)
	ListBySubmitterFunc func(ctx context.Context, submitterID string) ([]domain.Record, error)
	ListFunc            func(ctx context.Context, f domain.RecordFilter) ([]domain.Record, error)
	SoftDeleteFunc      func(ctx context.Context, id int64, submitterID string) error
	DeleteFunc          func(ctx context.Context, id int64) (domain.Record, error)
	SetReviewFunc       func(ctx context.Context, id int64, reviewed bool) error

	calls struct {
		Create     []struct{ Rec domain.Record }
		SoftDelete []struct {
			ID          int64
			SubmitterID string
		}
	}
	lockCreate     sync.RWMutex
	lockSoftDelete sync.RWMutex
}

func (mock *recordRepoMock) Create(ctx context.Context, rec domain.Record) (domain.Record, error) {
	if mock.CreateFunc == nil {
		panic("recordRepoMock.CreateFunc: method is nil but recordRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Rec domain.Record }{rec})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *recordRepoMock) CreateCalls() []struct{ Rec domain.Record } {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *recordRepoMock) ListBySubmitter(ctx context.Context, submitterID string) ([]domain.Record, error) {
	if mock.ListBySubmitterFunc == nil {
		panic("recordRepoMock.ListBySubmitterFunc: method is nil but recordRepo.ListBySubmitter was just called")
	}
	return mock.ListBySubmitterFunc(ctx, submitterID)
}

func (mock *recordRepoMock) List(ctx context.Context, f domain.RecordFilter) ([]domain.Record, error) {
	if mock.ListFunc == nil {
		panic("recordRepoMock.ListFunc: method is nil but recordRepo.List was just called")
	}
	return mock.ListFunc(ctx, f)
}

func (mock *recordRepoMock) SoftDelete(ctx context.Context, id int64, submitterID string) error {
	if mock.SoftDeleteFunc == nil {
		panic("recordRepoMock.SoftDeleteFunc: method is nil but recordRepo.SoftDelete was just called")
	}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, struct {
		ID          int64
		SubmitterID string
	}{id, submitterID})
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, id, submitterID)
}

func (mock *recordRepoMock) SoftDeleteCalls() []struct {
	ID          int64
	SubmitterID string
} {
	mock.lockSoftDelete.RLock()
	defer mock.lockSoftDelete.RUnlock()
	return mock.calls.SoftDelete
}

func (mock *recordRepoMock) Delete(ctx context.Context, id int64) (domain.Record, error) {
	if mock.DeleteFunc == nil {
		panic("recordRepoMock.DeleteFunc: method is nil but recordRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, id)
}

func (mock *recordRepoMock) SetReview(ctx context.Context, id int64, reviewed bool) error {
	if mock.SetReviewFunc == nil {
		panic("recordRepoMock.SetReviewFunc: method is nil but recordRepo.SetReview was just called")
	}
	return mock.SetReviewFunc(ctx, id, reviewed)
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
