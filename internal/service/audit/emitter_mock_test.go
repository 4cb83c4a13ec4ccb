package audit

import (
	"context"
	"sync"

	"github.com/creditodds/creditodds-api/internal/domain"
)

var _ auditRepo = &auditRepoMock{}

type auditRepoMock struct {
	CreateFunc func(ctx context.Context, e domain.AuditEntry) (domain.AuditEntry, error)
	ListFunc   func(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Entry domain.AuditEntry
		}
	}
	lockCreate sync.RWMutex
}

func (mock *auditRepoMock) Create(ctx context.Context, e domain.AuditEntry) (domain.AuditEntry, error) {
	if mock.CreateFunc == nil {
		panic("auditRepoMock.CreateFunc: method is nil but auditRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx   context.Context
		Entry domain.AuditEntry
	}{ctx, e})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *auditRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Entry domain.AuditEntry
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *auditRepoMock) List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error) {
	if mock.ListFunc == nil {
		panic("auditRepoMock.ListFunc: method is nil but auditRepo.List was just called")
	}
	return mock.ListFunc(ctx, f)
}
