// Package record handles approval record submissions and their moderation.
package record

import (
	"context"
	"log/slog"

	"github.com/creditodds/creditodds-api/internal/domain"
)

type recordRepo interface {
	Create(ctx context.Context, rec domain.Record) (domain.Record, error)
	ListBySubmitter(ctx context.Context, submitterID string) ([]domain.Record, error)
	List(ctx context.Context, f domain.RecordFilter) ([]domain.Record, error)
	SoftDelete(ctx context.Context, id int64, submitterID string) error
	Delete(ctx context.Context, id int64) (domain.Record, error)
	SetReview(ctx context.Context, id int64, reviewed bool) error
}

type cardRepo interface {
	GetByID(ctx context.Context, id int64) (domain.Card, error)
}

type auditSink interface {
	Emit(ctx context.Context, entry domain.AuditEntry)
}

// Service provides record operations.
type Service struct {
	records recordRepo
	cards   cardRepo
	audit   auditSink
	log     *slog.Logger
}

// NewService creates a new record service.
func NewService(log *slog.Logger, records recordRepo, cards cardRepo, audit auditSink) *Service {
	return &Service{
		records: records,
		cards:   cards,
		audit:   audit,
		log:     log.With("service", "record"),
	}
}
