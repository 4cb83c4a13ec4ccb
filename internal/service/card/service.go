// Package card composes the catalog with store overrides and statistics.
package card

import (
	"context"
	"log/slog"

	"github.com/creditodds/creditodds-api/internal/domain"
)

type catalogSource interface {
	Cards(ctx context.Context) ([]domain.CatalogCard, error)
	FetchFresh(ctx context.Context) ([]domain.CatalogCard, error)
}

type cardRepo interface {
	List(ctx context.Context) ([]domain.Card, error)
	Upsert(ctx context.Context, slug, name, bank string) (bool, error)
}

type recordRepo interface {
	StatsByCard(ctx context.Context) (map[int64]domain.CardStats, error)
	ListCounted(ctx context.Context, cardID int64) ([]domain.Record, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service serves merged card views.
type Service struct {
	catalog catalogSource
	cards   cardRepo
	records recordRepo
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new card service.
func NewService(
	log *slog.Logger,
	catalog catalogSource,
	cards cardRepo,
	records recordRepo,
	tx txManager,
) *Service {
	return &Service{
		catalog: catalog,
		cards:   cards,
		records: records,
		tx:      tx,
		log:     log.With("service", "card"),
	}
}
