package card

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/creditodds/creditodds-api/internal/domain"
)

// snapshot is one concurrent read of both sources. A failed source leaves
// its error set and its data nil.
type snapshot struct {
	catalog    []domain.CatalogCard
	catalogErr error
	store      []domain.Card
	stats      map[int64]domain.CardStats
	storeErr   error
}

// load reads the catalog, store cards and aggregate stats concurrently.
// Failures are recorded, not propagated, so one source never cancels another.
func (s *Service) load(ctx context.Context, withStats bool) snapshot {
	var (
		snap             snapshot
		cardsErr, sttErr error
		g                errgroup.Group
	)

	g.Go(func() error {
		snap.catalog, snap.catalogErr = s.catalog.Cards(ctx)
		return nil
	})
	g.Go(func() error {
		snap.store, cardsErr = s.cards.List(ctx)
		return nil
	})
	if withStats {
		g.Go(func() error {
			snap.stats, sttErr = s.records.StatsByCard(ctx)
			return nil
		})
	}
	_ = g.Wait()

	switch {
	case cardsErr != nil:
		snap.storeErr = cardsErr
	case sttErr != nil:
		snap.storeErr = sttErr
	}
	if snap.storeErr != nil {
		snap.store, snap.stats = nil, nil
		s.log.WarnContext(ctx, "store unavailable, serving catalog only",
			slog.String("error", snap.storeErr.Error()))
	}
	if snap.catalogErr != nil {
		s.log.WarnContext(ctx, "catalog unavailable",
			slog.String("error", snap.catalogErr.Error()))
	}
	return snap
}

// ListCards returns every card with statistics. Either source may fail
// without failing the request; both failing is ErrUnavailable.
func (s *Service) ListCards(ctx context.Context) ([]domain.MergedCard, error) {
	snap := s.load(ctx, true)

	switch {
	case snap.catalogErr != nil && snap.storeErr != nil:
		return nil, fmt.Errorf("list cards: catalog and store unavailable: %w", domain.ErrUnavailable)
	case snap.catalogErr != nil:
		return MergeStoreOnly(snap.store, snap.stats), nil
	default:
		return Merge(snap.catalog, snap.store, snap.stats), nil
	}
}
