package card

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/creditodds/creditodds-api/internal/domain"
	"github.com/creditodds/creditodds-api/internal/stats"
)

// target is a resolved card: its catalog entry and, when known, its store row.
type target struct {
	entry   domain.CatalogCard
	store   domain.Card
	inStore bool
}

// resolve finds the card name refers to in whichever sources are reachable.
func (s *Service) resolve(ctx context.Context, name string) (target, error) {
	if strings.TrimSpace(name) == "" {
		return target{}, domain.NewValidationError("card_name", "is required")
	}

	snap := s.load(ctx, false)
	if snap.catalogErr != nil && snap.storeErr != nil {
		return target{}, fmt.Errorf("get card: catalog and store unavailable: %w", domain.ErrUnavailable)
	}

	if snap.catalogErr == nil {
		if i := catalogIndex(snap.catalog, name); i >= 0 {
			t := target{entry: snap.catalog[i]}
			if j := bindStore(snap.catalog, snap.store)[i]; j >= 0 {
				t.store, t.inStore = snap.store[j], true
			}
			return t, nil
		}
	}

	// Store-only cards are still addressable by name.
	if sc, ok := lookupStore(snap.store, name); ok {
		return target{entry: catalogEntryFor(sc), store: sc, inStore: true}, nil
	}
	return target{}, fmt.Errorf("card %q: %w", name, domain.ErrNotFound)
}

// GetCard returns one merged card with its statistics.
func (s *Service) GetCard(ctx context.Context, name string) (domain.MergedCard, error) {
	t, err := s.resolve(ctx, name)
	if err != nil {
		return domain.MergedCard{}, err
	}
	if !t.inStore {
		return catalogOnly(t.entry), nil
	}

	records, err := s.records.ListCounted(ctx, t.store.ID)
	if err != nil {
		s.log.WarnContext(ctx, "card stats unavailable",
			slog.Int64("card_id", t.store.ID),
			slog.String("error", err.Error()),
		)
		return mergeOne(t.entry, t.store, stats.Empty(t.store.ID)), nil
	}
	return mergeOne(t.entry, t.store, stats.Summarize(t.store.ID, records)), nil
}

// Graphs returns the chart series of one card. Cards that exist only in the
// catalog have empty series.
func (s *Service) Graphs(ctx context.Context, name string) (domain.CardGraphs, error) {
	t, err := s.resolve(ctx, name)
	if err != nil {
		return domain.CardGraphs{}, err
	}
	if !t.inStore {
		return stats.BuildGraphs(nil), nil
	}

	records, err := s.records.ListCounted(ctx, t.store.ID)
	if err != nil {
		return domain.CardGraphs{}, fmt.Errorf("card graphs: %w", err)
	}
	return stats.BuildGraphs(records), nil
}
