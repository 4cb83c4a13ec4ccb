package card

import (
	"context"
	"fmt"
	"log/slog"
)

// SyncResult summarizes one catalog sync run.
type SyncResult struct {
	Inserted int
	Updated  int
	Skipped  int
}

// Sync upserts every catalog entry into the store by slug, bypassing caches.
// Store-owned columns are never touched. The run is one transaction.
func (s *Service) Sync(ctx context.Context) (SyncResult, error) {
	catalog, err := s.catalog.FetchFresh(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("sync cards: %w", err)
	}

	var res SyncResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		res = SyncResult{}
		for _, entry := range catalog {
			if entry.Slug == "" {
				res.Skipped++
				s.log.WarnContext(ctx, "catalog entry without slug", slog.String("card_name", entry.Name))
				continue
			}
			inserted, err := s.cards.Upsert(txCtx, entry.Slug, entry.Name, entry.Bank)
			if err != nil {
				return fmt.Errorf("upsert card %s: %w", entry.Slug, err)
			}
			if inserted {
				res.Inserted++
			} else {
				res.Updated++
			}
		}
		return nil
	})
	if err != nil {
		return SyncResult{}, err
	}

	s.log.InfoContext(ctx, "cards synced",
		slog.Int("inserted", res.Inserted),
		slog.Int("updated", res.Updated),
		slog.Int("skipped", res.Skipped),
	)
	return res, nil
}
