package card

import (
	"github.com/creditodds/creditodds-api/internal/domain"
	"github.com/creditodds/creditodds-api/internal/stats"
)

// Merge produces one view per catalog entry. Store values override the
// catalog image and accepting flag when present; stats default to zero.
// The result depends only on its inputs.
func Merge(catalog []domain.CatalogCard, store []domain.Card, cardStats map[int64]domain.CardStats) []domain.MergedCard {
	bound := bindStore(catalog, store)

	out := make([]domain.MergedCard, 0, len(catalog))
	for i, entry := range catalog {
		if bound[i] < 0 {
			out = append(out, catalogOnly(entry))
			continue
		}
		sc := store[bound[i]]
		out = append(out, mergeOne(entry, sc, statsFor(cardStats, sc.ID)))
	}
	return out
}

// MergeStoreOnly builds views from store rows when the catalog is unavailable.
func MergeStoreOnly(store []domain.Card, cardStats map[int64]domain.CardStats) []domain.MergedCard {
	out := make([]domain.MergedCard, 0, len(store))
	for _, sc := range store {
		out = append(out, mergeOne(catalogEntryFor(sc), sc, statsFor(cardStats, sc.ID)))
	}
	return out
}

func mergeOne(entry domain.CatalogCard, sc domain.Card, st domain.CardStats) domain.MergedCard {
	id := sc.ID
	m := domain.MergedCard{
		CardID:                &id,
		Catalog:               entry,
		ImageLink:             entry.Image,
		AcceptingApplications: entry.AcceptingApplications,
		ReferralBaseLink:      sc.ReferralBaseLink,
		Stats:                 st,
	}
	if sc.ImageLink != nil {
		m.ImageLink = sc.ImageLink
	}
	if sc.AcceptingApplications != nil {
		m.AcceptingApplications = sc.AcceptingApplications
	}
	return m
}

func catalogOnly(entry domain.CatalogCard) domain.MergedCard {
	return domain.MergedCard{
		Catalog:               entry,
		ImageLink:             entry.Image,
		AcceptingApplications: entry.AcceptingApplications,
		Stats:                 stats.Empty(0),
	}
}

func statsFor(m map[int64]domain.CardStats, id int64) domain.CardStats {
	if s, ok := m[id]; ok {
		return s
	}
	return stats.Empty(id)
}
