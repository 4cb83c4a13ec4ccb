package card

import (
	"strings"

	"github.com/creditodds/creditodds-api/internal/domain"
)

// bindStore pairs each catalog entry with at most one store row and each
// store row with at most one catalog entry. Slugs bind first. Only rows whose
// slug matched no catalog entry are then offered to the remaining entries,
// by exact name across the whole catalog before the " Card"-stripped name.
// bound[i] is the index into store for catalog[i], or -1.
func bindStore(catalog []domain.CatalogCard, store []domain.Card) []int {
	bound := make([]int, len(catalog))
	for i := range bound {
		bound[i] = -1
	}
	used := make([]bool, len(store))

	bySlug := make(map[string]int, len(store))
	for j, c := range store {
		if c.Slug != "" {
			bySlug[c.Slug] = j
		}
	}
	for i, entry := range catalog {
		if entry.Slug == "" {
			continue
		}
		if j, ok := bySlug[entry.Slug]; ok && !used[j] {
			bound[i], used[j] = j, true
		}
	}

	bindByName := func(key func(string) string) {
		free := make(map[string]int)
		for j, c := range store {
			if used[j] {
				continue
			}
			if _, dup := free[key(c.Name)]; !dup {
				free[key(c.Name)] = j
			}
		}
		for i, entry := range catalog {
			if bound[i] >= 0 {
				continue
			}
			j, ok := free[key(entry.Name)]
			if !ok || used[j] {
				continue
			}
			bound[i], used[j] = j, true
		}
	}
	bindByName(func(name string) string { return name })
	bindByName(domain.TrimCardSuffix)

	return bound
}

// catalogIndex returns the position of the catalog entry a client-supplied
// name refers to, or -1.
// Slug, exact name and suffix-stripped name are tried over the whole catalog
// before falling back to the first entry whose name starts with the query.
func catalogIndex(catalog []domain.CatalogCard, query string) int {
	query = strings.TrimSpace(query)
	if query == "" {
		return -1
	}

	for i, c := range catalog {
		if c.Slug == query || c.Name == query {
			return i
		}
	}
	trimmed := domain.TrimCardSuffix(query)
	for i, c := range catalog {
		if domain.TrimCardSuffix(c.Name) == trimmed {
			return i
		}
	}
	for i, c := range catalog {
		if strings.HasPrefix(c.Name, query) {
			return i
		}
	}
	return -1
}

// lookupStore applies the same precedence to store rows.
func lookupStore(cards []domain.Card, query string) (domain.Card, bool) {
	entries := make([]domain.CatalogCard, len(cards))
	for i, c := range cards {
		entries[i] = catalogEntryFor(c)
	}
	i := catalogIndex(entries, query)
	if i < 0 {
		return domain.Card{}, false
	}
	return cards[i], true
}

// catalogEntryFor builds a minimal catalog entry for a store-only card.
func catalogEntryFor(c domain.Card) domain.CatalogCard {
	return domain.CatalogCard{
		Slug:    c.Slug,
		Name:    c.Name,
		Bank:    c.Bank,
		Rewards: []domain.Reward{},
		Tags:    []string{},
	}
}
