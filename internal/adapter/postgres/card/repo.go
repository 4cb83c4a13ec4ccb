// Package card persists store-owned card rows.
package card

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/creditodds/creditodds-api/internal/adapter/postgres"
	"github.com/creditodds/creditodds-api/internal/domain"
)

const selectCards = `
SELECT card_id, slug, card_name, bank, card_image_link, accepting_applications,
       referral_base_link, created_at, updated_at
FROM cards`

// Repo provides card persistence operations.
type Repo struct {
	q postgres.Querier
}

// New creates a new card repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// List returns every card ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	rows, err := q.Query(ctx, selectCards+` ORDER BY card_name`)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return collectCards(rows)
}

// GetByID returns one card.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	c, err := scanCard(q.QueryRow(ctx, selectCards+` WHERE card_id = $1`, id))
	if err != nil {
		return domain.Card{}, postgres.MapError(err, "card", id)
	}
	return c, nil
}

// GetByIDs returns the cards among ids that exist, ordered by name.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Card, error) {
	if len(ids) == 0 {
		return []domain.Card{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.q)

	rows, err := q.Query(ctx, selectCards+` WHERE card_id = ANY($1) ORDER BY card_name`, ids)
	if err != nil {
		return nil, fmt.Errorf("get cards by ids: %w", err)
	}
	return collectCards(rows)
}

// Upsert inserts a card by slug or refreshes its catalog-owned columns.
// Store-owned columns are left untouched. Reports whether a row was inserted.
func (r *Repo) Upsert(ctx context.Context, slug, name, bank string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	var inserted bool
	err := q.QueryRow(ctx, `
		INSERT INTO cards (slug, card_name, bank)
		VALUES ($1, $2, $3)
		ON CONFLICT (slug) DO UPDATE
		SET card_name = EXCLUDED.card_name, bank = EXCLUDED.bank, updated_at = now()
		RETURNING (xmax = 0)`,
		slug, name, bank,
	).Scan(&inserted)
	if err != nil {
		return false, postgres.MapError(err, "card", slug)
	}
	return inserted, nil
}

func scanCard(row pgx.Row) (domain.Card, error) {
	var c domain.Card
	err := row.Scan(
		&c.ID, &c.Slug, &c.Name, &c.Bank, &c.ImageLink, &c.AcceptingApplications,
		&c.ReferralBaseLink, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func collectCards(rows pgx.Rows) ([]domain.Card, error) {
	defer rows.Close()

	cards := []domain.Card{}
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cards: %w", err)
	}
	return cards, nil
}
