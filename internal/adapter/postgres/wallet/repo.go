// Package wallet persists the cards a user holds.
package wallet

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/creditodds/creditodds-api/internal/adapter/postgres"
	"github.com/creditodds/creditodds-api/internal/domain"
)

// Repo provides wallet persistence operations.
type Repo struct {
	q postgres.Querier
}

// New creates a new wallet repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// List returns the user's wallet ordered by card name.
func (r *Repo) List(ctx context.Context, userID string) ([]domain.WalletCard, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	rows, err := q.Query(ctx, `
		SELECT w.wallet_id, w.user_id, w.card_id, c.card_name,
		       w.acquired_month::int, w.acquired_year::int, w.created_at
		FROM wallet w
		JOIN cards c ON c.card_id = w.card_id
		WHERE w.user_id = $1
		ORDER BY c.card_name`, userID)
	if err != nil {
		return nil, fmt.Errorf("list wallet: %w", err)
	}

	cards, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.WalletCard, error) {
		var w domain.WalletCard
		err := row.Scan(&w.ID, &w.UserID, &w.CardID, &w.CardName, &w.AcquiredMonth, &w.AcquiredYear, &w.CreatedAt)
		return w, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan wallet: %w", err)
	}
	return cards, nil
}

// Add stores a wallet card. Adding the same card twice is ErrAlreadyExists.
func (r *Repo) Add(ctx context.Context, w domain.WalletCard) (domain.WalletCard, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	err := q.QueryRow(ctx, `
		INSERT INTO wallet (user_id, card_id, acquired_month, acquired_year)
		VALUES ($1, $2, $3, $4)
		RETURNING wallet_id, created_at`,
		w.UserID, w.CardID, w.AcquiredMonth, w.AcquiredYear,
	).Scan(&w.ID, &w.CreatedAt)
	if err != nil {
		return domain.WalletCard{}, postgres.MapError(err, "wallet card", w.CardID)
	}
	return w, nil
}

// Delete removes one of the user's wallet entries.
func (r *Repo) Delete(ctx context.Context, id int64, userID string) error {
	q := postgres.QuerierFromCtx(ctx, r.q)

	tag, err := q.Exec(ctx, `DELETE FROM wallet WHERE wallet_id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return postgres.MapError(err, "wallet card", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet card %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// CardIDsByUser returns the ids of the cards in the user's wallet.
func (r *Repo) CardIDsByUser(ctx context.Context, userID string) ([]int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	rows, err := q.Query(ctx, `SELECT card_id FROM wallet WHERE user_id = $1 ORDER BY card_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("wallet card ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("scan wallet card ids: %w", err)
	}
	return ids, nil
}
