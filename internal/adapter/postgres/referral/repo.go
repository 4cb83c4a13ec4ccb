// Package referral persists referral links and enforces the per-card
// uniqueness rules at insert time.
package referral

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"github.com/creditodds/creditodds-api/internal/adapter/postgres"
	"github.com/creditodds/creditodds-api/internal/domain"
)

const referralColumns = `f.referral_id, f.card_id, c.card_name, f.submitter_id, f.referral_link,
       f.submit_datetime, f.submitter_ip, f.admin_approved`

const selectReferrals = `SELECT ` + referralColumns + `
FROM referrals f
JOIN cards c ON c.card_id = f.card_id`

type row struct {
	ID             int64     `db:"referral_id"`
	CardID         int64     `db:"card_id"`
	CardName       string    `db:"card_name"`
	SubmitterID    string    `db:"submitter_id"`
	Link           string    `db:"referral_link"`
	SubmitDatetime time.Time `db:"submit_datetime"`
	SubmitterIP    string    `db:"submitter_ip"`
	AdminApproved  bool      `db:"admin_approved"`
}

func (r row) toDomain() domain.Referral {
	return domain.Referral{
		ID:             r.ID,
		CardID:         r.CardID,
		CardName:       r.CardName,
		SubmitterID:    r.SubmitterID,
		Link:           r.Link,
		SubmitDatetime: r.SubmitDatetime,
		SubmitterIP:    r.SubmitterIP,
		AdminApproved:  r.AdminApproved,
	}
}

func toDomain(rows []row) []domain.Referral {
	out := make([]domain.Referral, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out
}

// Repo provides referral persistence operations.
type Repo struct {
	q postgres.Querier
}

// New creates a new referral repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// CreateGuarded inserts ref unless a conflicting referral exists. The check and
// the insert are one statement; the unique constraints catch the remaining race.
func (r *Repo) CreateGuarded(ctx context.Context, ref domain.Referral) (domain.Referral, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	err := q.QueryRow(ctx, `
		INSERT INTO referrals (card_id, submitter_id, referral_link, submitter_ip)
		SELECT $1::bigint, $2::text, $3::text, $4::text
		WHERE NOT EXISTS (
		    SELECT 1 FROM referrals
		    WHERE card_id = $1
		      AND (submitter_id = $2 OR (referral_link = $3 AND submitter_id <> $2))
		)
		RETURNING referral_id, submit_datetime, admin_approved`,
		ref.CardID, ref.SubmitterID, ref.Link, ref.SubmitterIP,
	).Scan(&ref.ID, &ref.SubmitDatetime, &ref.AdminApproved)

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Referral{}, fmt.Errorf("referral for card %d: %w", ref.CardID, domain.ErrConflict)
	}
	if err != nil {
		err = postgres.MapError(err, "referral for card", ref.CardID)
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.Referral{}, fmt.Errorf("referral for card %d: %w", ref.CardID, domain.ErrConflict)
		}
		return domain.Referral{}, err
	}
	return ref, nil
}

// GetByID returns one referral.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Referral, error) {
	var out row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &out,
		selectReferrals+` WHERE f.referral_id = $1`, id)
	if err != nil {
		if pgxscan.NotFound(err) {
			return domain.Referral{}, fmt.Errorf("referral %d: %w", id, domain.ErrNotFound)
		}
		return domain.Referral{}, fmt.Errorf("get referral: %w", err)
	}
	return out.toDomain(), nil
}

// ListBySubmitter returns the submitter's referrals, newest first.
func (r *Repo) ListBySubmitter(ctx context.Context, submitterID string) ([]domain.Referral, error) {
	var rows []row
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), &rows,
		selectReferrals+` WHERE f.submitter_id = $1 ORDER BY f.submit_datetime DESC, f.referral_id DESC`,
		submitterID)
	if err != nil {
		return nil, fmt.Errorf("list referrals by submitter: %w", err)
	}
	return toDomain(rows), nil
}

// List returns referrals for the admin listing, newest first.
func (r *Repo) List(ctx context.Context, f domain.ReferralFilter) ([]domain.Referral, error) {
	limit, offset := postgres.Page(f.Limit, f.Offset, 50, 200)

	sb := postgres.Builder().
		Select(referralColumns).
		From("referrals f").
		Join("cards c ON c.card_id = f.card_id").
		OrderBy("f.submit_datetime DESC", "f.referral_id DESC").
		Limit(limit).
		Offset(offset)
	if f.Status != nil {
		sb = sb.Where(squirrel.Eq{"f.admin_approved": *f.Status == domain.ReferralStatusApproved})
	}

	sql, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build referral list: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list referrals: %w", err)
	}
	return toDomain(rows), nil
}

// CardIDsBySubmitter returns the cards the submitter already has a referral for.
func (r *Repo) CardIDsBySubmitter(ctx context.Context, submitterID string) ([]int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	rows, err := q.Query(ctx,
		`SELECT card_id FROM referrals WHERE submitter_id = $1 ORDER BY card_id`, submitterID)
	if err != nil {
		return nil, fmt.Errorf("referral card ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("scan referral card ids: %w", err)
	}
	return ids, nil
}

// RandomApproved picks one approved referral for the card, skipping the
// excluded submitter's own. Returns ErrNotFound when none qualifies.
func (r *Repo) RandomApproved(ctx context.Context, cardID int64, excludeSubmitter string) (domain.Referral, error) {
	var out row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &out,
		selectReferrals+`
		WHERE f.card_id = $1 AND f.admin_approved AND f.submitter_id <> $2
		ORDER BY random()
		LIMIT 1`,
		cardID, excludeSubmitter)
	if err != nil {
		if pgxscan.NotFound(err) {
			return domain.Referral{}, fmt.Errorf("approved referral for card %d: %w", cardID, domain.ErrNotFound)
		}
		return domain.Referral{}, fmt.Errorf("random referral: %w", err)
	}
	return out.toDomain(), nil
}

// Delete removes the submitter's own referral. Stats rows cascade.
func (r *Repo) Delete(ctx context.Context, id int64, submitterID string) error {
	q := postgres.QuerierFromCtx(ctx, r.q)

	tag, err := q.Exec(ctx,
		`DELETE FROM referrals WHERE referral_id = $1 AND submitter_id = $2`, id, submitterID)
	if err != nil {
		return postgres.MapError(err, "referral", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("referral %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AdminDelete removes any referral and returns the removed row.
func (r *Repo) AdminDelete(ctx context.Context, id int64) (domain.Referral, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	ref := domain.Referral{ID: id}
	err := q.QueryRow(ctx,
		`DELETE FROM referrals WHERE referral_id = $1 RETURNING card_id, submitter_id, referral_link`, id,
	).Scan(&ref.CardID, &ref.SubmitterID, &ref.Link)
	if err != nil {
		return domain.Referral{}, postgres.MapError(err, "referral", id)
	}
	return ref, nil
}

// SetApproved sets the approval flag.
func (r *Repo) SetApproved(ctx context.Context, id int64, approved bool) error {
	q := postgres.QuerierFromCtx(ctx, r.q)

	tag, err := q.Exec(ctx,
		`UPDATE referrals SET admin_approved = $2 WHERE referral_id = $1`, id, approved)
	if err != nil {
		return postgres.MapError(err, "referral", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("referral %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// UpdateLink replaces the link and returns the previous value.
// A link already used on the same card surfaces as ErrConflict.
func (r *Repo) UpdateLink(ctx context.Context, id int64, link string) (string, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	var previous string
	err := q.QueryRow(ctx, `
		UPDATE referrals f
		SET referral_link = $2
		FROM referrals prev
		WHERE f.referral_id = $1 AND prev.referral_id = f.referral_id
		RETURNING prev.referral_link`,
		id, link,
	).Scan(&previous)
	if err != nil {
		err = postgres.MapError(err, "referral", id)
		if errors.Is(err, domain.ErrAlreadyExists) {
			return "", fmt.Errorf("referral %d link: %w", id, domain.ErrConflict)
		}
		return "", err
	}
	return previous, nil
}
