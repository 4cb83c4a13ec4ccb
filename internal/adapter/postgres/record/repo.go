// Package record persists approval records and computes their SQL aggregates.
package record

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/creditodds/creditodds-api/internal/adapter/postgres"
	"github.com/creditodds/creditodds-api/internal/domain"
)

const recordColumns = `r.record_id, r.card_id, c.card_name, r.submitter_id, r.credit_score,
       r.credit_score_source, r.result, r.listed_income, r.length_credit,
       r.starting_credit_limit, r.reason_denied, r.date_applied, r.bank_customer,
       r.inquiries_3, r.inquiries_12, r.inquiries_24, r.submit_datetime,
       r.submitter_ip, r.admin_review, r.active`

const selectRecords = `SELECT ` + recordColumns + `
FROM records r
JOIN cards c ON c.card_id = r.card_id`

// row is the scan target for record listings.
type row struct {
	ID                  int64     `db:"record_id"`
	CardID              int64     `db:"card_id"`
	CardName            string    `db:"card_name"`
	SubmitterID         string    `db:"submitter_id"`
	CreditScore         int       `db:"credit_score"`
	CreditScoreSource   int       `db:"credit_score_source"`
	Result              bool      `db:"result"`
	ListedIncome        int       `db:"listed_income"`
	LengthCredit        int       `db:"length_credit"`
	StartingCreditLimit *int      `db:"starting_credit_limit"`
	ReasonDenied        *string   `db:"reason_denied"`
	DateApplied         time.Time `db:"date_applied"`
	BankCustomer        bool      `db:"bank_customer"`
	Inquiries3          *int      `db:"inquiries_3"`
	Inquiries12         *int      `db:"inquiries_12"`
	Inquiries24         *int      `db:"inquiries_24"`
	SubmitDatetime      time.Time `db:"submit_datetime"`
	SubmitterIP         string    `db:"submitter_ip"`
	AdminReview         bool      `db:"admin_review"`
	Active              bool      `db:"active"`
}

func (r row) toDomain() domain.Record {
	return domain.Record{
		ID:                  r.ID,
		CardID:              r.CardID,
		CardName:            r.CardName,
		SubmitterID:         r.SubmitterID,
		CreditScore:         r.CreditScore,
		CreditScoreSource:   domain.CreditScoreSource(r.CreditScoreSource),
		Result:              r.Result,
		ListedIncome:        r.ListedIncome,
		LengthCredit:        r.LengthCredit,
		StartingCreditLimit: r.StartingCreditLimit,
		ReasonDenied:        r.ReasonDenied,
		DateApplied:         r.DateApplied,
		BankCustomer:        r.BankCustomer,
		Inquiries3:          r.Inquiries3,
		Inquiries12:         r.Inquiries12,
		Inquiries24:         r.Inquiries24,
		SubmitDatetime:      r.SubmitDatetime,
		SubmitterIP:         r.SubmitterIP,
		AdminReview:         r.AdminReview,
		Active:              r.Active,
	}
}

func toDomain(rows []row) []domain.Record {
	out := make([]domain.Record, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out
}

// Repo provides record persistence operations.
type Repo struct {
	q postgres.Querier
}

// New creates a new record repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Create inserts rec and returns it with the store-assigned fields filled in.
func (r *Repo) Create(ctx context.Context, rec domain.Record) (domain.Record, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	err := q.QueryRow(ctx, `
		INSERT INTO records (card_id, submitter_id, credit_score, credit_score_source, result,
		                     listed_income, length_credit, starting_credit_limit, reason_denied,
		                     date_applied, bank_customer, inquiries_3, inquiries_12, inquiries_24,
		                     submitter_ip)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING record_id, submit_datetime, admin_review, active`,
		rec.CardID, rec.SubmitterID, rec.CreditScore, int(rec.CreditScoreSource), rec.Result,
		rec.ListedIncome, rec.LengthCredit, rec.StartingCreditLimit, rec.ReasonDenied,
		rec.DateApplied, rec.BankCustomer, rec.Inquiries3, rec.Inquiries12, rec.Inquiries24,
		rec.SubmitterIP,
	).Scan(&rec.ID, &rec.SubmitDatetime, &rec.AdminReview, &rec.Active)
	if err != nil {
		return domain.Record{}, postgres.MapError(err, "record for card", rec.CardID)
	}
	return rec, nil
}

// ListBySubmitter returns the submitter's active records, newest first.
func (r *Repo) ListBySubmitter(ctx context.Context, submitterID string) ([]domain.Record, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	var rows []row
	err := pgxscan.Select(ctx, q, &rows,
		selectRecords+` WHERE r.submitter_id = $1 AND r.active ORDER BY r.submit_datetime DESC`,
		submitterID)
	if err != nil {
		return nil, fmt.Errorf("list records by submitter: %w", err)
	}
	return toDomain(rows), nil
}

// ListCounted returns the active, admin-reviewed records of a card.
func (r *Repo) ListCounted(ctx context.Context, cardID int64) ([]domain.Record, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	var rows []row
	err := pgxscan.Select(ctx, q, &rows,
		selectRecords+` WHERE r.card_id = $1 AND r.active AND r.admin_review ORDER BY r.record_id`,
		cardID)
	if err != nil {
		return nil, fmt.Errorf("list counted records: %w", err)
	}
	return toDomain(rows), nil
}

// List returns records for the admin listing, newest first.
func (r *Repo) List(ctx context.Context, f domain.RecordFilter) ([]domain.Record, error) {
	limit, offset := postgres.Page(f.Limit, f.Offset, 50, 200)

	sb := postgres.Builder().
		Select(recordColumns).
		From("records r").
		Join("cards c ON c.card_id = r.card_id").
		Where(squirrel.Eq{"r.active": true}).
		OrderBy("r.submit_datetime DESC", "r.record_id DESC").
		Limit(limit).
		Offset(offset)
	if f.CardID != nil {
		sb = sb.Where(squirrel.Eq{"r.card_id": *f.CardID})
	}
	if f.Reviewed != nil {
		sb = sb.Where(squirrel.Eq{"r.admin_review": *f.Reviewed})
	}

	sql, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build record list: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return toDomain(rows), nil
}

// CardIDsBySubmitter returns the cards the submitter has an active record for.
func (r *Repo) CardIDsBySubmitter(ctx context.Context, submitterID string) ([]int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	rows, err := q.Query(ctx,
		`SELECT DISTINCT card_id FROM records WHERE submitter_id = $1 AND active ORDER BY card_id`,
		submitterID)
	if err != nil {
		return nil, fmt.Errorf("record card ids: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan card id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// StatsByCard aggregates every card that has counted records. Cards without
// counted records are absent from the map.
func (r *Repo) StatsByCard(ctx context.Context) (map[int64]domain.CardStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	rows, err := q.Query(ctx, `
		SELECT card_id,
		       COUNT(*) FILTER (WHERE result)                         AS approved_count,
		       COUNT(*) FILTER (WHERE NOT result)                     AS rejected_count,
		       ROUND(AVG(credit_score) FILTER (WHERE result))::int    AS avg_credit_score,
		       ROUND(AVG(listed_income) FILTER (WHERE result))::int   AS avg_income,
		       ROUND(AVG(length_credit) FILTER (WHERE result))::int   AS avg_length_credit
		FROM records
		WHERE active AND admin_review
		GROUP BY card_id`)
	if err != nil {
		return nil, fmt.Errorf("card stats: %w", err)
	}
	defer rows.Close()

	out := make(map[int64]domain.CardStats)
	for rows.Next() {
		var s domain.CardStats
		if err := rows.Scan(
			&s.CardID, &s.ApprovedCount, &s.RejectedCount,
			&s.ApprovedMedianCreditScore, &s.ApprovedMedianIncome, &s.ApprovedMedianLengthCredit,
		); err != nil {
			return nil, fmt.Errorf("scan card stats: %w", err)
		}
		s.TotalRecords = s.ApprovedCount + s.RejectedCount
		out[s.CardID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate card stats: %w", err)
	}
	return out, nil
}

// SoftDelete deactivates the submitter's active record.
// A record owned by someone else, or already inactive, is reported as not found.
func (r *Repo) SoftDelete(ctx context.Context, id int64, submitterID string) error {
	q := postgres.QuerierFromCtx(ctx, r.q)

	tag, err := q.Exec(ctx,
		`UPDATE records SET active = false WHERE record_id = $1 AND submitter_id = $2 AND active`,
		id, submitterID)
	if err != nil {
		return postgres.MapError(err, "record", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("record %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a record physically and returns the removed row's card
// and submitter.
func (r *Repo) Delete(ctx context.Context, id int64) (domain.Record, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	rec := domain.Record{ID: id}
	err := q.QueryRow(ctx,
		`DELETE FROM records WHERE record_id = $1 RETURNING card_id, submitter_id`, id,
	).Scan(&rec.CardID, &rec.SubmitterID)
	if err != nil {
		return domain.Record{}, postgres.MapError(err, "record", id)
	}
	return rec, nil
}

// SetReview sets the admin_review flag of an active record.
func (r *Repo) SetReview(ctx context.Context, id int64, reviewed bool) error {
	q := postgres.QuerierFromCtx(ctx, r.q)

	tag, err := q.Exec(ctx,
		`UPDATE records SET admin_review = $2 WHERE record_id = $1 AND active`, id, reviewed)
	if err != nil {
		return postgres.MapError(err, "record", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("record %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
