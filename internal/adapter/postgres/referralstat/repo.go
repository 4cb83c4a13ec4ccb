// Package referralstat appends referral engagement events and counts them.
package referralstat

import (
	"context"
	"fmt"

	"github.com/creditodds/creditodds-api/internal/adapter/postgres"
	"github.com/creditodds/creditodds-api/internal/domain"
)

// Repo provides referral_stats persistence operations.
type Repo struct {
	q postgres.Querier
}

// New creates a new referral stats repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Insert appends one engagement event.
func (r *Repo) Insert(ctx context.Context, referralID int64, event domain.ReferralEvent) error {
	q := postgres.QuerierFromCtx(ctx, r.q)

	_, err := q.Exec(ctx,
		`INSERT INTO referral_stats (referral_id, event_type) VALUES ($1, $2)`,
		referralID, string(event))
	if err != nil {
		return postgres.MapError(err, "referral", referralID)
	}
	return nil
}

// CountsByReferralIDs aggregates events per referral. Every requested id is
// present in the result, with zero counts when it has no events.
func (r *Repo) CountsByReferralIDs(ctx context.Context, ids []int64) (map[int64]domain.ReferralStats, error) {
	out := make(map[int64]domain.ReferralStats, len(ids))
	for _, id := range ids {
		out[id] = domain.ReferralStats{ReferralID: id}
	}
	if len(ids) == 0 {
		return out, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.q)
	rows, err := q.Query(ctx, `
		SELECT referral_id,
		       COUNT(*) FILTER (WHERE event_type = 'impression') AS impressions,
		       COUNT(*) FILTER (WHERE event_type = 'click')      AS clicks
		FROM referral_stats
		WHERE referral_id = ANY($1)
		GROUP BY referral_id`, ids)
	if err != nil {
		return nil, fmt.Errorf("count referral stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.ReferralStats
		if err := rows.Scan(&s.ReferralID, &s.Impressions, &s.Clicks); err != nil {
			return nil, fmt.Errorf("scan referral stats: %w", err)
		}
		out[s.ReferralID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate referral stats: %w", err)
	}
	return out, nil
}
