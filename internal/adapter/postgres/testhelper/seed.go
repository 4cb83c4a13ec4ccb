package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/creditodds/creditodds-api/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCard inserts a card with a unique slug and name.
func SeedCard(t *testing.T, pool *pgxpool.Pool) domain.Card {
	t.Helper()

	suffix := UniqueSuffix()
	card := domain.Card{
		Slug: "test-card-" + suffix,
		Name: "Test Card " + suffix,
		Bank: "Test Bank",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO cards (slug, card_name, bank) VALUES ($1, $2, $3)
		 RETURNING card_id, created_at, updated_at`,
		card.Slug, card.Name, card.Bank,
	).Scan(&card.ID, &card.CreatedAt, &card.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedCard: %v", err)
	}
	return card
}

// SeedRecord inserts an active record for cardID.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, cardID int64, submitter string, result, reviewed bool) int64 {
	t.Helper()

	var limit *int
	var reason *string
	if result {
		v := 5000
		limit = &v
	} else {
		v := "insufficient income"
		reason = &v
	}

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO records (card_id, submitter_id, credit_score, result, listed_income, length_credit,
		                      starting_credit_limit, reason_denied, date_applied, bank_customer, admin_review)
		 VALUES ($1, $2, 720, $3, 60000, 5, $4, $5, '2024-01-01', false, $6)
		 RETURNING record_id`,
		cardID, submitter, result, limit, reason, reviewed,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord: %v", err)
	}
	return id
}

// SeedReferral inserts a referral and returns its id.
func SeedReferral(t *testing.T, pool *pgxpool.Pool, cardID int64, submitter, link string, approved bool) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO referrals (card_id, submitter_id, referral_link, admin_approved)
		 VALUES ($1, $2, $3, $4) RETURNING referral_id`,
		cardID, submitter, link, approved,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedReferral: %v", err)
	}
	return id
}
