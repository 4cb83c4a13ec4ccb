//go:build integration

package referral_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creditodds/creditodds-api/internal/adapter/postgres/referral"
	"github.com/creditodds/creditodds-api/internal/adapter/postgres/testhelper"
	"github.com/creditodds/creditodds-api/internal/domain"
)

func TestRepo_DuplicateReferralScenario(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	ctx := context.Background()
	repo := referral.New(pool)

	card5 := testhelper.SeedCard(t, pool)
	card6 := testhelper.SeedCard(t, pool)
	userA := "a-" + testhelper.UniqueSuffix()
	userB := "b-" + testhelper.UniqueSuffix()

	_, err := repo.CreateGuarded(ctx, domain.Referral{CardID: card5.ID, SubmitterID: userA, Link: "ABC123"})
	require.NoError(t, err)

	_, err = repo.CreateGuarded(ctx, domain.Referral{CardID: card5.ID, SubmitterID: userB, Link: "ABC123"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = repo.CreateGuarded(ctx, domain.Referral{CardID: card5.ID, SubmitterID: userA, Link: "OTHER1"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = repo.CreateGuarded(ctx, domain.Referral{CardID: card6.ID, SubmitterID: userB, Link: "ABC123"})
	assert.NoError(t, err)

	// B's own link on card 5 is fine; a second one is not.
	_, err = repo.CreateGuarded(ctx, domain.Referral{CardID: card5.ID, SubmitterID: userB, Link: "XYZ789"})
	require.NoError(t, err)
	_, err = repo.CreateGuarded(ctx, domain.Referral{CardID: card5.ID, SubmitterID: userB, Link: "XYZ790"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRepo_ConcurrentSubmissionsInsertOnce(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	ctx := context.Background()
	repo := referral.New(pool)
	card := testhelper.SeedCard(t, pool)
	user := "u-" + testhelper.UniqueSuffix()

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = repo.CreateGuarded(ctx, domain.Referral{CardID: card.ID, SubmitterID: user, Link: "RACE-" + testhelper.UniqueSuffix()})
		}()
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrConflict)
	}
	assert.Equal(t, 1, ok)
}

func TestRepo_RandomApprovedSkipsOwn(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	ctx := context.Background()
	repo := referral.New(pool)
	card := testhelper.SeedCard(t, pool)
	owner := "o-" + testhelper.UniqueSuffix()

	testhelper.SeedReferral(t, pool, card.ID, owner, "OWN-"+testhelper.UniqueSuffix(), true)

	_, err := repo.RandomApproved(ctx, card.ID, owner)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := repo.RandomApproved(ctx, card.ID, "someone-else")
	require.NoError(t, err)
	assert.Equal(t, owner, got.SubmitterID)
	assert.Equal(t, card.Name, got.CardName)
}

func TestRepo_UpdateLinkReturnsPrevious(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	ctx := context.Background()
	repo := referral.New(pool)
	card := testhelper.SeedCard(t, pool)

	id := testhelper.SeedReferral(t, pool, card.ID, "u-"+testhelper.UniqueSuffix(), "OLD-LINK", false)

	prev, err := repo.UpdateLink(ctx, id, "NEW-LINK")
	require.NoError(t, err)
	assert.Equal(t, "OLD-LINK", prev)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "NEW-LINK", got.Link)
}
