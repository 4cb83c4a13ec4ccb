package wallet

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creditodds/creditodds-api/internal/domain"
	"github.com/creditodds/creditodds-api/pkg/ctxutil"
)

func ptr[T any](v T) *T { return &v }

func newService() (*Service, *walletRepoMock) {
	repo := &walletRepoMock{
		AddFunc: func(ctx context.Context, w domain.WalletCard) (domain.WalletCard, error) {
			w.ID = 9
			return w, nil
		},
	}
	cards := &cardRepoMock{
		GetByIDFunc: func(ctx context.Context, id int64) (domain.Card, error) {
			if id != 5 {
				return domain.Card{}, fmt.Errorf("card %d: %w", id, domain.ErrNotFound)
			}
			return domain.Card{ID: 5, Name: "Discover it"}, nil
		},
	}
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo, cards), repo
}

func TestAdd(t *testing.T) {
	t.Parallel()

	svc, repo := newService()
	ctx := ctxutil.WithUserID(context.Background(), "uid-a")

	got, err := svc.Add(ctx, domain.WalletSubmission{CardID: 5, AcquiredMonth: ptr(3), AcquiredYear: ptr(2021)})

	require.NoError(t, err)
	assert.Equal(t, int64(9), got.ID)
	assert.Equal(t, "Discover it", got.CardName)
	assert.Equal(t, "uid-a", repo.AddCalls()[0].W.UserID)
}

func TestAdd_Rejections(t *testing.T) {
	t.Parallel()

	nextYear := time.Now().Year() + 1
	tests := []struct {
		name string
		ctx  context.Context
		sub  domain.WalletSubmission
		want error
	}{
		{"anonymous", context.Background(), domain.WalletSubmission{CardID: 5}, domain.ErrUnauthorized},
		{"month 13", ctxutil.WithUserID(context.Background(), "u"), domain.WalletSubmission{CardID: 5, AcquiredMonth: ptr(13)}, domain.ErrValidation},
		{"future year", ctxutil.WithUserID(context.Background(), "u"), domain.WalletSubmission{CardID: 5, AcquiredYear: ptr(nextYear)}, domain.ErrValidation},
		{"year before 1950", ctxutil.WithUserID(context.Background(), "u"), domain.WalletSubmission{CardID: 5, AcquiredYear: ptr(1949)}, domain.ErrValidation},
		{"unknown card", ctxutil.WithUserID(context.Background(), "u"), domain.WalletSubmission{CardID: 6}, domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, repo := newService()
			_, err := svc.Add(tt.ctx, tt.sub)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, repo.AddCalls())
		})
	}
}

func TestAdd_Duplicate(t *testing.T) {
	t.Parallel()

	svc, repo := newService()
	repo.AddFunc = func(ctx context.Context, w domain.WalletCard) (domain.WalletCard, error) {
		return domain.WalletCard{}, fmt.Errorf("wallet card 5: %w", domain.ErrAlreadyExists)
	}

	_, err := svc.Add(ctxutil.WithUserID(context.Background(), "u"), domain.WalletSubmission{CardID: 5})
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
}

func TestDelete_NotOwner(t *testing.T) {
	t.Parallel()

	svc, repo := newService()
	repo.DeleteFunc = func(ctx context.Context, id int64, userID string) error {
		return fmt.Errorf("wallet card %d: %w", id, domain.ErrNotFound)
	}

	err := svc.Delete(ctxutil.WithUserID(context.Background(), "u"), 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
