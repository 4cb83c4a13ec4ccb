package record

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/creditodds/creditodds-api/internal/domain"
	"github.com/creditodds/creditodds-api/internal/validation"
	"github.com/creditodds/creditodds-api/pkg/ctxutil"
)

// Submit validates and stores the caller's record. Nothing is written when
// validation fails. The stored row keeps only the outcome field that matches
// the result.
func (s *Service) Submit(ctx context.Context, sub domain.RecordSubmission) (domain.Record, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Record{}, domain.ErrUnauthorized
	}

	if err := validation.ValidateRecord(sub); err != nil {
		return domain.Record{}, err
	}
	applied, err := validation.ParseDate(sub.DateApplied)
	if err != nil {
		return domain.Record{}, domain.NewValidationError("date_applied", "must be a date in YYYY-MM-DD format")
	}

	card, err := s.cards.GetByID(ctx, sub.CardID)
	if err != nil {
		return domain.Record{}, fmt.Errorf("submit record: %w", err)
	}

	rec := domain.Record{
		CardID:              card.ID,
		CardName:            card.Name,
		SubmitterID:         userID,
		CreditScore:         *sub.CreditScore,
		Result:              *sub.Result,
		ListedIncome:        *sub.ListedIncome,
		LengthCredit:        *sub.LengthCredit,
		StartingCreditLimit: sub.StartingCreditLimit,
		ReasonDenied:        sub.ReasonDenied,
		DateApplied:         applied,
		BankCustomer:        *sub.BankCustomer,
		Inquiries3:          sub.Inquiries3,
		Inquiries12:         sub.Inquiries12,
		Inquiries24:         sub.Inquiries24,
		SubmitterIP:         ctxutil.ClientIPFromCtx(ctx),
	}
	if sub.CreditScoreSource != nil {
		rec.CreditScoreSource = domain.CreditScoreSource(*sub.CreditScoreSource)
	}
	rec.NormalizeOutcome()

	created, err := s.records.Create(ctx, rec)
	if err != nil {
		return domain.Record{}, fmt.Errorf("submit record: %w", err)
	}
	created.CardName = card.Name

	s.log.InfoContext(ctx, "record submitted",
		slog.String("user_id", userID),
		slog.Int64("record_id", created.ID),
		slog.Int64("card_id", created.CardID),
		slog.Bool("result", created.Result),
	)
	return created, nil
}

// ListMine returns the caller's active records.
func (s *Service) ListMine(ctx context.Context) ([]domain.Record, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.records.ListBySubmitter(ctx, userID)
}

// Delete soft-deletes one of the caller's records.
func (s *Service) Delete(ctx context.Context, id int64) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := s.records.SoftDelete(ctx, id, userID); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}

	s.log.InfoContext(ctx, "record deleted", slog.String("user_id", userID), slog.Int64("record_id", id))
	return nil
}
