package record

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/creditodds/creditodds-api/internal/domain"
	"github.com/creditodds/creditodds-api/pkg/ctxutil"
)

func adminID(ctx context.Context) (string, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	if !ctxutil.IsAdmin(ctx) {
		return "", domain.ErrForbidden
	}
	return id, nil
}

// AdminList returns active records for moderation.
func (s *Service) AdminList(ctx context.Context, f domain.RecordFilter) ([]domain.Record, error) {
	if _, err := adminID(ctx); err != nil {
		return nil, err
	}
	return s.records.List(ctx, f)
}

// Review sets whether a record counts in public statistics.
func (s *Service) Review(ctx context.Context, id int64, reviewed bool) error {
	admin, err := adminID(ctx)
	if err != nil {
		return err
	}
	if err := s.records.SetReview(ctx, id, reviewed); err != nil {
		return fmt.Errorf("review record: %w", err)
	}

	s.audit.Emit(ctx, domain.AuditEntry{
		AdminID:    admin,
		Action:     domain.AuditActionRecordReview,
		EntityType: domain.EntityTypeRecord,
		EntityID:   id,
		Details:    map[string]any{"admin_review": reviewed},
	})
	s.log.InfoContext(ctx, "record reviewed",
		slog.String("admin_id", admin),
		slog.Int64("record_id", id),
		slog.Bool("admin_review", reviewed),
	)
	return nil
}

// AdminDelete removes a record permanently.
func (s *Service) AdminDelete(ctx context.Context, id int64) error {
	admin, err := adminID(ctx)
	if err != nil {
		return err
	}
	removed, err := s.records.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("admin delete record: %w", err)
	}

	s.audit.Emit(ctx, domain.AuditEntry{
		AdminID:    admin,
		Action:     domain.AuditActionRecordDelete,
		EntityType: domain.EntityTypeRecord,
		EntityID:   id,
		Details: map[string]any{
			"card_id":      removed.CardID,
			"submitter_id": removed.SubmitterID,
		},
	})
	s.log.InfoContext(ctx, "record removed", slog.String("admin_id", admin), slog.Int64("record_id", id))
	return nil
}
