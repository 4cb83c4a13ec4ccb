package referral

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/creditodds/creditodds-api/internal/domain"
	"github.com/creditodds/creditodds-api/internal/validation"
	"github.com/creditodds/creditodds-api/pkg/ctxutil"
)

type linkUpdate struct {
	ReferralLink string `json:"referral_link" validate:"required,min=3,max=250"`
}

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

// AdminList returns referrals for moderation, optionally by status.
func (s *Service) AdminList(ctx context.Context, f domain.ReferralFilter) ([]domain.Referral, error) {
	if _, err := adminID(ctx); err != nil {
		return nil, err
	}
	if f.Status != nil && !f.Status.IsValid() {
		return nil, domain.NewValidationError("status", "must be one of pending, approved")
	}
	return s.referrals.List(ctx, f)
}

// Approve sets the approval flag. Unapproving is allowed.
func (s *Service) Approve(ctx context.Context, id int64, approved bool) error {
	admin, err := adminID(ctx)
	if err != nil {
		return err
	}
	if err := s.referrals.SetApproved(ctx, id, approved); err != nil {
		return fmt.Errorf("approve referral: %w", err)
	}

	s.audit.Emit(ctx, domain.AuditEntry{
		AdminID:    admin,
		Action:     domain.AuditActionReferralApprove,
		EntityType: domain.EntityTypeReferral,
		EntityID:   id,
		Details:    map[string]any{"approved": approved},
	})
	s.log.InfoContext(ctx, "referral approval set",
		slog.String("admin_id", admin),
		slog.Int64("referral_id", id),
		slog.Bool("approved", approved),
	)
	return nil
}

// UpdateLink replaces a referral's link.
func (s *Service) UpdateLink(ctx context.Context, id int64, link string) error {
	admin, err := adminID(ctx)
	if err != nil {
		return err
	}

	link = strings.TrimSpace(link)
	if err := validation.Struct(linkUpdate{ReferralLink: link}); err != nil {
		return err
	}

	previous, err := s.referrals.UpdateLink(ctx, id, link)
	if err != nil {
		return fmt.Errorf("update referral link: %w", err)
	}

	s.audit.Emit(ctx, domain.AuditEntry{
		AdminID:    admin,
		Action:     domain.AuditActionReferralEdit,
		EntityType: domain.EntityTypeReferral,
		EntityID:   id,
		Details:    map[string]any{"from": previous, "to": link},
	})
	s.log.InfoContext(ctx, "referral link edited", slog.String("admin_id", admin), slog.Int64("referral_id", id))
	return nil
}

// AdminDelete removes any referral.
func (s *Service) AdminDelete(ctx context.Context, id int64) error {
	admin, err := adminID(ctx)
	if err != nil {
		return err
	}
	removed, err := s.referrals.AdminDelete(ctx, id)
	if err != nil {
		return fmt.Errorf("admin delete referral: %w", err)
	}

	s.audit.Emit(ctx, domain.AuditEntry{
		AdminID:    admin,
		Action:     domain.AuditActionReferralDelete,
		EntityType: domain.EntityTypeReferral,
		EntityID:   id,
		Details: map[string]any{
			"card_id":       removed.CardID,
			"submitter_id":  removed.SubmitterID,
			"referral_link": removed.Link,
		},
	})
	s.log.InfoContext(ctx, "referral removed", slog.String("admin_id", admin), slog.Int64("referral_id", id))
	return nil
}
