// Package audit persists the admin audit log.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/creditodds/creditodds-api/internal/adapter/postgres"
	"github.com/creditodds/creditodds-api/internal/domain"
)

// Repo provides audit_log persistence operations.
type Repo struct {
	q postgres.Querier
}

// New creates a new audit repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Create appends an entry and returns it with id and timestamp set.
func (r *Repo) Create(ctx context.Context, e domain.AuditEntry) (domain.AuditEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	var details []byte
	if len(e.Details) > 0 {
		var err error
		details, err = json.Marshal(e.Details)
		if err != nil {
			return domain.AuditEntry{}, fmt.Errorf("marshal audit details: %w", err)
		}
	}

	err := q.QueryRow(ctx, `
		INSERT INTO audit_log (admin_id, action, entity_type, entity_id, details)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING audit_id, created_at`,
		e.AdminID, string(e.Action), string(e.EntityType), e.EntityID, details,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return domain.AuditEntry{}, fmt.Errorf("insert audit entry: %w", err)
	}
	return e, nil
}

// List returns entries newest first.
func (r *Repo) List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error) {
	limit, offset := postgres.Page(f.Limit, f.Offset, 100, 500)
	q := postgres.QuerierFromCtx(ctx, r.q)

	rows, err := q.Query(ctx, `
		SELECT audit_id, admin_id, action, entity_type, entity_id, details, created_at
		FROM audit_log
		ORDER BY created_at DESC, audit_id DESC
		LIMIT $1 OFFSET $2`, int64(limit), int64(offset))
	if err != nil {
		return nil, fmt.Errorf("list audit log: %w", err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AuditEntry, error) {
		var (
			e                  domain.AuditEntry
			action, entityType string
			details            []byte
		)
		if err := row.Scan(&e.ID, &e.AdminID, &action, &entityType, &e.EntityID, &details, &e.CreatedAt); err != nil {
			return e, err
		}
		e.Action = domain.AuditAction(action)
		e.EntityType = domain.EntityType(entityType)
		if len(details) > 0 {
			if err := json.Unmarshal(details, &e.Details); err != nil {
				return e, fmt.Errorf("decode details of audit entry %d: %w", e.ID, err)
			}
		}
		return e, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan audit log: %w", err)
	}
	return entries, nil
}
