package domain

import "time"

// AuditAction names an administrative mutation.
type AuditAction string

const (
	AuditActionRecordDelete    AuditAction = "record_delete"
	AuditActionRecordReview    AuditAction = "record_review"
	AuditActionReferralApprove AuditAction = "referral_approve"
	AuditActionReferralEdit    AuditAction = "referral_edit"
	AuditActionReferralDelete  AuditAction = "referral_delete"
)

func (a AuditAction) String() string { return string(a) }

// EntityType identifies the kind of entity an audit entry refers to.
type EntityType string

const (
	EntityTypeRecord   EntityType = "record"
	EntityTypeReferral EntityType = "referral"
)

func (e EntityType) String() string { return string(e) }

// AuditEntry is an immutable log line for one administrative action.
type AuditEntry struct {
	ID         int64
	AdminID    string
	Action     AuditAction
	EntityType EntityType
	EntityID   int64
	Details    map[string]any
	CreatedAt  time.Time
}

// AuditFilter pages through the audit log.
type AuditFilter struct {
	Limit  int
	Offset int
}
