package domain

import "time"

// AuditAction names the operation an audit event describes.
type AuditAction string

const (
	AuditActionRegister       AuditAction = "register"
	AuditActionCheck          AuditAction = "check_credentials"
	AuditActionRotatePassword AuditAction = "rotate_password"
)

// Outcome is the result recorded for an audited operation.
type Outcome string

const (
	OutcomeAccepted         Outcome = "accepted"
	OutcomeRejected         Outcome = "rejected"
	OutcomeIdentityMismatch Outcome = "identity_mismatch"
	OutcomeWeakPassword     Outcome = "weak_password"
	OutcomePasswordReused   Outcome = "password_reused"
	OutcomeUnknownAccount   Outcome = "unknown_account"
)

// AuditEvent records one credential operation. Passwords never appear here.
type AuditEvent struct {
	ID      string
	Login   string
	Action  AuditAction
	Outcome Outcome
	At      time.Time
}
