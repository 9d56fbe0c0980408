package repository

import (
	"context"

	"credential-keeper/internal/domain"
)

// AuditRepository stores the trail of credential operations.
type AuditRepository interface {
	Init(ctx context.Context) error
	Record(ctx context.Context, event *domain.AuditEvent) error
	ListByLogin(ctx context.Context, login string, limit int) ([]domain.AuditEvent, error)
}
