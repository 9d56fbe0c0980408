package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"credential-keeper/internal/domain"
	"credential-keeper/internal/repository"
)

const createAuditTable = `
CREATE TABLE IF NOT EXISTS audit_events (
	id TEXT PRIMARY KEY,
	login TEXT NOT NULL,
	action TEXT NOT NULL,
	outcome TEXT NOT NULL,
	at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_audit_events_login_at ON audit_events (login, at);
`

const defaultAuditLimit = 50

type AuditRepository struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) repository.AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createAuditTable); err != nil {
		return fmt.Errorf("create audit table: %w", err)
	}
	return nil
}

// Record stores event, assigning an ID and timestamp when they are unset.
func (r *AuditRepository) Record(ctx context.Context, event *domain.AuditEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO audit_events (id, login, action, outcome, at)
VALUES (?, ?, ?, ?, ?)`,
		event.ID,
		event.Login,
		string(event.Action),
		string(event.Outcome),
		event.At,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// ListByLogin returns the newest events for login first.
func (r *AuditRepository) ListByLogin(ctx context.Context, login string, limit int) ([]domain.AuditEvent, error) {
	if limit <= 0 {
		limit = defaultAuditLimit
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT id, login, action, outcome, at
FROM audit_events
WHERE login = ?
ORDER BY at DESC, rowid DESC
LIMIT ?`,
		login,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()

	var events []domain.AuditEvent
	for rows.Next() {
		var (
			event   domain.AuditEvent
			action  string
			outcome string
		)
		if err := rows.Scan(&event.ID, &event.Login, &action, &outcome, &event.At); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		event.Action = domain.AuditAction(action)
		event.Outcome = domain.Outcome(outcome)
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}
