package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credential-keeper/internal/domain"
)

func newTestRepo(t *testing.T) *AuditRepository {
	t.Helper()

	db, err := Open(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewAuditRepository(db).(*AuditRepository)
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func TestAuditRepository_RecordAssignsIDAndTime(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	event := &domain.AuditEvent{
		Login:   "user",
		Action:  domain.AuditActionRotatePassword,
		Outcome: domain.OutcomeAccepted,
	}
	require.NoError(t, repo.Record(ctx, event))
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.At.IsZero())

	events, err := repo.ListByLogin(ctx, "user", 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, event.ID, events[0].ID)
	assert.Equal(t, domain.AuditActionRotatePassword, events[0].Action)
	assert.Equal(t, domain.OutcomeAccepted, events[0].Outcome)
}

func TestAuditRepository_ListByLoginNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	outcomes := []domain.Outcome{
		domain.OutcomeAccepted,
		domain.OutcomeWeakPassword,
		domain.OutcomePasswordReused,
	}
	for i, outcome := range outcomes {
		require.NoError(t, repo.Record(ctx, &domain.AuditEvent{
			Login:   "user",
			Action:  domain.AuditActionRotatePassword,
			Outcome: outcome,
			At:      base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.Record(ctx, &domain.AuditEvent{
		Login:   "other",
		Action:  domain.AuditActionCheck,
		Outcome: domain.OutcomeRejected,
		At:      base,
	}))

	events, err := repo.ListByLogin(ctx, "user", 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.OutcomePasswordReused, events[0].Outcome)
	assert.Equal(t, domain.OutcomeWeakPassword, events[1].Outcome)

	events, err = repo.ListByLogin(ctx, "nobody", 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "audit.db")

	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()

	repo := NewAuditRepository(db)
	require.NoError(t, repo.Init(context.Background()))
	assert.FileExists(t, path)
}
