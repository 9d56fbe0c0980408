package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"credential-keeper/internal/domain"
	"credential-keeper/internal/repository"
	"credential-keeper/internal/security"
)

var (
	// ErrAccountExists is returned when registering a login that is already taken.
	ErrAccountExists = errors.New("account already exists")
	// ErrAccountNotFound is returned for operations on an unknown login.
	ErrAccountNotFound = errors.New("account not found")
	// ErrLoginRequired is returned when registering with an empty login.
	ErrLoginRequired = errors.New("login is required")
)

// AccountService manages the credential stores of many accounts.
type AccountService interface {
	Register(ctx context.Context, login, password string) (*domain.Account, error)
	Get(ctx context.Context, login string) (*domain.Account, error)
	CheckCredentials(ctx context.Context, login, password string) bool
	UpdatePassword(ctx context.Context, login, oldPassword, newPassword string) error
	AuditTrail(ctx context.Context, login string, limit int) ([]domain.AuditEvent, error)
}

type account struct {
	store     *security.Store
	createdAt time.Time
	updatedAt time.Time
}

type accountService struct {
	mu       sync.RWMutex
	accounts map[string]*account
	audit    repository.AuditRepository
	logger   logrus.FieldLogger
	now      func() time.Time
}

func NewAccountService(audit repository.AuditRepository, logger logrus.FieldLogger) AccountService {
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		logger = l
	}
	return &accountService{
		accounts: make(map[string]*account),
		audit:    audit,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Register creates a store for login. The password policy only applies to
// later rotations, so any initial password is accepted.
func (s *accountService) Register(ctx context.Context, login, password string) (*domain.Account, error) {
	if strings.TrimSpace(login) == "" {
		return nil, ErrLoginRequired
	}

	s.mu.Lock()
	if _, exists := s.accounts[login]; exists {
		s.mu.Unlock()
		s.record(ctx, login, domain.AuditActionRegister, domain.OutcomeRejected)
		return nil, ErrAccountExists
	}
	now := s.now()
	acc := &account{
		store:     security.New(login, password),
		createdAt: now,
		updatedAt: now,
	}
	s.accounts[login] = acc
	view := s.view(acc)
	s.mu.Unlock()

	s.logger.WithField("login", login).Info("account registered")
	s.record(ctx, login, domain.AuditActionRegister, domain.OutcomeAccepted)
	return view, nil
}

func (s *accountService) Get(_ context.Context, login string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[login]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return s.view(acc), nil
}

func (s *accountService) CheckCredentials(ctx context.Context, login, password string) bool {
	acc := s.lookup(login)
	ok := acc != nil && acc.store.CheckCredentials(login, password)

	outcome := domain.OutcomeAccepted
	switch {
	case acc == nil:
		outcome = domain.OutcomeUnknownAccount
	case !ok:
		outcome = domain.OutcomeRejected
	}
	s.logger.WithFields(logrus.Fields{"login": login, "outcome": outcome}).Debug("credential check")
	s.record(ctx, login, domain.AuditActionCheck, outcome)
	return ok
}

// UpdatePassword rotates the password of login. The returned error wraps one
// of the security sentinels, or is ErrAccountNotFound.
func (s *accountService) UpdatePassword(ctx context.Context, login, oldPassword, newPassword string) error {
	acc := s.lookup(login)
	if acc == nil {
		s.record(ctx, login, domain.AuditActionRotatePassword, domain.OutcomeUnknownAccount)
		return ErrAccountNotFound
	}

	err := acc.store.Rotate(login, oldPassword, newPassword)
	outcome := RotationOutcome(err)
	entry := s.logger.WithFields(logrus.Fields{"login": login, "outcome": outcome})
	if err != nil {
		entry.Info("password rotation rejected")
	} else {
		s.mu.Lock()
		acc.updatedAt = s.now()
		s.mu.Unlock()
		entry.Info("password rotated")
	}
	s.record(ctx, login, domain.AuditActionRotatePassword, outcome)

	if err != nil {
		return fmt.Errorf("rotate password for %q: %w", login, err)
	}
	return nil
}

func (s *accountService) AuditTrail(ctx context.Context, login string, limit int) ([]domain.AuditEvent, error) {
	if s.lookup(login) == nil {
		return nil, ErrAccountNotFound
	}
	if s.audit == nil {
		return nil, nil
	}
	return s.audit.ListByLogin(ctx, login, limit)
}

// RotationOutcome maps a rotation error to the outcome recorded for it.
func RotationOutcome(err error) domain.Outcome {
	switch {
	case err == nil:
		return domain.OutcomeAccepted
	case errors.Is(err, ErrAccountNotFound):
		return domain.OutcomeUnknownAccount
	case errors.Is(err, security.ErrIdentityMismatch):
		return domain.OutcomeIdentityMismatch
	case errors.Is(err, security.ErrWeakPassword):
		return domain.OutcomeWeakPassword
	case errors.Is(err, security.ErrPasswordReused):
		return domain.OutcomePasswordReused
	default:
		return domain.OutcomeRejected
	}
}

func (s *accountService) lookup(login string) *account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accounts[login]
}

// view must be called with s.mu held.
func (s *accountService) view(acc *account) *domain.Account {
	return &domain.Account{
		Login:      acc.store.Login(),
		HistoryLen: acc.store.HistoryLen(),
		CreatedAt:  acc.createdAt,
		UpdatedAt:  acc.updatedAt,
	}
}

// record writes an audit event. Failures are logged and never change the
// result of the audited operation.
func (s *accountService) record(ctx context.Context, login string, action domain.AuditAction, outcome domain.Outcome) {
	if s.audit == nil {
		return
	}
	event := &domain.AuditEvent{
		Login:   login,
		Action:  action,
		Outcome: outcome,
		At:      s.now(),
	}
	if err := s.audit.Record(ctx, event); err != nil {
		s.logger.WithFields(logrus.Fields{"login": login, "action": action}).
			WithError(err).Warn("record audit event")
	}
}
