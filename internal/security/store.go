// Package security holds the in-memory credential store for a single account
// and its password rotation rules.
package security

import "sync"

// ReuseWindow is how many of the most recent passwords, the current one
// included, a rotation may not reuse.
const ReuseWindow = 3

// Store keeps one account's login, current password and password history.
// Passwords are kept as plain values. A Store is safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	login    string
	password string
	history  history
}

// New creates a Store. The password policy is not applied to the initial
// password.
func New(login, password string) *Store {
	return &Store{
		login:    login,
		password: password,
		history:  newHistory(password),
	}
}

func (s *Store) Login() string {
	return s.login
}

func (s *Store) Password() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.password
}

// History returns a copy of the remembered passwords, most recent first.
func (s *Store) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.list()
}

// HistoryLen reports how many passwords are remembered.
func (s *Store) HistoryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.len()
}

// CheckCredentials reports whether login and password both match exactly.
// History is not consulted.
func (s *Store) CheckCredentials(login, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.login == login && s.password == password
}

// UpdatePassword rotates the password and reports whether it changed.
func (s *Store) UpdatePassword(login, oldPassword, newPassword string) bool {
	return s.Rotate(login, oldPassword, newPassword) == nil
}

// Rotate replaces the current password with newPassword. It fails with
// ErrIdentityMismatch, ErrWeakPassword or ErrPasswordReused and leaves the
// Store untouched on any failure.
func (s *Store) Rotate(login, oldPassword, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if login != s.login || oldPassword != s.password {
		return ErrIdentityMismatch
	}
	if err := CheckPolicy(newPassword); err != nil {
		return err
	}
	if s.history.recent(newPassword, ReuseWindow) {
		return ErrPasswordReused
	}

	s.password = newPassword
	s.history.push(newPassword)
	return nil
}
