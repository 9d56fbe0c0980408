package security

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrIdentityMismatch means the login or the current password did not match.
	ErrIdentityMismatch = errors.New("login or current password does not match")
	// ErrWeakPassword means the new password fails the composition policy.
	ErrWeakPassword = errors.New("password does not satisfy policy")
	// ErrPasswordReused means the new password is one of the most recent ones.
	ErrPasswordReused = errors.New("password was used recently")
)

// CheckPolicy verifies that pwd has at least one lowercase letter, one
// uppercase letter and one decimal digit.
func CheckPolicy(pwd string) error {
	var lower, upper, digit bool
	for _, r := range pwd {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	var missing []string
	if !lower {
		missing = append(missing, "lowercase letter")
	}
	if !upper {
		missing = append(missing, "uppercase letter")
	}
	if !digit {
		missing = append(missing, "digit")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrWeakPassword, strings.Join(missing, ", "))
	}
	return nil
}
