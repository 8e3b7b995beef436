// Package validate holds the account validation rules in one place so
// every boundary (registration handler, admin user management, any
// future form) applies the same checks instead of re-deriving them.
package validate

import (
	"errors"
	"regexp"
	"strings"
)

const MinPasswordLength = 6

var (
	ErrInvalidEmail    = errors.New("Invalid email address!")
	ErrInvalidPhone    = errors.New("Invalid phone number!")
	ErrPasswordTooWeak = errors.New("Password must be at least 6 characters!")
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^07\d{8}$`)
)

func Email(email string) error {
	if !emailRe.MatchString(strings.TrimSpace(email)) {
		return ErrInvalidEmail
	}
	return nil
}

func Phone(phone string) error {
	if !phoneRe.MatchString(phone) {
		return ErrInvalidPhone
	}
	return nil
}

func Password(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooWeak
	}
	return nil
}
