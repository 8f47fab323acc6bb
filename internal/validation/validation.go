// Package validation contains input validation helpers for signup.
package validation

import (
	"errors"
	"strings"
)

// ValidateEmail performs a light structural check on an email address. Real
// deliverability is the auth provider's concern; this only rejects obvious
// garbage.
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("email is required")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errors.New("email format is invalid")
	}
	if strings.ContainsAny(email, " \t") {
		return errors.New("email must not contain whitespace")
	}
	if !strings.Contains(email[at+1:], ".") {
		return errors.New("email domain is invalid")
	}
	return nil
}

// ValidatePassword enforces the minimum password policy.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if len(password) > 72 {
		// bcrypt truncates beyond 72 bytes
		return errors.New("password must be at most 72 characters")
	}
	return nil
}
