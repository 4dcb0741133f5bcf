package auth

import (
	"errors"
	"strings"
)

// Policy violation messages are part of the API contract and are returned
// verbatim in error bodies.
var (
	ErrPasswordTooShort = errors.New("Password must be longer than 8 characters")
	ErrPasswordTooLong  = errors.New("Password must be less than 72 characters")
	ErrPasswordPadded   = errors.New("Password must not start or end with empty spaces")
)

// ValidatePassword checks the structural password rules in order and returns
// the first violation. Length and padding are the only rules.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	if len(password) > 72 {
		return ErrPasswordTooLong
	}
	if strings.HasPrefix(password, " ") || strings.HasSuffix(password, " ") {
		return ErrPasswordPadded
	}
	return nil
}

// IsPolicyViolation reports whether err is one of the password policy errors.
func IsPolicyViolation(err error) bool {
	return errors.Is(err, ErrPasswordTooShort) ||
		errors.Is(err, ErrPasswordTooLong) ||
		errors.Is(err, ErrPasswordPadded)
}
