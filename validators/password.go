package validators

import (
	"errors"
	"strings"
)

var (
	ErrPasswordEmpty       = errors.New("Password is required")
	ErrPasswordTooShort    = errors.New("Password must be at least 8 characters")
	ErrPasswordNoUppercase = errors.New("Password must contain at least one uppercase letter")
	ErrPasswordNoNumber    = errors.New("Password must contain at least one number")
)

func PasswordValidator(p string) error {
	if p == "" {
		return ErrPasswordEmpty
	}

	if len(p) < 8 {
		return ErrPasswordTooShort
	}

	if !strings.ContainsFunc(p, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		return ErrPasswordNoUppercase
	}

	if !strings.ContainsFunc(p, func(r rune) bool { return r >= '0' && r <= '9' }) {
		return ErrPasswordNoNumber
	}

	return nil
}
