package session

import (
	"errors"
	"regexp"
	"strings"

	"github.com/utender/utender-cli/internal/api"
)

// Local validation failures. They are detected before any network call is
// made and are matched with errors.Is.
var (
	ErrMissingFields    = errors.New("please fill in all required fields")
	ErrInvalidEmail     = errors.New("please enter a valid email address")
	ErrShortPassword    = errors.New("password must be at least 6 characters")
	ErrShortUsername    = errors.New("username must be at least 3 characters")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

const (
	minPasswordLen = 6
	minUsernameLen = 3
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidationError reports whether err is one of the local validation
// failures above (as opposed to a classified network error).
func IsValidationError(err error) bool {
	for _, v := range []error{ErrMissingFields, ErrInvalidEmail, ErrShortPassword, ErrShortUsername, ErrPasswordMismatch} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

func validateLogin(email, password string) error {
	if email == "" || password == "" {
		return ErrMissingFields
	}
	if !emailRe.MatchString(email) {
		return ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return ErrShortPassword
	}
	return nil
}

func validateRegister(req api.RegisterRequest) error {
	if req.Username == "" || req.Email == "" || req.Password == "" || req.ConfirmPassword == "" {
		return ErrMissingFields
	}
	if len(req.Username) < minUsernameLen {
		return ErrShortUsername
	}
	if !emailRe.MatchString(req.Email) {
		return ErrInvalidEmail
	}
	if len(req.Password) < minPasswordLen {
		return ErrShortPassword
	}
	if req.Password != req.ConfirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}

// normalizeEmail trims surrounding whitespace; emails are matched by the
// backend case-insensitively so no further normalization happens here.
func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}
