package session

import (
	"errors"

	"github.com/utender/utender-cli/internal/api"
)

// Fixed user-facing messages for classified network failures.
const (
	msgBadCredentials = "Wrong email or password. Check your details and try again."
	msgRateLimited    = "Too many attempts. Please wait a moment and try again."
	msgServerError    = "Server error. Please try again later."
	msgUnavailable    = "Cannot reach the server. Check your connection."
	msgGeneric        = "Something went wrong. Please try again."
)

// userMessage maps an error onto the message shown to the user. Validation
// errors carry their own text; network errors collapse onto a small fixed
// set regardless of what the backend said.
func userMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case IsValidationError(err):
		return err.Error()
	case errors.Is(err, api.ErrUnauthorized):
		return msgBadCredentials
	case errors.Is(err, api.ErrRateLimited):
		return msgRateLimited
	case errors.Is(err, api.ErrServer):
		return msgServerError
	case errors.Is(err, api.ErrUnavailable):
		return msgUnavailable
	default:
		return msgGeneric
	}
}
