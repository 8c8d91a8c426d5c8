package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable means the request never produced an HTTP response
	// (connection refused, DNS failure, timeout).
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized maps HTTP 401: bad credentials or a stale token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrRateLimited maps HTTP 429.
	ErrRateLimited = errors.New("rate limited")
	// ErrServer maps HTTP 5xx.
	ErrServer = errors.New("server error")
	// ErrRequestFailed covers any other non-2xx status.
	ErrRequestFailed = errors.New("request failed")
)

// classify maps an HTTP status onto a sentinel error, preserving the
// backend-supplied message when there is one. Callers match with errors.Is.
func classify(status int, message string) error {
	var sentinel error
	switch {
	case status == http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case status == http.StatusTooManyRequests:
		sentinel = ErrRateLimited
	case status >= 500:
		sentinel = ErrServer
	default:
		sentinel = ErrRequestFailed
	}
	if message != "" {
		return fmt.Errorf("%w: %s", sentinel, message)
	}
	return fmt.Errorf("%w: status %d", sentinel, status)
}
