// Package guard decides whether a navigation target may render, given the
// current session state. The decision is pure; acting on it (redirecting,
// rendering, waiting) is the caller's job.
package guard

import "github.com/utender/utender-cli/internal/session"

// Decision is the outcome of a guard check.
type Decision int

const (
	// Render: show the requested view.
	Render Decision = iota
	// ShowLoading: session still resolving, make no navigation decision.
	ShowLoading
	// RedirectToLogin: protected view, not authenticated, nothing persisted.
	RedirectToLogin
	// RedirectBack: auth-only view (login/register) while already
	// authenticated; return to the remembered origin or home.
	RedirectBack
)

// Decide gates a view that requires (or forbids) authentication.
//
// hasStoredToken covers the window between startup and bootstrap: a
// persisted token with no rehydrated session means "still loading", not
// "unauthenticated", so the user is not flash-redirected to login.
func Decide(requireAuth bool, s session.Session, hasStoredToken bool) Decision {
	if s.Loading || (hasStoredToken && !s.Authenticated) {
		return ShowLoading
	}
	if requireAuth && !s.Authenticated {
		return RedirectToLogin
	}
	if !requireAuth && s.Authenticated {
		return RedirectBack
	}
	return Render
}
