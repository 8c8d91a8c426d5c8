// Package session owns the single source of truth for "who is logged in".
// It coordinates the portal API, the persisted local state and any UI that
// subscribes to session changes. All mutation goes through Service methods;
// consumers only ever see immutable snapshots.
package session

import "github.com/utender/utender-cli/internal/models"

// Session is a point-in-time snapshot of the authenticated identity.
//
// Invariant: Authenticated is true iff User is non-nil and Token is
// non-empty. The client never validates token expiry itself; a stale token
// is only discovered by a failing request.
type Session struct {
	User  *models.User
	Token string

	// Authenticated reports whether both user and token are present.
	Authenticated bool
	// Loading is true while a bootstrap or credential exchange is in
	// flight. Route guarding treats a loading session as undecided.
	Loading bool
	// Err is the last user-facing error message, empty when none.
	Err string
}
