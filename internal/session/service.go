package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/utender/utender-cli/internal/api"
	"github.com/utender/utender-cli/internal/logging"
	"github.com/utender/utender-cli/internal/models"
	"github.com/utender/utender-cli/internal/storage"
)

// Service is the session coordinator. It serializes every state change
// behind one mutex and publishes each new snapshot to subscribers, so
// consumers observe "most recent update wins" ordering.
type Service struct {
	client api.Client
	store  *storage.Store
	log    logging.Logger

	mu   sync.Mutex
	sess Session
	subs []func(Session)
}

func NewService(client api.Client, store *storage.Store, log logging.Logger) *Service {
	return &Service{client: client, store: store, log: log}
}

// Snapshot returns the current session state.
func (s *Service) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess
}

// Subscribe registers fn to be called with every subsequent snapshot.
func (s *Service) Subscribe(fn func(Session)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// update applies fn to the session under the lock and notifies subscribers
// with the resulting snapshot.
func (s *Service) update(fn func(*Session)) Session {
	s.mu.Lock()
	fn(&s.sess)
	s.sess.Authenticated = s.sess.User != nil && s.sess.Token != ""
	snap := s.sess
	subs := s.subs
	s.mu.Unlock()

	for _, sub := range subs {
		sub(snap)
	}
	return snap
}

// Bootstrap rehydrates the session from persisted storage. When both the
// token and a parseable user are present the session becomes authenticated
// without any network call; otherwise the remnants are cleared and the
// session stays logged out.
func (s *Service) Bootstrap(ctx context.Context) error {
	s.update(func(sess *Session) { sess.Loading = true })

	token, haveToken, err := s.store.Get(ctx, storage.KeyToken)
	if err != nil {
		return s.bootstrapFailed(ctx, fmt.Errorf("read token: %w", err))
	}
	userJSON, haveUser, err := s.store.Get(ctx, storage.KeyUser)
	if err != nil {
		return s.bootstrapFailed(ctx, fmt.Errorf("read user: %w", err))
	}

	if !haveToken || !haveUser || token == "" {
		return s.bootstrapFailed(ctx, nil)
	}

	var user models.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		s.log.Warn(ctx, "discarding corrupt persisted user", "err", err)
		return s.bootstrapFailed(ctx, nil)
	}

	s.client.SetToken(token)
	s.update(func(sess *Session) {
		sess.User = &user
		sess.Token = token
		sess.Loading = false
		sess.Err = ""
	})
	return nil
}

// bootstrapFailed clears any persisted remnants and leaves the session
// unauthenticated. A storage read error is returned but still results in a
// logged-out session.
func (s *Service) bootstrapFailed(ctx context.Context, err error) error {
	if clearErr := s.store.Clear(ctx); clearErr != nil {
		s.log.Warn(ctx, "could not clear persisted session", "err", clearErr)
	}
	s.client.ClearToken()
	s.update(func(sess *Session) {
		sess.User = nil
		sess.Token = ""
		sess.Loading = false
	})
	return err
}

// Login validates credentials locally, then exchanges them with the
// backend. Success persists token and user; any failure — validation or
// network — leaves the session fully cleared, never partially retained.
func (s *Service) Login(ctx context.Context, email, password string) error {
	email = normalizeEmail(email)
	if err := validateLogin(email, password); err != nil {
		s.update(func(sess *Session) { sess.Err = userMessage(err) })
		return err
	}

	s.update(func(sess *Session) {
		sess.Loading = true
		sess.Err = ""
	})

	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.clearLocal(ctx, userMessage(err))
		return err
	}
	if resp.User == nil || resp.Token == "" {
		s.clearLocal(ctx, msgGeneric)
		return fmt.Errorf("login response missing user or token")
	}

	userJSON, err := json.Marshal(resp.User)
	if err != nil {
		s.clearLocal(ctx, msgGeneric)
		return fmt.Errorf("marshal user: %w", err)
	}
	if err := s.store.SaveCredentials(ctx, resp.Token, string(userJSON)); err != nil {
		s.log.Warn(ctx, "could not persist session", "err", err)
	}

	s.client.SetToken(resp.Token)
	s.update(func(sess *Session) {
		sess.User = resp.User
		sess.Token = resp.Token
		sess.Loading = false
		sess.Err = ""
	})
	s.log.Info(ctx, "logged in", "user", resp.User.Email)
	return nil
}

// Register validates the registration form and creates the account. It
// deliberately does not authenticate the session; the caller routes the
// user to login afterwards.
func (s *Service) Register(ctx context.Context, req api.RegisterRequest) error {
	req.Email = normalizeEmail(req.Email)
	if err := validateRegister(req); err != nil {
		s.update(func(sess *Session) { sess.Err = userMessage(err) })
		return err
	}

	s.update(func(sess *Session) { sess.Err = "" })
	if _, err := s.client.Register(ctx, req); err != nil {
		s.update(func(sess *Session) { sess.Err = userMessage(err) })
		return err
	}
	return nil
}

// Logout notifies the backend on a best-effort basis and unconditionally
// clears the local session. A failed logout call must never trap the user
// in an authenticated-looking state.
func (s *Service) Logout(ctx context.Context) {
	if err := s.client.Logout(ctx); err != nil {
		s.log.Warn(ctx, "logout request failed, clearing local session anyway", "err", err)
	}
	s.clearLocal(ctx, "")
}

// clearLocal wipes the in-memory session and persisted storage and records
// errMsg (possibly empty) as the visible error.
func (s *Service) clearLocal(ctx context.Context, errMsg string) {
	if err := s.store.Clear(ctx); err != nil {
		s.log.Warn(ctx, "could not clear persisted session", "err", err)
	}
	s.client.ClearToken()
	s.update(func(sess *Session) {
		sess.User = nil
		sess.Token = ""
		sess.Loading = false
		sess.Err = errMsg
	})
}

// ClearError drops the visible error message, e.g. when the user starts
// editing the form again.
func (s *Service) ClearError() {
	s.update(func(sess *Session) { sess.Err = "" })
}

// HasStoredToken reports whether a bearer token is persisted, regardless of
// whether the in-memory session has been rehydrated yet. The route guard
// uses this to avoid a flash-redirect before bootstrap completes.
func (s *Service) HasStoredToken(ctx context.Context) bool {
	token, ok, err := s.store.Get(ctx, storage.KeyToken)
	if err != nil {
		s.log.Warn(ctx, "could not read persisted token", "err", err)
		return false
	}
	return ok && token != ""
}

// Profile fetches the full member profile from the backend. The session
// user is not updated; callers decide what to do with the result.
func (s *Service) Profile(ctx context.Context) (*models.User, error) {
	sess := s.Snapshot()
	if !sess.Authenticated {
		return nil, api.ErrUnauthorized
	}
	return s.client.Profile(ctx, sess.User.ID)
}

// UpdateInfo saves the personal-information section of the profile. The
// response is not merged into the session; callers re-fetch to observe the
// change, which keeps the two independent save actions from drifting.
func (s *Service) UpdateInfo(ctx context.Context, upd api.ProfileInfoUpdate) error {
	sess := s.Snapshot()
	if !sess.Authenticated {
		return api.ErrUnauthorized
	}
	upd.UserID = sess.User.ID
	_, err := s.client.UpdateProfileInfo(ctx, upd)
	return err
}

// UpdateCategories saves the category-tag section of the profile,
// independently of UpdateInfo.
func (s *Service) UpdateCategories(ctx context.Context, upd api.ProfileCategoriesUpdate) error {
	sess := s.Snapshot()
	if !sess.Authenticated {
		return api.ErrUnauthorized
	}
	upd.UserID = sess.User.ID
	_, err := s.client.UpdateProfileCategories(ctx, upd)
	return err
}

// ForgotPassword requests a password-reset email.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if !emailRe.MatchString(email) {
		return ErrInvalidEmail
	}
	return s.client.ForgotPassword(ctx, email)
}

// ResetPassword completes a reset flow with the emailed token.
func (s *Service) ResetPassword(ctx context.Context, token, password, confirm string) error {
	if token == "" || password == "" {
		return ErrMissingFields
	}
	if len(password) < minPasswordLen {
		return ErrShortPassword
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	return s.client.ResetPassword(ctx, api.ResetPasswordRequest{
		Token:           token,
		Password:        password,
		ConfirmPassword: confirm,
	})
}
