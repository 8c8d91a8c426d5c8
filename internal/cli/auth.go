package cli

import (
	"context"
	"fmt"

	"github.com/utender/utender-cli/internal/api"
	"github.com/utender/utender-cli/internal/common"
	"github.com/utender/utender-cli/internal/guard"
)

// getSimpleText and getPassword are indirections for testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. Validation failures and
// classified network failures both surface through the session's error
// message; the password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	if guard.Decide(false, a.session.Snapshot(), a.session.HasStoredToken(ctx)) == guard.RedirectBack {
		fmt.Fprintln(a.out, "Already logged in.")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		fmt.Fprintln(a.out, a.session.Snapshot().Err)
		return err
	}
	fmt.Fprintln(a.out, "Welcome,", a.session.Snapshot().User.DisplayName())
	return nil
}

// Register walks the registration form. A created account is not logged
// in automatically; the user is routed to the login command.
func (a *App) Register(ctx context.Context) error {
	var req api.RegisterRequest
	var err error

	if req.Username, err = getSimpleText(a.reader, "Choose a username", a.out); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)
	req.Password = string(password)
	req.ConfirmPassword = string(confirm)

	if req.CompanyName, err = getSimpleText(a.reader, "Company name (optional)", a.out); err != nil {
		return err
	}
	if req.Phone, err = getSimpleText(a.reader, "Phone (optional)", a.out); err != nil {
		return err
	}

	if err := a.session.Register(ctx, req); err != nil {
		fmt.Fprintln(a.out, a.session.Snapshot().Err)
		return err
	}
	fmt.Fprintln(a.out, "Account created. Type 'login' to sign in.")
	return nil
}

// Logout clears the session. The backend call is best effort; the local
// session is gone either way.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// ForgotPassword requests a reset email.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter your account email", a.out)
	if err != nil {
		return err
	}
	if err := a.session.ForgotPassword(ctx, email); err != nil {
		fmt.Fprintln(a.out, "Could not request a reset:", err)
		return err
	}
	fmt.Fprintln(a.out, "If the address exists, a reset email is on its way.")
	return nil
}

// requireAuth gates a protected command on the route-guard decision.
func (a *App) requireAuth(ctx context.Context) bool {
	switch guard.Decide(true, a.session.Snapshot(), a.session.HasStoredToken(ctx)) {
	case guard.Render:
		return true
	case guard.ShowLoading:
		fmt.Fprintln(a.out, "Session is still loading, try again in a moment.")
		return false
	default:
		fmt.Fprintln(a.out, "Please log in first (type 'login').")
		return false
	}
}
