// Package api implements the REST client for the uTender portal backend.
// It owns request construction, bearer-token attachment and the mapping of
// HTTP failures onto the sentinel errors in errors.go. Higher layers
// (session, tenders) depend on the Client interface, never on net/http.
package api

import (
	"context"
	"net/url"

	"github.com/utender/utender-cli/internal/models"
)

// RegisterRequest carries the registration form. ConfirmPassword is
// validated client-side and never sent to the backend.
type RegisterRequest struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	Phone        string `json:"phone,omitempty"`
	CompanyName  string `json:"companyName,omitempty"`
	FiscalNumber string `json:"fiscalNumber,omitempty"`

	ConfirmPassword string `json:"-"`
}

// ProfileInfoUpdate is the personal-information subset of the profile.
// Fields are sent verbatim, including empty ones, so a member can blank
// out a previously filled field.
type ProfileInfoUpdate struct {
	UserID       int    `json:"userId"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Company      string `json:"company"`
	FiscalNumber string `json:"fiscalNumber"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
}

// ProfileCategoriesUpdate is the category-tag subset of the profile.
// Disjoint from ProfileInfoUpdate so the two saves cannot clobber each
// other's unsaved edits.
type ProfileCategoriesUpdate struct {
	UserID    int    `json:"userId"`
	Category1 string `json:"category1"`
	Category2 string `json:"category2"`
	Category3 string `json:"category3"`
	Category4 string `json:"category4"`
	Category5 string `json:"category5"`
}

// ResetPasswordRequest completes a forgotten-password flow.
type ResetPasswordRequest struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ContactRequest is the public contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Client is the portal API surface consumed by the rest of the program.
//
// All methods honor context cancellation. Methods that require
// authentication expect the bearer token to have been installed with
// SetToken; the client attaches it to every request while present.
type Client interface {
	// SetToken installs the bearer token attached to subsequent requests.
	SetToken(token string)
	// ClearToken removes the bearer token.
	ClearToken()

	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, req RegisterRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error

	Profile(ctx context.Context, userID int) (*models.User, error)
	UpdateProfileInfo(ctx context.Context, req ProfileInfoUpdate) (*models.User, error)
	UpdateProfileCategories(ctx context.Context, req ProfileCategoriesUpdate) (*models.User, error)

	// ListTenders runs the canonical tender query. The params are produced
	// by tenders.Query.Values() and passed through unchanged.
	ListTenders(ctx context.Context, params url.Values) (*models.TendersPage, error)
	Tender(ctx context.Context, id int) (*models.Tender, error)
	MonthlyStats(ctx context.Context, month, year int) (*models.MonthlyStats, error)

	Categories(ctx context.Context) ([]models.Category, error)
	ContractingAuthorities(ctx context.Context) ([]models.ContractingAuthority, error)
	NoticeTypes(ctx context.Context) ([]models.NoticeType, error)

	Contact(ctx context.Context, req ContactRequest) error
}
