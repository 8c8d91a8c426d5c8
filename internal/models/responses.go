package models

// TendersPage is the envelope of GET /api/tenders.
type TendersPage struct {
	Success    bool       `json:"success"`
	Data       []Tender   `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	User    *User  `json:"user"`
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

// ProfileResponse is the envelope of the profile fetch/update endpoints.
type ProfileResponse struct {
	Success bool   `json:"success"`
	Data    *User  `json:"data"`
	Message string `json:"message,omitempty"`
}

// APIResponse is the generic success/message envelope used by contact,
// logout and the password-reset endpoints.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
