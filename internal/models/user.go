package models

// User mirrors the member object returned by the portal API. Optional
// profile fields are empty strings when the member has not filled them in.
type User struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	Company      string `json:"company,omitempty"`
	FiscalNumber string `json:"fiscalNumber,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`

	// Up to five category tags a member subscribes to.
	Category1 string `json:"category1,omitempty"`
	Category2 string `json:"category2,omitempty"`
	Category3 string `json:"category3,omitempty"`
	Category4 string `json:"category4,omitempty"`
	Category5 string `json:"category5,omitempty"`

	Status string `json:"status,omitempty"`
	Role   string `json:"role,omitempty"`

	// Subscription package metadata.
	PackageName   string `json:"pako_name,omitempty"`
	PackageExpiry int64  `json:"valid_time,omitempty"`
}

// DisplayName picks the most specific name available for UI purposes:
// first+last name, then username, then the local part of the email.
func (u *User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	case u.Username != "":
		return u.Username
	}
	for i, r := range u.Email {
		if r == '@' {
			return u.Email[:i]
		}
	}
	return u.Email
}

// Categories returns the non-empty category tags in slot order.
func (u *User) Categories() []string {
	all := []string{u.Category1, u.Category2, u.Category3, u.Category4, u.Category5}
	out := make([]string, 0, len(all))
	for _, c := range all {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}
