// Package models defines the domain types exchanged with the uTender
// portal API: members, tenders, and the reference dictionaries used by
// the list filters. All date fields are epoch seconds as sent by the API.
package models

type (
	// SortField selects the column the tender list is ordered by.
	SortField string
	// SortOrder is the direction of the ordering.
	SortOrder string
)

const (
	SortByPublicationDate SortField = "publication_date"
	SortByExpiryDate      SortField = "expiry_date"

	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Tender is a single procurement notice as returned by the portal API.
type Tender struct {
	ID                       int    `json:"id"`
	Title                    string `json:"title"`
	ProcurementNumber        string `json:"procurement_number,omitempty"`
	PublicationDate          int64  `json:"publication_date"`
	ExpiryDate               int64  `json:"expiry_date"`
	ContractTypeID           int    `json:"contract_type_id,omitempty"`
	CategoryID               int    `json:"category_id,omitempty"`
	NoticeTypeID             int    `json:"notice_type_id,omitempty"`
	RegionID                 int    `json:"region_id,omitempty"`
	ContractingAuthorityID   int    `json:"contracting_authority_id,omitempty"`
	Description              string `json:"description,omitempty"`
	Email                    string `json:"email,omitempty"`
	Status                   string `json:"status,omitempty"`

	// Names resolved server-side for display.
	CategoryName             string `json:"category_name,omitempty"`
	NoticeTypeName           string `json:"notice_type_name,omitempty"`
	ContractingAuthorityName string `json:"contracting_authority_name,omitempty"`
	RegionName               string `json:"region_name,omitempty"`
}

// Category is a tender category dictionary entry.
type Category struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ParentID int    `json:"parent_id,omitempty"`
}

// ContractingAuthority is the body that published a tender.
type ContractingAuthority struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// NoticeType classifies a tender notice (contract notice, award, ...).
type NoticeType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Pagination describes the slice of the result set a page of tenders covers.
type Pagination struct {
	Total      int `json:"total"`
	Limit      int `json:"limit"`
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
}

// MonthlyStats is the per-month tender counter shown on the landing page.
type MonthlyStats struct {
	Month string `json:"month"`
	Year  int    `json:"year"`
	Count int    `json:"count"`
}
