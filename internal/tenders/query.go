// Package tenders turns independently changing list inputs — search text,
// advanced filters, category chip, sort, page — into one deterministic,
// de-duplicated fetch against the portal API.
package tenders

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/utender/utender-cli/internal/models"
)

// Filters is the advanced-search subset of the query. Zero values mean
// "not set" and are omitted from the request entirely.
type Filters struct {
	ContractingAuthorityID int
	NoticeTypeID           int
	// FromDate/ToDate bound the publication date, epoch seconds.
	FromDate int64
	ToDate   int64
}

// IsZero reports whether no advanced filter is active.
func (f Filters) IsZero() bool {
	return f == Filters{}
}

// Query is the canonical descriptor of "what tenders to fetch". It is a
// pure function of the current UI selections and is always replaced
// wholesale, never mutated in place.
type Query struct {
	Page       int
	Limit      int
	Search     string
	CategoryID int
	Filters    Filters
	SortBy     models.SortField
	SortOrder  models.SortOrder
}

// params collects the wire parameters, optional fields absent when unset.
func (q Query) params() map[string]string {
	p := map[string]string{
		"page":  strconv.Itoa(q.Page),
		"limit": strconv.Itoa(q.Limit),
	}
	if q.Search != "" {
		p["search"] = q.Search
	}
	if q.CategoryID != 0 {
		p["category_id"] = strconv.Itoa(q.CategoryID)
	}
	if q.Filters.ContractingAuthorityID != 0 {
		p["contracting_authority_id"] = strconv.Itoa(q.Filters.ContractingAuthorityID)
	}
	if q.Filters.NoticeTypeID != 0 {
		p["notice_type_id"] = strconv.Itoa(q.Filters.NoticeTypeID)
	}
	if q.Filters.FromDate != 0 {
		p["from_date"] = strconv.FormatInt(q.Filters.FromDate, 10)
	}
	if q.Filters.ToDate != 0 {
		p["to_date"] = strconv.FormatInt(q.Filters.ToDate, 10)
	}
	if q.SortBy != "" {
		p["sortBy"] = string(q.SortBy)
		p["sortOrder"] = string(q.SortOrder)
	}
	return p
}

// Key returns the canonical cache key for the descriptor. Keys are
// serialized in alphabetical order, so two structurally equal descriptors
// produce byte-identical keys no matter how they were assembled.
func (q Query) Key() string {
	// json.Marshal sorts map keys.
	b, _ := json.Marshal(q.params())
	return string(b)
}

// Values renders the descriptor as URL query parameters for the API client.
func (q Query) Values() url.Values {
	v := url.Values{}
	for k, val := range q.params() {
		v.Set(k, val)
	}
	return v
}
