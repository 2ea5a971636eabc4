package domain

import "time"

// DateLayout is the calendar date format used by the creation filter.
const DateLayout = "2006-01-02"

// SortKey is the field results are ordered by.
type SortKey string

// Available sort keys.
const (
	// SortStars orders by popularity.
	SortStars SortKey = "stars"
)

// SortOrder is the direction results are ordered in.
type SortOrder string

// Available sort orders.
const (
	SortDescending SortOrder = "desc"
	SortAscending  SortOrder = "asc"
)

// SearchQuery holds the parameters of a single page request.
type SearchQuery struct {
	// CreatedAfter is the creation-date floor. Only the date part is used.
	CreatedAfter time.Time

	// Sort is the ordering field.
	Sort SortKey

	// Order is the ordering direction.
	Order SortOrder

	// PageSize is the number of results per page.
	PageSize int

	// Page is the 1-based page number.
	Page int
}

// DateFloor returns the creation-date floor as an ISO calendar date.
func (q SearchQuery) DateFloor() string {
	return q.CreatedAfter.Format(DateLayout)
}

// Qualifier returns the search qualifier for the creation filter,
// e.g. "created:>2024-01-31".
func (q SearchQuery) Qualifier() string {
	return "created:>" + q.DateFloor()
}
