package domain

import (
	"strconv"
	"time"
)

// NoDescription is shown in place of a missing repository description.
const NoDescription = "No description"

// Owner identifies the account that owns a repository.
type Owner struct {
	// Login is the account name.
	Login string `json:"login"`

	// AvatarURL references the account's avatar image.
	AvatarURL string `json:"avatar_url"`
}

// Repository is a single search result describing one repository.
// Values are created by the search client and never mutated afterwards.
type Repository struct {
	// ID is the upstream identifier. Unique and stable.
	ID int64 `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// FullName is "owner/name".
	FullName string `json:"full_name,omitempty"`

	// Description is nil when the repository has none.
	Description *string `json:"description"`

	// Owner is the owning account.
	Owner Owner `json:"owner"`

	// Stars is the popularity count.
	Stars int `json:"stargazers_count"`

	// HTMLURL is the canonical web URL.
	HTMLURL string `json:"html_url"`

	// Language is the primary language, empty if unknown.
	Language string `json:"language,omitempty"`

	// CreatedAt is when the repository was created, zero if unknown.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// DescriptionOrDefault returns the description or NoDescription when absent.
func (r *Repository) DescriptionOrDefault() string {
	if r.Description == nil || *r.Description == "" {
		return NoDescription
	}
	return *r.Description
}

// StarsLabel returns the star count formatted for display.
func (r *Repository) StarsLabel() string {
	return FormatStars(r.Stars)
}

// FormatStars renders a popularity count for display.
// Values of 1000 and above are shown in thousands with one decimal
// ("1.5k", "1.0k"); smaller values are shown as plain integers.
// Halves round up, so 1250 is "1.3k".
func FormatStars(count int) string {
	if count < 1000 {
		return strconv.Itoa(count)
	}
	tenths := (count + 50) / 100
	return strconv.Itoa(tenths/10) + "." + strconv.Itoa(tenths%10) + "k"
}
