package driven

import (
	"context"

	"github.com/custodia-labs/ghtrend/internal/core/domain"
)

// RepositorySearcher queries the remote repository search API.
// Backed by the GitHub connector.
type RepositorySearcher interface {
	// Search fetches one page of repositories matching the query.
	// An empty slice means the page held no results.
	// Errors wrap domain.ErrNetwork or domain.ErrParse.
	Search(ctx context.Context, query domain.SearchQuery) ([]domain.Repository, error)
}
