package driving

import (
	"context"

	"github.com/custodia-labs/ghtrend/internal/core/domain"
)

// RepositoryActionService provides actions on listed repositories.
// This is used by the TUI adapter.
type RepositoryActionService interface {
	// CopyURL copies the repository's web URL to the system clipboard.
	CopyURL(ctx context.Context, repo *domain.Repository) error

	// Open opens the repository's web URL in the default browser.
	Open(ctx context.Context, repo *domain.Repository) error
}
