package driving

import (
	"context"

	"github.com/custodia-labs/ghtrend/internal/core/domain"
)

// FeedService is the pagination controller over the trending search.
// It is used by the TUI, CLI and MCP adapters.
type FeedService interface {
	// Start performs the initial page load. Only the first call fetches;
	// later calls return false without touching the feed.
	Start(ctx context.Context) (domain.FetchResult, bool)

	// FetchNextPage requests the next page and merges it into the feed.
	// It is a no-op while a fetch is in flight or once no more data is
	// available. Failures are logged and end pagination; they are never
	// returned as errors.
	FetchNextPage(ctx context.Context) domain.FetchResult

	// State returns a snapshot of the feed.
	State() domain.FeedState
}
