package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/ghtrend/internal/core/domain"
	"github.com/custodia-labs/ghtrend/internal/core/ports/driven"
	"github.com/custodia-labs/ghtrend/internal/core/ports/driving"
	"github.com/custodia-labs/ghtrend/internal/logger"
)

// Ensure FeedService implements the interface.
var _ driving.FeedService = (*FeedService)(nil)

// FeedService accumulates pages of recently created, most-starred
// repositories. Fetches are strictly sequential: the in-flight guard is
// taken before the remote call and released on every exit path.
type FeedService struct {
	searcher driven.RepositorySearcher
	settings domain.FeedSettings
	now      func() time.Time

	sessionID string

	// started is the one-shot latch for the initial load. It is separate
	// from loading so a repeated Start never fetches, even between pages.
	started sync.Once

	mu      sync.Mutex
	repos   []domain.Repository
	page    int
	hasMore bool
	loading bool
}

// NewFeedService creates a feed over the given searcher.
// Zero-valued settings fields fall back to the defaults.
func NewFeedService(searcher driven.RepositorySearcher, settings domain.FeedSettings) *FeedService {
	if settings.PageSize <= 0 {
		settings.PageSize = domain.DefaultPageSize
	}
	if settings.WindowDays <= 0 {
		settings.WindowDays = domain.DefaultWindowDays
	}

	return &FeedService{
		searcher:  searcher,
		settings:  settings,
		now:       time.Now,
		sessionID: uuid.NewString(),
		page:      1,
		hasMore:   true,
	}
}

// WithClock replaces the time source used for the creation-date floor.
func (s *FeedService) WithClock(now func() time.Time) *FeedService {
	s.now = now
	return s
}

// Start performs the initial page load exactly once per session.
func (s *FeedService) Start(ctx context.Context) (domain.FetchResult, bool) {
	first := false
	var result domain.FetchResult

	s.started.Do(func() {
		first = true
		logger.Section("Feed")
		logger.Info("Session %s: initial load", s.sessionID)
		result = s.FetchNextPage(ctx)
	})

	if !first {
		logger.Debug("Session %s: initial load already performed", s.sessionID)
	}
	return result, first
}

// FetchNextPage requests the next page and merges it into the feed.
func (s *FeedService) FetchNextPage(ctx context.Context) domain.FetchResult {
	query, ok := s.acquire()
	if !ok {
		return domain.FetchResult{Outcome: domain.FetchSkipped}
	}
	defer s.release()

	logger.Debug("Fetching page %d (%s, per_page=%d)", query.Page, query.Qualifier(), query.PageSize)

	repos, err := s.searcher.Search(ctx, query)
	if err != nil {
		return s.fail(query.Page, err)
	}
	return s.merge(query, repos)
}

// State returns a snapshot of the feed.
func (s *FeedService) State() domain.FeedState {
	s.mu.Lock()
	defer s.mu.Unlock()

	repos := make([]domain.Repository, len(s.repos))
	copy(repos, s.repos)

	return domain.FeedState{
		SessionID:    s.sessionID,
		Repositories: repos,
		Page:         s.page,
		HasMore:      s.hasMore,
		Loading:      s.loading,
	}
}

// acquire takes the in-flight guard and builds the query for the current
// cursor. It reports false when a fetch is running or the feed is exhausted.
func (s *FeedService) acquire() (domain.SearchQuery, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loading {
		logger.Debug("Fetch skipped: page %d already in flight", s.page)
		return domain.SearchQuery{}, false
	}
	if !s.hasMore {
		logger.Debug("Fetch skipped: no more results")
		return domain.SearchQuery{}, false
	}

	s.loading = true
	return domain.SearchQuery{
		CreatedAfter: s.now().AddDate(0, 0, -s.settings.WindowDays),
		Sort:         domain.SortStars,
		Order:        domain.SortDescending,
		PageSize:     s.settings.PageSize,
		Page:         s.page,
	}, true
}

func (s *FeedService) release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
}

// merge applies a successful page. A short or empty page ends the feed;
// only a page that returned data advances the cursor.
func (s *FeedService) merge(query domain.SearchQuery, repos []domain.Repository) domain.FetchResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := domain.FetchResult{Page: query.Page, Added: len(repos)}

	if len(repos) == 0 {
		s.hasMore = false
		result.Outcome = domain.FetchExhausted
		logger.Info("Page %d empty: end of results (%d total)", query.Page, len(s.repos))
		return result
	}

	s.repos = append(s.repos, repos...)
	s.page++

	if len(repos) < query.PageSize {
		s.hasMore = false
		result.Outcome = domain.FetchExhausted
		logger.Info("Page %d short (%d < %d): end of results (%d total)",
			query.Page, len(repos), query.PageSize, len(s.repos))
		return result
	}

	result.Outcome = domain.FetchAppended
	logger.Info("Page %d appended %d repositories (%d total)", query.Page, len(repos), len(s.repos))
	return result
}

// fail ends pagination after a failed page. The accumulated list is kept.
func (s *FeedService) fail(page int, err error) domain.FetchResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hasMore = false
	logger.Error("Failed to fetch repositories (page %d): %v", page, err)

	return domain.FetchResult{Outcome: domain.FetchFailed, Page: page, Err: err}
}
