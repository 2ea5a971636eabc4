package mcp

import (
	"context"
	"fmt"

	"github.com/custodia-labs/ghtrend/internal/core/domain"
	"github.com/custodia-labs/ghtrend/internal/core/ports/driving"
)

// mockFeedService is a mock implementation of driving.FeedService.
// Each FetchNextPage call appends the next queued page.
type mockFeedService struct {
	pages   [][]domain.Repository
	err     error
	state   domain.FeedState
	fetches int
}

var _ driving.FeedService = (*mockFeedService)(nil)

func newMockFeed(pages ...[]domain.Repository) *mockFeedService {
	return &mockFeedService{
		pages: pages,
		state: domain.FeedState{SessionID: "session-1", Page: 1, HasMore: true},
	}
}

func (m *mockFeedService) Start(ctx context.Context) (domain.FetchResult, bool) {
	return m.FetchNextPage(ctx), true
}

func (m *mockFeedService) FetchNextPage(_ context.Context) domain.FetchResult {
	if !m.state.HasMore {
		return domain.FetchResult{Outcome: domain.FetchSkipped}
	}
	m.fetches++
	page := m.state.Page

	if m.err != nil {
		m.state.HasMore = false
		return domain.FetchResult{Outcome: domain.FetchFailed, Page: page, Err: m.err}
	}
	if len(m.pages) == 0 {
		m.state.HasMore = false
		return domain.FetchResult{Outcome: domain.FetchExhausted, Page: page}
	}

	next := m.pages[0]
	m.pages = m.pages[1:]
	m.state.Repositories = append(m.state.Repositories, next...)
	m.state.Page++

	outcome := domain.FetchAppended
	if len(m.pages) == 0 {
		m.state.HasMore = false
		outcome = domain.FetchExhausted
	}
	return domain.FetchResult{Outcome: outcome, Page: page, Added: len(next)}
}

func (m *mockFeedService) State() domain.FeedState {
	state := m.state
	state.Repositories = append([]domain.Repository(nil), m.state.Repositories...)
	return state
}

func testRepos(from, n int) []domain.Repository {
	repos := make([]domain.Repository, n)
	for i := range repos {
		id := from + i
		repos[i] = domain.Repository{
			ID:      int64(id),
			Name:    fmt.Sprintf("repo-%d", id),
			Owner:   domain.Owner{Login: "owner", AvatarURL: "https://avatars.example/owner"},
			Stars:   1500,
			HTMLURL: fmt.Sprintf("https://github.com/owner/repo-%d", id),
		}
	}
	return repos
}
