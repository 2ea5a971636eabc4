package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/custodia-labs/ghtrend/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/ghtrend/internal/core/domain"
	"github.com/custodia-labs/ghtrend/internal/core/services"
)

// mockFeedService serves queued pages; a nil page stands for a failure.
type mockFeedService struct {
	pages   [][]domain.Repository
	state   domain.FeedState
	started bool
	fetches int
}

func newMockFeed(pages ...[]domain.Repository) *mockFeedService {
	return &mockFeedService{
		pages: pages,
		state: domain.FeedState{SessionID: "test", Page: 1, HasMore: true},
	}
}

func (m *mockFeedService) Start(ctx context.Context) (domain.FetchResult, bool) {
	if m.started {
		return domain.FetchResult{Outcome: domain.FetchSkipped}, false
	}
	m.started = true
	return m.FetchNextPage(ctx), true
}

func (m *mockFeedService) FetchNextPage(_ context.Context) domain.FetchResult {
	if !m.state.HasMore {
		return domain.FetchResult{Outcome: domain.FetchSkipped}
	}
	m.fetches++
	page := m.state.Page
	if len(m.pages) == 0 {
		m.state.HasMore = false
		return domain.FetchResult{Outcome: domain.FetchExhausted, Page: page}
	}

	next := m.pages[0]
	m.pages = m.pages[1:]
	if next == nil {
		m.state.HasMore = false
		return domain.FetchResult{Outcome: domain.FetchFailed, Page: page, Err: errors.New("connection refused")}
	}

	m.state.Repositories = append(m.state.Repositories, next...)
	m.state.Page++
	if len(next) < 30 {
		m.state.HasMore = false
		return domain.FetchResult{Outcome: domain.FetchExhausted, Page: page, Added: len(next)}
	}
	return domain.FetchResult{Outcome: domain.FetchAppended, Page: page, Added: len(next)}
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

// setupTestServices installs feed and an in-memory settings service,
// captures command output and restores the package state on cleanup.
func setupTestServices(t *testing.T, feed *mockFeedService) *bytes.Buffer {
	t.Helper()

	oldFeed, oldSettings, oldActions := feedService, settingsService, actionService
	oldFactory, oldTerminal := serviceFactory, isTerminal
	oldPages, oldJSON := listPages, listJSON
	oldDir, oldVerbose := configDir, verbose
	oldPort := mcpPort

	SetServices(&Services{
		Feed:     feed,
		Settings: services.NewSettingsService(memory.NewConfigStore()),
	})
	serviceFactory = nil
	isTerminal = func() bool { return false }

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)

	t.Cleanup(func() {
		feedService, settingsService, actionService = oldFeed, oldSettings, oldActions
		serviceFactory, isTerminal = oldFactory, oldTerminal
		listPages, listJSON = oldPages, oldJSON
		configDir, verbose = oldDir, oldVerbose
		mcpPort = oldPort
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	return buf
}

// execute runs the root command with args.
func execute(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}
