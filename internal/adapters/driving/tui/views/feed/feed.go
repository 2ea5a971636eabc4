// Package feed provides the trending repositories view for the TUI.
package feed

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/ghtrend/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/ghtrend/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/ghtrend/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/ghtrend/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/ghtrend/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ghtrend/internal/core/domain"
	"github.com/custodia-labs/ghtrend/internal/core/ports/driving"
)

// Title is the page header.
const Title = "Trending GitHub Repos"

// reservedLines is the space taken by header, indicator and status bar.
const reservedLines = 7

// View shows the accumulated repositories and requests the next page when
// the selection comes within threshold rows of the end.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *list.RepoList
	statusbar *status.Bar

	feedService   driving.FeedService
	actionService driving.RepositoryActionService
	ctx           context.Context

	threshold int

	// pending is set from issuing a fetch command until its result arrives,
	// so navigation during that window does not queue more commands.
	pending bool

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new feed view. A threshold below one uses the default.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	feedService driving.FeedService,
	actionService driving.RepositoryActionService,
	threshold int,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	if threshold < 1 {
		threshold = domain.DefaultScrollThreshold
	}

	return &View{
		styles:        s,
		keymap:        km,
		list:          list.NewRepoList(s),
		statusbar:     status.NewBar(s, km),
		feedService:   feedService,
		actionService: actionService,
		ctx:           context.Background(),
		threshold:     threshold,
		width:         80,
		height:        24,
	}
}

// WithContext sets the context passed to the feed and action services.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init issues the one-shot initial load.
func (v *View) Init() tea.Cmd {
	v.pending = true
	return tea.Batch(v.statusbar.StartLoading(), v.startFeed())
}

// Update handles messages for the feed view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.FeedStarted:
		return v, v.applyResult(msg.Result)

	case messages.PageLoaded:
		return v, v.applyResult(msg.Result)

	case messages.ActionCompleted:
		if msg.Err != nil {
			v.statusbar.SetMessage(msg.Err.Error())
		} else {
			v.statusbar.SetMessage(msg.Message)
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.pending = false
		v.refresh()
		return v, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		v.statusbar, cmd = v.statusbar.Update(msg)
		return v, cmd
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keymap.Help):
		return v, changeView(messages.ViewHelp)

	case key.Matches(msg, v.keymap.Up):
		v.list.MoveUp()
	case key.Matches(msg, v.keymap.Down):
		v.list.MoveDown()
	case key.Matches(msg, v.keymap.PageUp):
		v.list.PageUp()
	case key.Matches(msg, v.keymap.PageDown):
		v.list.PageDown()
	case key.Matches(msg, v.keymap.Top):
		v.list.Top()
	case key.Matches(msg, v.keymap.Bottom):
		v.list.Bottom()

	case key.Matches(msg, v.keymap.Open):
		return v, v.open()
	case key.Matches(msg, v.keymap.Copy):
		return v, v.copyURL()
	case key.Matches(msg, v.keymap.Details):
		repo := v.list.SelectedRepository()
		if repo == nil {
			return v, nil
		}
		selected := *repo
		return v, func() tea.Msg {
			return messages.RepositorySelected{Repository: selected}
		}

	default:
		return v, nil
	}

	// Every navigation re-checks the near-end trigger.
	return v, v.maybeFetch()
}

// applyResult folds a fetch outcome into the view and re-checks the trigger,
// which covers a selection that reached the end while the page was loading.
func (v *View) applyResult(result domain.FetchResult) tea.Cmd {
	v.pending = false
	if result.Outcome == domain.FetchFailed {
		v.err = result.Err
	}
	v.refresh()
	return v.maybeFetch()
}

// maybeFetch returns a fetch command when the selection is near the end,
// more results exist and no fetch is in flight.
func (v *View) maybeFetch() tea.Cmd {
	if v.pending || v.feedService == nil {
		return nil
	}
	if !v.list.NearEnd(v.threshold) {
		return nil
	}
	if !v.feedService.State().CanFetch() {
		return nil
	}

	v.pending = true
	return tea.Batch(v.statusbar.StartLoading(), v.fetchNextPage())
}

// refresh copies the controller's state into the list and status bar.
func (v *View) refresh() {
	if v.feedService == nil {
		v.statusbar.SetState(status.StateError)
		return
	}

	state := v.feedService.State()
	v.list.SetRepositories(state.Repositories)
	v.statusbar.SetCount(state.Count())

	switch {
	case v.pending || state.Loading:
		v.statusbar.SetState(status.StateLoading)
	case !state.HasMore && v.err != nil:
		v.statusbar.SetState(status.StateError)
	case !state.HasMore:
		v.statusbar.SetState(status.StateEnd)
	default:
		v.statusbar.SetState(status.StateReady)
	}
}

// startFeed performs the initial load.
func (v *View) startFeed() tea.Cmd {
	return func() tea.Msg {
		if v.feedService == nil {
			return messages.ErrorOccurred{Err: ErrNoFeedService}
		}
		result, first := v.feedService.Start(v.ctx)
		return messages.FeedStarted{Result: result, First: first}
	}
}

// fetchNextPage requests the next page.
func (v *View) fetchNextPage() tea.Cmd {
	return func() tea.Msg {
		return messages.PageLoaded{Result: v.feedService.FetchNextPage(v.ctx)}
	}
}

// open opens the selected repository in the browser.
func (v *View) open() tea.Cmd {
	repo := v.list.SelectedRepository()
	if repo == nil {
		return nil
	}
	selected := *repo
	return OpenCmd(v.ctx, v.actionService, &selected)
}

// copyURL copies the selected repository's URL.
func (v *View) copyURL() tea.Cmd {
	repo := v.list.SelectedRepository()
	if repo == nil {
		return nil
	}
	selected := *repo
	return CopyCmd(v.ctx, v.actionService, &selected)
}

// OpenCmd opens repo in the browser and reports the outcome.
func OpenCmd(ctx context.Context, actions driving.RepositoryActionService, repo *domain.Repository) tea.Cmd {
	return func() tea.Msg {
		if actions == nil {
			return messages.ActionCompleted{Err: ErrNoActionService}
		}
		if err := actions.Open(ctx, repo); err != nil {
			return messages.ActionCompleted{Err: err}
		}
		return messages.ActionCompleted{Message: "Opened " + repo.HTMLURL}
	}
}

// CopyCmd copies repo's URL and reports the outcome.
func CopyCmd(ctx context.Context, actions driving.RepositoryActionService, repo *domain.Repository) tea.Cmd {
	return func() tea.Msg {
		if actions == nil {
			return messages.ActionCompleted{Err: ErrNoActionService}
		}
		if err := actions.CopyURL(ctx, repo); err != nil {
			return messages.ActionCompleted{Err: err}
		}
		return messages.ActionCompleted{Message: "Copied " + repo.HTMLURL}
	}
}

func changeView(view messages.ViewType) tea.Cmd {
	return func() tea.Msg {
		return messages.ViewChanged{View: view}
	}
}

// View renders the feed view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections, v.styles.Header.Render(Title))

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()))
	}

	sections = append(sections, v.list.View())

	if indicator := v.statusbar.Indicator(); indicator != "" {
		sections = append(sections, "", indicator)
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.list.SetDimensions(width, height-reservedLines)
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Repositories returns the repositories currently shown.
func (v *View) Repositories() []domain.Repository {
	return v.list.Repositories()
}

// SelectedIndex returns the index of the selected repository.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedRepository returns the selected repository, or nil.
func (v *View) SelectedRepository() *domain.Repository {
	return v.list.SelectedRepository()
}

// Pending reports whether a fetch command is outstanding.
func (v *View) Pending() bool {
	return v.pending
}

// Status returns the status bar state.
func (v *View) Status() status.State {
	return v.statusbar.State()
}

// StatusMessage returns the status bar message.
func (v *View) StatusMessage() string {
	return v.statusbar.Message()
}

// Threshold returns the near-end threshold in rows.
func (v *View) Threshold() int {
	return v.threshold
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
