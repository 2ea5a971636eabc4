package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/ghtrend/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/ghtrend/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/ghtrend/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ghtrend/internal/adapters/driving/tui/views/details"
	"github.com/custodia-labs/ghtrend/internal/adapters/driving/tui/views/feed"
	"github.com/custodia-labs/ghtrend/internal/core/domain"
	"github.com/custodia-labs/ghtrend/internal/logger"
)

// WindowTitle is the terminal title set on start.
const WindowTitle = "ghtrend - Trending GitHub Repos"

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model

	// feedView is the infinite repository list.
	feedView *feed.View

	// detailsView shows a single repository.
	detailsView *details.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// previousView is where help returns to.
	previousView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	threshold := domain.DefaultScrollThreshold
	if ports.Settings != nil {
		settings, err := ports.Settings.Get()
		if err != nil {
			logger.Warn("Using default scroll threshold: %v", err)
		} else {
			threshold = settings.Feed.ScrollThreshold
		}
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	h := help.New()
	h.ShowAll = true

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		help:        h,
		feedView:    feed.NewView(s, km, ports.Feed, ports.Actions, threshold),
		detailsView: details.NewView(s, km, ports.Actions),
		currentView: messages.ViewFeed,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.feedView.WithContext(ctx)
	a.detailsView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It starts the first page load and sets the window title.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(WindowTitle),
		a.feedView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewFeed:
			a.feedView, cmd = a.feedView.Update(msg)
		case messages.ViewDetails:
			a.detailsView, cmd = a.detailsView.Update(msg)
		case messages.ViewHelp:
			cmd = a.handleHelpKey(msg)
		}
		return a, cmd

	case messages.ViewChanged:
		if msg.View == messages.ViewHelp {
			a.previousView = a.currentView
		}
		a.currentView = msg.View
		return a, nil

	case messages.RepositorySelected:
		a.detailsView.SetRepository(msg.Repository)
		a.currentView = messages.ViewDetails
		return a, nil

	case messages.ActionCompleted:
		if a.currentView == messages.ViewDetails {
			a.detailsView, cmd = a.detailsView.Update(msg)
			return a, cmd
		}
		a.feedView, cmd = a.feedView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.feedView, cmd = a.feedView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Page results and spinner ticks belong to the feed whichever view is shown.
	a.feedView, cmd = a.feedView.Update(msg)
	return a, cmd
}

// handleHelpKey handles keys while the help view is shown.
func (a *App) handleHelpKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "esc", "?":
		a.currentView = a.previousView
	}
	return nil
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewDetails:
		return a.detailsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.feedView.View()
	}
}

// viewHelp renders the key bindings.
func (a *App) viewHelp() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(a.help.FullHelpView(a.keymap.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Muted.Render("More repositories load as the selection nears the end of the list."))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("[esc] back  [q] quit"))

	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Repositories returns the repositories shown in the list.
func (a *App) Repositories() []domain.Repository {
	return a.feedView.Repositories()
}

// SelectedIndex returns the selected row.
func (a *App) SelectedIndex() int {
	return a.feedView.SelectedIndex()
}

// DetailsRepository returns the repository shown in the details view.
func (a *App) DetailsRepository() *domain.Repository {
	return a.detailsView.Repository()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and its views.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.help.Width = width
	a.feedView.SetDimensions(width, height)
	a.detailsView.SetDimensions(width, height)
}
