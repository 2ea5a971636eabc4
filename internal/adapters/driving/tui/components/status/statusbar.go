// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/ghtrend/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/ghtrend/internal/adapters/driving/tui/styles"
)

// State represents the feed state for display.
type State string

const (
	StateReady   State = "ready"
	StateLoading State = "loading"
	StateEnd     State = "end"
	StateError   State = "error"
)

// Indicator texts.
const (
	LoadingText = "Loading more repos..."
	EndText     = "No more repos available."
)

// Bar displays feed status and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	spinner  spinner.Model
	spinning bool
	state    State
	message  string
	count    int
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(s.Stars),
		),
		state: StateReady,
		width: 80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update advances the spinner while loading. Ticks stop once loading ends.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); !ok {
		return s, nil
	}
	if s.state != StateLoading {
		s.spinning = false
		return s, nil
	}

	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return s, cmd
}

// StartLoading switches to the loading state and returns the command that
// starts the spinner, or nil when it is already running.
func (s *Bar) StartLoading() tea.Cmd {
	s.state = StateLoading
	if s.spinning {
		return nil
	}
	s.spinning = true
	return s.spinner.Tick
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// Indicator renders the feed indicator shown below the list: a spinner
// while loading, the end marker once exhausted.
func (s *Bar) Indicator() string {
	switch s.state {
	case StateLoading:
		return s.spinner.View() + " " + s.styles.Muted.Render(LoadingText)
	case StateEnd, StateError:
		return s.styles.Muted.Render(EndText)
	case StateReady:
		return ""
	}
	return ""
}

// renderLeft renders the left side of the status bar.
func (s *Bar) renderLeft() string {
	var left string
	switch s.state {
	case StateLoading:
		left = s.styles.Muted.Render(fmt.Sprintf("%d repos, loading", s.count))
	case StateError:
		left = s.styles.Error.Render(fmt.Sprintf("%d repos, load failed", s.count))
	case StateEnd:
		left = s.styles.Muted.Render(fmt.Sprintf("%d repos, end of list", s.count))
	case StateReady:
		left = s.styles.Normal.Render(fmt.Sprintf("%d repos", s.count))
	}

	if s.message != "" {
		left += s.styles.Muted.Render(" · ") + s.styles.Success.Render(s.message)
	}
	return left
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// Spinning reports whether spinner ticks are in flight.
func (s *Bar) Spinning() bool {
	return s.spinning
}

// SetMessage sets a transient message, such as an action result.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetCount sets the number of loaded repositories.
func (s *Bar) SetCount(count int) {
	s.count = count
}

// Count returns the number of loaded repositories.
func (s *Bar) Count() int {
	return s.count
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}
