// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/ghtrend/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewFeed is the trending repositories list.
	ViewFeed ViewType = iota
	// ViewDetails shows every field of one repository.
	ViewDetails
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewFeed:
		return "feed"
	case ViewDetails:
		return "details"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// FeedStarted carries the outcome of the initial page load.
// First is false when the load had already been performed.
type FeedStarted struct {
	Result domain.FetchResult
	First  bool
}

// PageLoaded carries the outcome of a FetchNextPage call.
type PageLoaded struct {
	Result domain.FetchResult
}

// RepositorySelected is sent when a repository is chosen for the details view.
type RepositorySelected struct {
	Repository domain.Repository
}

// ActionCompleted reports the result of an open or copy action.
type ActionCompleted struct {
	Message string
	Err     error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
