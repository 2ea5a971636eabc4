// Package tui provides an interactive terminal user interface for ghtrend.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/ghtrend/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Feed is the pagination controller behind the list.
	Feed driving.FeedService

	// Actions opens and copies repository URLs.
	Actions driving.RepositoryActionService

	// Settings supplies the scroll threshold. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(feed driving.FeedService, actions driving.RepositoryActionService) *Ports {
	return &Ports{
		Feed:    feed,
		Actions: actions,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Feed == nil {
		return ErrMissingFeedService
	}
	return nil
}
