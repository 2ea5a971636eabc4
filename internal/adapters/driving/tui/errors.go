package tui

import "errors"

var (
	// ErrMissingFeedService means NewApp was given no feed to display.
	ErrMissingFeedService = errors.New("tui: feed service is required")

	// ErrInvalidPorts means NewApp was given nil ports.
	ErrInvalidPorts = errors.New("tui: ports are nil")
)
