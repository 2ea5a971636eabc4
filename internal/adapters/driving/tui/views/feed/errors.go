package feed

import "errors"

// Error definitions for the feed view.
var (
	// ErrNoFeedService indicates that no feed service was provided.
	ErrNoFeedService = errors.New("feed service is required")

	// ErrNoActionService indicates that no action service was provided.
	ErrNoActionService = errors.New("action service is required")
)
