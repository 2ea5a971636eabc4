package mcp

import (
	"github.com/custodia-labs/ghtrend/internal/core/ports/driving"
)

// Ports holds the services the MCP server drives.
type Ports struct {
	Feed driving.FeedService
}

// Validate reports ErrMissingFeedService when there is no feed to serve.
func (p *Ports) Validate() error {
	if p == nil || p.Feed == nil {
		return ErrMissingFeedService
	}
	return nil
}
