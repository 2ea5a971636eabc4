// Package mcp provides an MCP (Model Context Protocol) server adapter for ghtrend.
// It lets AI assistants page through trending repositories.
package mcp

import "errors"

// ErrMissingFeedService is returned when the feed service is not provided.
var ErrMissingFeedService = errors.New("mcp: feed service is required")
