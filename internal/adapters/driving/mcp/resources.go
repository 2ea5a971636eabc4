package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for ghtrend resources.
	uriScheme = "trending://"
)

// feedInfo is the JSON form of the repositories resource.
type feedInfo struct {
	SessionID    string             `json:"session_id"`
	NextPage     int                `json:"next_page"`
	HasMore      bool               `json:"has_more"`
	Loading      bool               `json:"loading"`
	Count        int                `json:"count"`
	Repositories []RepositoryOutput `json:"repositories"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "repositories",
		Name:        "repositories",
		Description: "Repositories loaded so far, in arrival order",
		MIMEType:    "application/json",
	}, s.handleRepositoriesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "repositories/{id}",
		Name:        "repository",
		Description: "A single loaded repository by its GitHub ID",
		MIMEType:    "application/json",
	}, s.handleRepositoryResource)
}

// handleRepositoriesResource returns the accumulated list.
func (s *Server) handleRepositoriesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	state := s.ports.Feed.State()

	info := feedInfo{
		SessionID:    state.SessionID,
		NextPage:     state.Page,
		HasMore:      state.HasMore,
		Loading:      state.Loading,
		Count:        state.Count(),
		Repositories: toOutputs(state.Repositories),
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling repositories: %w", err)
	}

	return jsonResult(req.Params.URI, data), nil
}

// handleRepositoryResource returns one repository from the list.
func (s *Server) handleRepositoryResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id, ok := extractRepositoryID(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	state := s.ports.Feed.State()
	for i := range state.Repositories {
		if state.Repositories[i].ID != id {
			continue
		}
		data, err := json.MarshalIndent(toOutput(&state.Repositories[i]), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshalling repository: %w", err)
		}
		return jsonResult(req.Params.URI, data), nil
	}

	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}

func jsonResult(uri string, data []byte) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}
}

// extractRepositoryID extracts the ID from a URI like trending://repositories/{id}.
func extractRepositoryID(uri string) (int64, bool) {
	const prefix = uriScheme + "repositories/"

	if !strings.HasPrefix(uri, prefix) {
		return 0, false
	}

	id, err := strconv.ParseInt(strings.TrimPrefix(uri, prefix), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
