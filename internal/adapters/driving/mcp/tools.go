package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/ghtrend/internal/core/domain"
)

// FetchNextPageInput is the input schema for the fetch_next_page tool.
type FetchNextPageInput struct{}

// FetchNextPageOutput is the output schema for the fetch_next_page tool.
type FetchNextPageOutput struct {
	Outcome      string             `json:"outcome"`
	Page         int                `json:"page,omitempty"`
	Added        int                `json:"added"`
	Total        int                `json:"total"`
	HasMore      bool               `json:"has_more"`
	Error        string             `json:"error,omitempty"`
	Repositories []RepositoryOutput `json:"repositories"`
}

// RepositoryOutput represents a single repository.
type RepositoryOutput struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name,omitempty"`
	Description string `json:"description"`
	Owner       string `json:"owner"`
	AvatarURL   string `json:"avatar_url"`
	Stars       int    `json:"stars"`
	StarsLabel  string `json:"stars_label"`
	URL         string `json:"url"`
	Language    string `json:"language,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "fetch_next_page",
		Description: "Load the next page of the most-starred GitHub repositories created recently. " +
			"Returns the repositories the page added; does nothing once the list is exhausted.",
	}, s.handleFetchNextPage)
}

// handleFetchNextPage handles the fetch_next_page tool invocation.
func (s *Server) handleFetchNextPage(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ FetchNextPageInput,
) (*mcp.CallToolResult, FetchNextPageOutput, error) {
	result := s.ports.Feed.FetchNextPage(ctx)
	state := s.ports.Feed.State()

	output := FetchNextPageOutput{
		Outcome:      result.Outcome.String(),
		Page:         result.Page,
		Added:        result.Added,
		Total:        state.Count(),
		HasMore:      state.HasMore,
		Repositories: []RepositoryOutput{},
	}
	if result.Err != nil {
		output.Error = result.Err.Error()
	}

	// Added records are always the tail of the list.
	if result.Added > 0 && result.Added <= len(state.Repositories) {
		added := state.Repositories[len(state.Repositories)-result.Added:]
		output.Repositories = toOutputs(added)
	}

	return nil, output, nil
}

func toOutputs(repos []domain.Repository) []RepositoryOutput {
	out := make([]RepositoryOutput, len(repos))
	for i := range repos {
		out[i] = toOutput(&repos[i])
	}
	return out
}

func toOutput(r *domain.Repository) RepositoryOutput {
	return RepositoryOutput{
		ID:          r.ID,
		Name:        r.Name,
		FullName:    r.FullName,
		Description: r.DescriptionOrDefault(),
		Owner:       r.Owner.Login,
		AvatarURL:   r.Owner.AvatarURL,
		Stars:       r.Stars,
		StarsLabel:  r.StarsLabel(),
		URL:         r.HTMLURL,
		Language:    r.Language,
	}
}
