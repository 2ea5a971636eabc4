package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ghtrend/internal/core/domain"
)

var (
	listPages int
	listJSON  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print trending repositories",
	Long: `Fetches up to --pages pages of the most-starred repositories created
recently and prints them. Paging stops early at the end of the data or on
the first failed request.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().IntVarP(&listPages, "pages", "n", 1, "number of pages to fetch")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output repositories as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if feedService == nil {
		return errNoFeedService
	}
	if listPages < 1 {
		return fmt.Errorf("%w: --pages must be at least 1, got %d", domain.ErrInvalidInput, listPages)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, _ := feedService.Start(ctx)
	for page := 1; page < listPages && feedService.State().CanFetch(); page++ {
		result = feedService.FetchNextPage(ctx)
	}

	state := feedService.State()
	if result.Outcome == domain.FetchFailed {
		if state.Count() == 0 {
			return fmt.Errorf("fetch trending repositories: %w", result.Err)
		}
		cmd.PrintErrf("Warning: stopped after page %d: %v\n", result.Page-1, result.Err)
	}

	if listJSON {
		return outputListJSON(cmd, state.Repositories)
	}
	return outputListTable(cmd, state)
}

func outputListJSON(cmd *cobra.Command, repos []domain.Repository) error {
	if repos == nil {
		repos = []domain.Repository{}
	}
	data, err := json.MarshalIndent(repos, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal repositories: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputListTable(cmd *cobra.Command, state domain.FeedState) error {
	if state.Count() == 0 {
		cmd.Println("No repositories found.")
		return nil
	}

	cmd.Println("Trending GitHub Repos")
	cmd.Println()
	for i := range state.Repositories {
		r := &state.Repositories[i]
		// Format: [N] name ★ stars
		cmd.Printf("  [%d] %s ★ %s\n", i+1, r.Name, r.StarsLabel())
		cmd.Printf("      %s\n", r.DescriptionOrDefault())
		cmd.Printf("      by %s · %s\n", r.Owner.Login, r.HTMLURL)
		cmd.Println()
	}

	if !state.HasMore {
		cmd.Println("No more repos available.")
	}
	return nil
}
