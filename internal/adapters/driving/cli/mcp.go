package cli

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ghtrend/internal/adapters/driving/mcp"
	"github.com/custodia-labs/ghtrend/internal/logger"
)

var mcpPort int

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the feed to MCP clients",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Serve the trending feed over the Model Context Protocol.

Clients call the fetch_next_page tool to load one more page and read
trending://repositories for everything loaded so far. The feed follows
the same rules as the TUI: pages are fetched one at a time and a short
page ends the session.

Without --port the server speaks JSON-RPC on stdin/stdout, which is
what desktop assistants expect. With --port it serves streamable HTTP.

  ghtrend mcp serve
  ghtrend mcp serve --port 8080`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "serve HTTP on this port instead of stdio")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if mcpPort < 0 || mcpPort > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", mcpPort)
	}

	server, err := mcp.NewServer(&mcp.Ports{Feed: feedService})
	if err != nil {
		return fmt.Errorf("create mcp server: %w", err)
	}

	if mcpPort == 0 {
		logger.Info("Serving MCP over stdio")
		return server.Run(cmd.Context())
	}

	addr := net.JoinHostPort("", strconv.Itoa(mcpPort))
	// stdout is free in HTTP mode, so tell the user where to connect.
	cmd.Printf("MCP server listening on http://localhost%s\n", addr)
	return server.RunHTTP(cmd.Context(), addr)
}
