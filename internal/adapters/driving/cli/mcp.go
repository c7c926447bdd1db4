package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/profdir/internal/adapters/driving/mcp"
)

var mcpHTTPAddr string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server exposes the directory read-only: the search_profiles,
get_profile and list_facets tools, and the profdir://profiles resources.

By default it communicates over stdio. Use --http to serve the
streamable HTTP transport instead.

Examples:
  # Stdio mode
  profdir mcp --data profiles.json

  # HTTP mode
  profdir mcp --data profiles.json --http localhost:8080

Assistant configuration:
  {
    "mcpServers": {
      "profdir": {
        "command": "/path/to/profdir",
        "args": ["mcp", "--data", "/path/to/profiles.json"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpHTTPAddr, "http", "", "serve HTTP on this address instead of stdio")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd, false)
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{Directory: s.Directory})
	if err != nil {
		return err
	}

	if mcpHTTPAddr != "" {
		cmd.PrintErrf("MCP server listening on http://%s\n", mcpHTTPAddr)
		return server.RunHTTP(cmd.Context(), mcpHTTPAddr)
	}

	return server.Run(cmd.Context())
}
