package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/aurora-cli/internal/adapters/driving/mcp"
)

var mcpDataDir string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server communicates over stdio using JSON-RPC and exposes the tools
astro_attributes and daily_report, plus the lunar tables as resources.

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "aurora": {
        "command": "/path/to/aurora",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().StringVar(&mcpDataDir, "data-dir", "", "directory holding the lookup data files")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	server, err := newMCPServer()
	if err != nil {
		return err
	}
	return server.Run(cmd.Context())
}

// newMCPServer builds the server from the effective settings.
func newMCPServer() (*mcp.Server, error) {
	settings, err := effectiveSettings(overrides{dataDir: mcpDataDir})
	if err != nil {
		return nil, err
	}

	report, content, err := reportServices(settings)
	if err != nil {
		return nil, err
	}

	return mcp.NewServer(&mcp.Ports{Report: report, Content: content})
}
