// ABOUTME: CLI command to run the MCP server.
// ABOUTME: Serves tools and resources over stdio for AI assistants.
package main

import (
	"fmt"

	"github.com/harperreed/fittrack/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server over stdio.

Exposes fitness tools (log_workout, log_set, log_weight, log_measurement,
add_goal, sync_now, ...) and resources (fittrack://summary,
fittrack://recent, fittrack://goals) to MCP-compatible AI assistants.

Add to your Claude Desktop config:

  {
    "mcpServers": {
      "fittrack": { "command": "fittrack", "args": ["mcp"] }
    }
  }`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(db, engine, currentUserID())
		if err != nil {
			return fmt.Errorf("failed to create MCP server: %w", err)
		}
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
