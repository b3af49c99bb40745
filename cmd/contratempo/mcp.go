// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/contratempo/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to work with the club's data through
a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "contratempo": {
        "command": "contratempo",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  list_athletes   List all registered athletes
  get_athlete     Get an athlete's full training profile
  add_activity    Log a training session
  add_metrics     Log a daily wellness check-in
  list_plans      List all training plans
  assign_plan     Assign a training plan to an athlete
  list_alerts     List active alerts
  resolve_alert   Mark an alert as resolved
  weekly_volume   Trailing 7-day volume and average pace

AVAILABLE RESOURCES:

  contratempo://roster   Every athlete with volume and alert counts`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(manager)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
