// ABOUTME: Root Cobra command for the contratempo CLI.
// ABOUTME: Handles store lifecycle and coach bootstrap via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/contratempo/internal/config"
	"github.com/harperreed/contratempo/internal/data"
	"github.com/harperreed/contratempo/internal/storage"
)

var (
	cfg     *config.Config
	store   storage.Store
	manager *data.Manager
)

var rootCmd = &cobra.Command{
	Use:   "contratempo",
	Short: "Running club coaching data store",
	Long: `Contratempo is the data core for a running club: athlete roster,
training logs, wellness check-ins, training plans, and derived risk alerts.

QUICK START:

  $ contratempo athlete register maria --name "Maria Silva"
  $ contratempo activity add <athlete-id> 12.5 --time 64   # Log a 12.5km run
  $ contratempo metrics add <athlete-id> --sleep 7.5 --recovery 88
  $ contratempo athlete list                               # See the roster
  $ contratempo alert list                                 # Active risk alerts

PLANS:

  $ contratempo plan create "10K Build" --target 45        # Weekly 45km target
  $ contratempo plan assign <plan-id> <athlete-id>
  $ contratempo plan list

ALERTS:

  Alerts are derived, not hand-authored: every activity, check-in, or plan
  change recomputes the athlete's risk state (low sleep, low recovery,
  volume above plan target, inactivity). Resolve one with:

  $ contratempo alert resolve <alert-id>

MCP INTEGRATION:

  Run 'contratempo mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants.

DATA STORAGE:

  Four collections (users, athletes, plans, alerts) stored as JSON blobs.
  The default backend is Charm KV with automatic cloud sync; set
  "backend": "sqlite" or "file" in the config to stay local.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		store, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}

		manager = data.NewManager(store)

		// Guarantee the bootstrap coach account on every startup.
		if err := manager.InitializeCoach(); err != nil {
			return fmt.Errorf("failed to initialize coach account: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}
