// ABOUTME: CLI commands for exporting and importing the full data set.
// ABOUTME: Snapshots carry all four collections in JSON or YAML.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/contratempo/internal/data"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export all data",
	Long: `Export every collection (users, athletes, plans, alerts) as a snapshot.

FORMATS:

  json   Full JSON export (suitable for backup/restore)
  yaml   YAML export (human-readable)

EXAMPLES:

  contratempo export json                # Export all data as JSON
  contratempo export json -o backup.json # Save to file
  contratempo export yaml                # Export as YAML`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := manager.Export(cfg.DeviceID)
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		out, err := data.MarshalSnapshot(snap, args[0])
		if err != nil {
			return err
		}

		if exportOutput == "" {
			fmt.Println(string(out))
			return nil
		}

		if err := os.WriteFile(exportOutput, out, 0600); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		color.Green("✓ Exported to %s", exportOutput)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a snapshot",
	Long: `Import a snapshot file, replacing every collection.

The format is detected from the file extension (.json or .yaml/.yml).

CAUTION:

  Import overwrites all existing data. There is no undo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read snapshot: %w", err)
		}

		format := "json"
		if strings.HasSuffix(args[0], ".yaml") || strings.HasSuffix(args[0], ".yml") {
			format = "yaml"
		}

		snap, err := data.UnmarshalSnapshot(raw, format)
		if err != nil {
			return err
		}

		if err := manager.Import(snap); err != nil {
			return fmt.Errorf("failed to import: %w", err)
		}

		color.Green("✓ Imported %d users, %d athletes, %d plans, %d alerts",
			len(snap.Users), len(snap.Athletes), len(snap.Plans), len(snap.Alerts))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
