// ABOUTME: CLI commands for listing and resolving risk alerts.
// ABOUTME: Alerts are derived records; resolving keeps them with a timestamp.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/contratempo/internal/models"
)

var (
	alertAthlete string
	alertAll     bool
)

var alertCmd = &cobra.Command{
	Use:   "alert",
	Short: "Manage risk alerts",
}

var alertListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List active alerts",
	Long: `List active (unresolved) risk alerts.

Use --athlete to filter to one athlete, or --all to include resolved
alerts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var items []models.AlertItem
		var err error
		if alertAll {
			items, err = manager.Alerts()
		} else {
			items, err = manager.UnresolvedAlerts(alertAthlete)
		}
		if err != nil {
			return fmt.Errorf("failed to list alerts: %w", err)
		}
		if len(items) == 0 {
			fmt.Println("No alerts.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, a := range items {
			sev := string(a.Severity)
			switch a.Severity {
			case models.SeverityHigh:
				sev = color.RedString("high")
			case models.SeverityMedium:
				sev = color.YellowString("medium")
			}

			line := fmt.Sprintf("%s  %-8s %-10s %s  %s", faint.Sprint(a.ID), sev, a.Type, a.AthleteID, a.Message)
			if a.Resolved() {
				line += faint.Sprintf("  (resolved %s)", a.ResolvedAt)
			}
			fmt.Println(line)
		}
		return nil
	},
}

var alertResolveCmd = &cobra.Command{
	Use:   "resolve <alert-id>",
	Short: "Mark an alert as resolved",
	Long: `Mark an alert as resolved.

The alert record is kept with a resolution timestamp; it will not be
revived by later recomputations.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := manager.ResolveAlert(args[0]); err != nil {
			return fmt.Errorf("failed to resolve alert: %w", err)
		}
		color.Green("✓ Resolved %s", args[0])
		return nil
	},
}

func init() {
	alertListCmd.Flags().StringVar(&alertAthlete, "athlete", "", "Filter to one athlete")
	alertListCmd.Flags().BoolVar(&alertAll, "all", false, "Include resolved alerts")

	alertCmd.AddCommand(alertListCmd)
	alertCmd.AddCommand(alertResolveCmd)
	rootCmd.AddCommand(alertCmd)
}
