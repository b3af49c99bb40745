// ABOUTME: CLI command for logging daily wellness check-ins.
// ABOUTME: Appends to the athlete's metrics history and recomputes alerts.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/contratempo/internal/models"
)

var (
	metricsDate     string
	metricsSleep    float64
	metricsHRV      float64
	metricsWeight   float64
	metricsRecovery float64
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Manage wellness check-ins",
}

var metricsAddCmd = &cobra.Command{
	Use:   "add <athlete-id>",
	Short: "Log a wellness check-in",
	Long: `Log a daily wellness check-in for an athlete.

Logging a check-in recomputes the athlete's risk alerts: sleep under 6
hours or recovery under 60% fires a medium alert.

EXAMPLES:

  contratempo metrics add athlete_1712 --sleep 7.5 --recovery 88
  contratempo metrics add athlete_1712 --sleep 5 --hrv 48 --weight 64.2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := metricsDate
		if date == "" {
			date = time.Now().UTC().Format("2006-01-02")
		}

		entry, err := manager.AddMetrics(args[0], models.MetricsEntry{
			Date:        date,
			SleepHours:  metricsSleep,
			HRV:         metricsHRV,
			WeightKg:    metricsWeight,
			RecoveryPct: metricsRecovery,
		})
		if err != nil {
			return fmt.Errorf("failed to add metrics: %w", err)
		}

		color.Green("✓ Logged check-in for %s", date)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(entry.ID))
		return nil
	},
}

func init() {
	metricsAddCmd.Flags().StringVar(&metricsDate, "date", "", "Check-in date (YYYY-MM-DD), defaults to today")
	metricsAddCmd.Flags().Float64Var(&metricsSleep, "sleep", 0, "Hours slept last night")
	metricsAddCmd.Flags().Float64Var(&metricsHRV, "hrv", 0, "Heart rate variability in ms")
	metricsAddCmd.Flags().Float64Var(&metricsWeight, "weight", 0, "Body weight in kg")
	metricsAddCmd.Flags().Float64Var(&metricsRecovery, "recovery", 0, "Recovery score 0-100")

	metricsCmd.AddCommand(metricsAddCmd)
	rootCmd.AddCommand(metricsCmd)
}
