// ABOUTME: CLI commands for logging and listing training sessions.
// ABOUTME: Appends to the athlete's activity history and recomputes alerts.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/contratempo/internal/aggregate"
	"github.com/harperreed/contratempo/internal/models"
)

var (
	activityDate  string
	activityType  string
	activityTime  float64
	activityNotes string
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Manage training sessions",
}

var activityAddCmd = &cobra.Command{
	Use:   "add <athlete-id> <distance-km>",
	Short: "Log a training session",
	Long: `Log a training session for an athlete.

Logging a session recomputes the athlete's risk alerts.

EXAMPLES:

  contratempo activity add athlete_1712 12.5 --time 64
  contratempo activity add athlete_1712 21.1 --type long --date 2025-03-02
  contratempo activity add athlete_1712 8 --notes "easy shakeout"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		distance, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid distance: %s", args[1])
		}

		date := activityDate
		if date == "" {
			date = time.Now().UTC().Format("2006-01-02")
		}

		pace := ""
		if distance > 0 && activityTime > 0 {
			pace = aggregate.FormatPace(activityTime / distance)
		}

		entry, err := manager.AddActivity(args[0], models.ActivityEntry{
			Date:       date,
			Type:       activityType,
			DistanceKm: models.FlexFloat(distance),
			TimeMin:    models.FlexFloat(activityTime),
			Pace:       pace,
			Notes:      activityNotes,
		})
		if err != nil {
			return fmt.Errorf("failed to add activity: %w", err)
		}

		color.Green("✓ Logged %.1f km", distance)
		fmt.Printf("  %s %s", color.New(color.Faint).Sprint(entry.ID), date)
		if pace != "" {
			fmt.Printf("  %s/km", pace)
		}
		fmt.Println()
		return nil
	},
}

var activityListCmd = &cobra.Command{
	Use:     "list <athlete-id>",
	Aliases: []string{"ls"},
	Short:   "List an athlete's training sessions",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := manager.AthleteData(args[0])
		if err != nil {
			return fmt.Errorf("failed to load athlete: %w", err)
		}
		if profile == nil || len(profile.Activities) == 0 {
			fmt.Println("No activities logged.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, a := range profile.Activities {
			line := fmt.Sprintf("%s  %s  %6.1f km", faint.Sprint(a.ID), a.Date, float64(a.DistanceKm))
			if a.Pace != "" {
				line += fmt.Sprintf("  %s/km", a.Pace)
			}
			if a.Type != "" {
				line += "  " + a.Type
			}
			if a.Notes != "" {
				line += faint.Sprintf("  (%s)", a.Notes)
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	activityAddCmd.Flags().StringVar(&activityDate, "date", "", "Session date (YYYY-MM-DD), defaults to today")
	activityAddCmd.Flags().StringVar(&activityType, "type", "", "Session type (easy, tempo, interval, long, race)")
	activityAddCmd.Flags().Float64Var(&activityTime, "time", 0, "Duration in minutes")
	activityAddCmd.Flags().StringVar(&activityNotes, "notes", "", "Session notes")

	activityCmd.AddCommand(activityAddCmd)
	activityCmd.AddCommand(activityListCmd)
	rootCmd.AddCommand(activityCmd)
}
