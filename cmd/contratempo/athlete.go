// ABOUTME: CLI commands for the athlete roster.
// ABOUTME: Register, list, show, set-vdot, and delete athletes.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/contratempo/internal/aggregate"
	"github.com/harperreed/contratempo/internal/data"
)

var (
	registerName     string
	registerEmail    string
	registerPhone    string
	registerPassword string
)

var athleteCmd = &cobra.Command{
	Use:     "athlete",
	Aliases: []string{"a"},
	Short:   "Manage the athlete roster",
}

var athleteRegisterCmd = &cobra.Command{
	Use:   "register <username>",
	Short: "Register a new athlete",
	Long: `Register a new athlete account with a default training profile.

Usernames must be unique; registration is refused when the username is
already taken.

EXAMPLES:

  contratempo athlete register maria --name "Maria Silva"
  contratempo athlete register joao --name "João Souza" --email joao@example.com`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]

		// Uniqueness is the caller's responsibility, so check here
		// before registering.
		users, err := manager.Users()
		if err != nil {
			return fmt.Errorf("failed to load users: %w", err)
		}
		for _, u := range users {
			if u.Username == username {
				return fmt.Errorf("username already taken: %s", username)
			}
		}

		name := registerName
		if name == "" {
			name = username
		}

		user, err := manager.RegisterAthlete(username, registerPassword, name, registerEmail, registerPhone)
		if err != nil {
			return fmt.Errorf("failed to register athlete: %w", err)
		}

		color.Green("✓ Registered %s", user.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(user.ID))
		return nil
	},
}

var athleteListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List athletes with weekly volume and active alerts",
	RunE: func(cmd *cobra.Command, args []string) error {
		athletes, err := manager.Athletes()
		if err != nil {
			return fmt.Errorf("failed to list athletes: %w", err)
		}
		if len(athletes) == 0 {
			fmt.Println("No athletes registered.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, u := range athletes {
			profile, err := manager.AthleteData(u.ID)
			if err != nil {
				return fmt.Errorf("failed to load athlete %s: %w", u.ID, err)
			}

			volume := 0.0
			pace := "0:00"
			if profile != nil {
				volume = aggregate.WeeklyVolume(profile.Activities, 7)
				pace = aggregate.AveragePace(profile.Activities, 7)
			}

			alerts, err := manager.UnresolvedAlerts(u.ID)
			if err != nil {
				return fmt.Errorf("failed to load alerts: %w", err)
			}

			line := fmt.Sprintf("%s  %-20s %6.1f km/wk  %s/km", faint.Sprint(u.ID), u.Name, volume, pace)
			if len(alerts) > 0 {
				line += color.RedString("  %d alert(s)", len(alerts))
			}
			fmt.Println(line)
		}
		return nil
	},
}

var athleteShowCmd = &cobra.Command{
	Use:   "show <athlete-id>",
	Short: "Show an athlete's training profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := manager.AthleteData(args[0])
		if err != nil {
			return fmt.Errorf("failed to load athlete: %w", err)
		}
		if profile == nil {
			return fmt.Errorf("athlete not found: %s", args[0])
		}

		fmt.Printf("Athlete:  %s\n", profile.UserID)
		fmt.Printf("VDOT:     %.1f\n", profile.VDOT)
		fmt.Printf("Plan:     %s\n", profile.Plan)
		if profile.PlanID != nil {
			plan, err := manager.Plan(*profile.PlanID)
			if err != nil {
				return fmt.Errorf("failed to load plan: %w", err)
			}
			if plan != nil {
				fmt.Printf("Assigned: %s (%.0f km/wk target)\n", plan.Name, plan.WeeklyTargetKm)
			}
		}
		fmt.Printf("Volume:   %.1f km over the last 7 days (%d sessions)\n",
			aggregate.WeeklyVolume(profile.Activities, 7),
			aggregate.RecentActivityCount(profile.Activities, 7))

		if latest := aggregate.LatestMetrics(profile.Metrics); latest != nil {
			fmt.Printf("Latest:   %s  sleep %.1fh, hrv %.0fms, recovery %.0f%%\n",
				latest.Date, latest.SleepHours, latest.HRV, latest.RecoveryPct)
		}
		return nil
	},
}

var athleteVdotCmd = &cobra.Command{
	Use:   "vdot <athlete-id> <value>",
	Short: "Set an athlete's VDOT",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		vdot, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid vdot: %s", args[1])
		}

		if _, err := manager.UpdateAthleteData(args[0], data.AthleteUpdate{VDOT: &vdot}); err != nil {
			return fmt.Errorf("failed to update athlete: %w", err)
		}

		color.Green("✓ VDOT set to %.1f", vdot)
		return nil
	},
}

var athleteDeleteCmd = &cobra.Command{
	Use:     "delete <athlete-id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete an athlete",
	Long: `Delete an athlete account.

The athlete's training profile and all of their alerts are removed too.
This permanently deletes the data. There is no undo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := manager.DeleteUser(args[0]); err != nil {
			return fmt.Errorf("failed to delete athlete: %w", err)
		}
		color.Yellow("✗ Deleted %s", args[0])
		return nil
	},
}

func init() {
	athleteRegisterCmd.Flags().StringVar(&registerName, "name", "", "Display name")
	athleteRegisterCmd.Flags().StringVar(&registerEmail, "email", "", "Email address")
	athleteRegisterCmd.Flags().StringVar(&registerPhone, "phone", "", "Phone number")
	athleteRegisterCmd.Flags().StringVar(&registerPassword, "password", "changeme", "Initial password")

	athleteCmd.AddCommand(athleteRegisterCmd)
	athleteCmd.AddCommand(athleteListCmd)
	athleteCmd.AddCommand(athleteShowCmd)
	athleteCmd.AddCommand(athleteVdotCmd)
	athleteCmd.AddCommand(athleteDeleteCmd)
	rootCmd.AddCommand(athleteCmd)
}
