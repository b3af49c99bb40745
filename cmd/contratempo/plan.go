// ABOUTME: CLI commands for training plan CRUD and assignment.
// ABOUTME: Deleting a plan unassigns it from every athlete.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/contratempo/internal/data"
	"github.com/harperreed/contratempo/internal/models"
)

var (
	planLevel  string
	planGoal   string
	planTarget float64
	planNotes  string
)

var planCmd = &cobra.Command{
	Use:     "plan",
	Aliases: []string{"p"},
	Short:   "Manage training plans",
}

var planCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a training plan",
	Long: `Create a training plan with a weekly distance target.

The weekly target drives the volume alert: an athlete running more than
1.2x the target over the trailing 7 days fires a high-severity alert.

EXAMPLES:

  contratempo plan create "10K Build" --target 45 --level intermediate
  contratempo plan create "Marathon Base" --target 70 --goal "sub-3:30"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := manager.CreatePlan(&models.TrainingPlan{
			Name:           args[0],
			Level:          planLevel,
			Goal:           planGoal,
			WeeklyTargetKm: planTarget,
			Notes:          planNotes,
		})
		if err != nil {
			return fmt.Errorf("failed to create plan: %w", err)
		}

		color.Green("✓ Created plan %s", plan.Name)
		fmt.Printf("  %s %.0f km/wk target\n", color.New(color.Faint).Sprint(plan.ID), plan.WeeklyTargetKm)
		return nil
	},
}

var planListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List training plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		plans, err := manager.Plans()
		if err != nil {
			return fmt.Errorf("failed to list plans: %w", err)
		}
		if len(plans) == 0 {
			fmt.Println("No training plans.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, p := range plans {
			line := fmt.Sprintf("%s  %-20s %5.0f km/wk", faint.Sprint(p.ID), p.Name, p.WeeklyTargetKm)
			if p.Level != "" {
				line += "  " + p.Level
			}
			fmt.Println(line)
		}
		return nil
	},
}

var planUpdateCmd = &cobra.Command{
	Use:   "update <plan-id>",
	Short: "Update a training plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		update := data.PlanUpdate{}
		if cmd.Flags().Changed("target") {
			update.WeeklyTargetKm = &planTarget
		}
		if cmd.Flags().Changed("level") {
			update.Level = &planLevel
		}
		if cmd.Flags().Changed("goal") {
			update.Goal = &planGoal
		}
		if cmd.Flags().Changed("notes") {
			update.Notes = &planNotes
		}

		plan, err := manager.UpdatePlan(args[0], update)
		if err != nil {
			return fmt.Errorf("failed to update plan: %w", err)
		}
		if plan == nil {
			return fmt.Errorf("plan not found: %s", args[0])
		}

		color.Green("✓ Updated %s", plan.Name)
		return nil
	},
}

var planDeleteCmd = &cobra.Command{
	Use:     "delete <plan-id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a training plan",
	Long: `Delete a training plan.

Athletes assigned to the plan are unassigned; their training data is kept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := manager.DeletePlan(args[0]); err != nil {
			return fmt.Errorf("failed to delete plan: %w", err)
		}
		color.Yellow("✗ Deleted %s", args[0])
		return nil
	},
}

var planAssignCmd = &cobra.Command{
	Use:   "assign <plan-id> <athlete-id>",
	Short: "Assign a plan to an athlete",
	Long: `Assign a training plan to an athlete, replacing any current assignment.

Use "none" as the plan ID to unassign. Assignment recomputes the
athlete's alerts against the new weekly target.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var planID *string
		if args[0] != "none" {
			plan, err := manager.Plan(args[0])
			if err != nil {
				return fmt.Errorf("failed to look up plan: %w", err)
			}
			if plan == nil {
				return fmt.Errorf("plan not found: %s", args[0])
			}
			planID = &args[0]
		}

		if err := manager.AssignPlanToAthlete(args[1], planID); err != nil {
			return fmt.Errorf("failed to assign plan: %w", err)
		}

		if planID == nil {
			color.Yellow("✗ Unassigned plan from %s", args[1])
		} else {
			color.Green("✓ Assigned %s to %s", args[0], args[1])
		}
		return nil
	},
}

func init() {
	planCreateCmd.Flags().StringVar(&planLevel, "level", "", "Plan level (beginner, intermediate, advanced)")
	planCreateCmd.Flags().StringVar(&planGoal, "goal", "", "Goal race or time")
	planCreateCmd.Flags().Float64Var(&planTarget, "target", 0, "Weekly distance target in km")
	planCreateCmd.Flags().StringVar(&planNotes, "notes", "", "Plan notes")

	planUpdateCmd.Flags().StringVar(&planLevel, "level", "", "Plan level")
	planUpdateCmd.Flags().StringVar(&planGoal, "goal", "", "Goal race or time")
	planUpdateCmd.Flags().Float64Var(&planTarget, "target", 0, "Weekly distance target in km")
	planUpdateCmd.Flags().StringVar(&planNotes, "notes", "", "Plan notes")

	planCmd.AddCommand(planCreateCmd)
	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planUpdateCmd)
	planCmd.AddCommand(planDeleteCmd)
	planCmd.AddCommand(planAssignCmd)
	rootCmd.AddCommand(planCmd)
}
