// ABOUTME: CLI commands for fitness goals.
// ABOUTME: Supports manual and auto-tracked goals with progress history.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	goalUnit     string
	goalAuto     string
	goalExercise string
	goalAll      bool
	progressNote string
)

var goalCmd = &cobra.Command{
	Use:     "goal",
	Aliases: []string{"g"},
	Short:   "Track fitness goals",
	Long: `Track fitness goals.

Goal types: weight, strength, frequency. A goal is manual by default: you
record progress yourself. Pass --auto to have the goal recompute from your
logged data after every mutation:

  max_weight       heaviest set for --exercise
  session_count    sessions this calendar month
  body_weight      your latest weight entry

Examples:
  fittrack goal add weight "Get to 80kg" 80 --auto body_weight
  fittrack goal add strength "Bench 100kg" 100 --auto max_weight --exercise "Bench Press"
  fittrack goal add frequency "Train 12x" 12 --auto session_count
  fittrack goal progress ab12 85 --note "cutting going well"
  fittrack goal complete ab12
  fittrack goal list --all`,
}

var goalAddCmd = &cobra.Command{
	Use:   "add <type> <title> <target>",
	Short: "Create a goal",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidGoalType(args[0]) {
			return fmt.Errorf("unknown goal type: %s\nValid types: weight, strength, frequency", args[0])
		}
		target, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid target: %s", args[2])
		}

		g := models.NewGoal(currentUserID(), models.GoalType(args[0]), args[1], target)
		g.Unit = goalUnit
		if goalAuto != "" {
			g.WithAutoRule(models.AutoRule{Exercise: goalExercise, Aggregation: goalAuto})
		}

		if err := db.SaveGoal(g); err != nil {
			return fmt.Errorf("failed to save goal: %w", err)
		}
		afterMutation()

		color.Green("✓ Added goal %q", g.Title)
		fmt.Printf("  %s target %.1f %s\n",
			color.New(color.Faint).Sprint(shortID(g.ID)), g.TargetValue, g.Unit)
		return nil
	},
}

var goalListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List goals, active first",
	RunE: func(cmd *cobra.Command, args []string) error {
		goalList, err := db.ListGoals(currentUserID(), !goalAll)
		if err != nil {
			return fmt.Errorf("failed to list goals: %w", err)
		}
		if len(goalList) == 0 {
			fmt.Println("No goals found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, g := range goalList {
			status := "active"
			if !g.Active() {
				status = "done"
			}
			source := ""
			if g.DataSource == models.SourceAuto && g.AutoRule != nil {
				source = faint.Sprintf(" [auto:%s]", g.AutoRule.Aggregation)
			}
			fmt.Printf("%s %s %s %.1f/%.1f %s%s\n",
				faint.Sprint(shortID(g.ID)),
				padRight(status, 6),
				padRight(g.DisplayTitle(), 24),
				g.CurrentValue, g.TargetValue, g.Unit, source)
		}
		return nil
	},
}

var goalProgressCmd = &cobra.Command{
	Use:   "progress <id> <value>",
	Short: "Record progress for a manual goal",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[1])
		}

		g, err := db.GetGoal(args[0])
		if err != nil {
			return fmt.Errorf("goal not found: %s", args[0])
		}
		if g.DataSource == models.SourceAuto {
			return fmt.Errorf("goal %q is auto-tracked; progress is computed from logged data", g.DisplayTitle())
		}

		g.RecordProgress(value, progressNote)
		if err := db.SaveGoal(g); err != nil {
			return fmt.Errorf("failed to save goal: %w", err)
		}
		afterMutation()

		color.Green("✓ Recorded %.1f for %q", value, g.DisplayTitle())
		return nil
	},
}

var goalCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a goal as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := db.GetGoal(args[0])
		if err != nil {
			return fmt.Errorf("goal not found: %s", args[0])
		}

		g.Complete()
		if err := db.SaveGoal(g); err != nil {
			return fmt.Errorf("failed to save goal: %w", err)
		}
		afterMutation()

		color.Green("✓ Completed goal %q", g.DisplayTitle())
		return nil
	},
}

var goalDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a goal from this device",
	Long: `Delete a goal from this device.

The cloud copy is not removed; if this device is linked, the goal comes
back on the next sync. Prefer 'goal complete' to archive a goal for good.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if engine != nil {
			err = engine.DeleteGoal(args[0])
		} else {
			_, err = db.DeleteGoal(args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to delete goal: %w", err)
		}

		color.Green("✓ Deleted goal %s", args[0])
		return nil
	},
}

func init() {
	goalAddCmd.Flags().StringVar(&goalUnit, "unit", "", "unit for the target value")
	goalAddCmd.Flags().StringVar(&goalAuto, "auto", "", "auto rule (max_weight, session_count, body_weight)")
	goalAddCmd.Flags().StringVar(&goalExercise, "exercise", "", "exercise the auto rule tracks")
	goalListCmd.Flags().BoolVar(&goalAll, "all", false, "include completed goals")
	goalProgressCmd.Flags().StringVar(&progressNote, "note", "", "note for this progress point")

	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalProgressCmd)
	goalCmd.AddCommand(goalCompleteCmd)
	goalCmd.AddCommand(goalDeleteCmd)
	rootCmd.AddCommand(goalCmd)
}
