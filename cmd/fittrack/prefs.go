// ABOUTME: CLI commands for exercise preferences.
// ABOUTME: Preference edits request a debounced sync instead of an immediate pass.
package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Manage exercise preferences",
	Long: `Manage exercise preferences: starred exercises, per-exercise notes and
rest timers, tracked metric dimensions, and display settings.

Preferences sync as one bundle. Rapid edits (toggling stars, flipping
dimensions) are debounced into a single sync pass.

Examples:
  fittrack prefs star "Bench Press"
  fittrack prefs note "Bench Press" "elbows in"
  fittrack prefs rest "Bench Press" 180
  fittrack prefs dimension "Plank" duration
  fittrack prefs unit imperial
  fittrack prefs show`,
}

var prefsStarCmd = &cobra.Command{
	Use:   "star <exercise>",
	Short: "Toggle an exercise's starred flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		starred := !prefs.Starred()[args[0]]
		if err := prefs.SetStarred(args[0], starred); err != nil {
			return fmt.Errorf("failed to update star: %w", err)
		}
		requestSync()

		if starred {
			color.Green("✓ Starred %s", args[0])
		} else {
			color.Green("✓ Unstarred %s", args[0])
		}
		return nil
	},
}

var prefsNoteCmd = &cobra.Command{
	Use:   "note <exercise> [text]",
	Short: "Set or clear an exercise note",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		note := ""
		if len(args) == 2 {
			note = args[1]
		}
		if err := prefs.SetExerciseNote(args[0], note); err != nil {
			return fmt.Errorf("failed to update note: %w", err)
		}
		requestSync()

		if note == "" {
			color.Green("✓ Cleared note for %s", args[0])
		} else {
			color.Green("✓ Noted %s", args[0])
		}
		return nil
	},
}

var prefsRestCmd = &cobra.Command{
	Use:   "rest <exercise> <seconds>",
	Short: "Set an exercise's rest timer",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		seconds, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid seconds: %s", args[1])
		}
		if err := prefs.SetRestPref(args[0], seconds); err != nil {
			return fmt.Errorf("failed to update rest timer: %w", err)
		}
		requestSync()

		color.Green("✓ Rest timer for %s: %ds", args[0], seconds)
		return nil
	},
}

var prefsDimensionCmd = &cobra.Command{
	Use:     "dimension <exercise> <dimension>",
	Aliases: []string{"dim"},
	Short:   "Toggle a tracked metric dimension",
	Long: `Toggle a tracked metric dimension for an exercise (weight, reps,
distance, duration, speed, or a custom name). The toggle timestamp decides
which device wins when two devices change the same exercise's dimensions.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := prefs.ToggleMetricDimension(args[0], args[1]); err != nil {
			return fmt.Errorf("failed to toggle dimension: %w", err)
		}
		requestSync()

		dims := prefs.MetricDimensions()[args[0]]
		color.Green("✓ %s now tracks: %s", args[0], strings.Join(dims, ", "))
		return nil
	},
}

var prefsUnitCmd = &cobra.Command{
	Use:   "unit <metric|imperial>",
	Short: "Set the display unit system",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] != "metric" && args[0] != "imperial" {
			return fmt.Errorf("unknown unit system: %s (use metric or imperial)", args[0])
		}
		if err := prefs.SetUnitSystem(args[0]); err != nil {
			return fmt.Errorf("failed to set unit system: %w", err)
		}

		color.Green("✓ Unit system: %s", args[0])
		return nil
	},
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		fmt.Printf("Unit system: %s\n", prefs.UnitSystem())
		fmt.Printf("Language:    %s\n", prefs.Language())

		if star := prefs.Starred(); len(star) > 0 {
			names := make([]string, 0, len(star))
			for name := range star {
				names = append(names, name)
			}
			sort.Strings(names)
			fmt.Printf("Starred:     %s\n", strings.Join(names, ", "))
		}
		for name, note := range prefs.ExerciseNotes() {
			fmt.Printf("Note  %s %s\n", padRight(name, 20), faint.Sprint(note))
		}
		for name, seconds := range prefs.RestPrefs() {
			fmt.Printf("Rest  %s %ds\n", padRight(name, 20), seconds)
		}
		for name, dims := range prefs.MetricDimensions() {
			fmt.Printf("Dims  %s %s\n", padRight(name, 20), strings.Join(dims, ", "))
		}
		return nil
	},
}

// requestSync schedules a debounced pass; preference edits come in bursts.
func requestSync() {
	if engine != nil {
		engine.RequestSync()
	}
}

func init() {
	prefsCmd.AddCommand(prefsStarCmd)
	prefsCmd.AddCommand(prefsNoteCmd)
	prefsCmd.AddCommand(prefsRestCmd)
	prefsCmd.AddCommand(prefsDimensionCmd)
	prefsCmd.AddCommand(prefsUnitCmd)
	prefsCmd.AddCommand(prefsShowCmd)
	rootCmd.AddCommand(prefsCmd)
}
