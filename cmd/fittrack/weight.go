// ABOUTME: CLI commands for body-weight entries.
// ABOUTME: Stores kilograms canonically; accepts lb input with conversion.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	weightUnit  string
	weightLimit int
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Log and browse body weight",
	Long: `Log and browse body-weight entries.

Weight is stored in kilograms no matter what unit you log in; the unit you
typed is kept for display.

Examples:
  fittrack weight add 82.5
  fittrack weight add 180 --unit lb
  fittrack weight list
  fittrack weight delete ab12`,
}

var weightAddCmd = &cobra.Command{
	Use:   "add <value>",
	Short: "Log a weight entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[0])
		}
		if weightUnit != "kg" && weightUnit != "lb" {
			return fmt.Errorf("unknown unit: %s (use kg or lb)", weightUnit)
		}

		e := models.NewWeightEntry(currentUserID(), models.ToKilograms(value, weightUnit), weightUnit)
		if err := db.SaveWeightEntry(e); err != nil {
			return fmt.Errorf("failed to save weight entry: %w", err)
		}
		afterMutation()

		color.Green("✓ Logged weight")
		fmt.Printf("  %s %.1f %s\n",
			color.New(color.Faint).Sprint(shortID(e.ID)), value, weightUnit)
		return nil
	},
}

var weightListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List weight entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := db.ListWeightEntries(currentUserID(), weightLimit)
		if err != nil {
			return fmt.Errorf("failed to list weight entries: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No weight entries found.")
			return nil
		}

		displayUnit := "kg"
		if prefs.UnitSystem() == "imperial" {
			displayUnit = "lb"
		}

		faint := color.New(color.Faint)
		for _, e := range entries {
			fmt.Printf("%s %s %.1f %s\n",
				faint.Sprint(shortID(e.ID)),
				faint.Sprint(e.Date.Format("2006-01-02 15:04")),
				models.FromKilograms(e.Weight, displayUnit),
				displayUnit)
		}
		return nil
	},
}

var weightDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a weight entry locally and in the cloud",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if engine != nil {
			err = engine.DeleteWeightEntry(args[0])
		} else {
			_, err = db.DeleteWeightEntry(args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to delete weight entry: %w", err)
		}

		color.Green("✓ Deleted weight entry %s", args[0])
		return nil
	},
}

func init() {
	weightAddCmd.Flags().StringVar(&weightUnit, "unit", "kg", "input unit (kg or lb)")
	weightListCmd.Flags().IntVarP(&weightLimit, "limit", "n", 20, "max number of results")

	weightCmd.AddCommand(weightAddCmd)
	weightCmd.AddCommand(weightListCmd)
	weightCmd.AddCommand(weightDeleteCmd)
	rootCmd.AddCommand(weightCmd)
}
