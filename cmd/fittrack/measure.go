// ABOUTME: CLI commands for body measurements.
// ABOUTME: User-defined metric names form independent time series.
package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	measureUnit  string
	measureLimit int
)

var measureCmd = &cobra.Command{
	Use:     "measure",
	Aliases: []string{"m"},
	Short:   "Log and browse body measurements",
	Long: `Log and browse body measurements.

The measurement name is free-form: all entries sharing a name form that
metric's time series (waist, biceps, body_fat, resting_hr, whatever you
want to track).

Examples:
  fittrack measure add waist 84 --unit cm
  fittrack measure add body_fat 18.5 --unit %
  fittrack measure list              # latest value of every metric
  fittrack measure list waist        # full waist history
  fittrack measure delete ab12`,
}

var measureAddCmd = &cobra.Command{
	Use:   "add <name> <value>",
	Short: "Log a measurement",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[1])
		}

		m := models.NewMeasurement(currentUserID(), args[0], value, measureUnit)
		if err := db.SaveMeasurement(m); err != nil {
			return fmt.Errorf("failed to save measurement: %w", err)
		}
		afterMutation()

		color.Green("✓ Logged %s", m.Name)
		fmt.Printf("  %s %.1f %s\n",
			color.New(color.Faint).Sprint(shortID(m.ID)), m.Value, m.Unit)
		return nil
	},
}

var measureListCmd = &cobra.Command{
	Use:     "list [name]",
	Aliases: []string{"ls"},
	Short:   "List measurements",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)

		// Without a name, show the latest value of every tracked metric.
		if len(args) == 0 {
			latest, err := db.LatestMeasurements(currentUserID())
			if err != nil {
				return fmt.Errorf("failed to load measurements: %w", err)
			}
			if len(latest) == 0 {
				fmt.Println("No measurements found.")
				return nil
			}
			names := make([]string, 0, len(latest))
			for name := range latest {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				m := latest[name]
				fmt.Printf("%s %s %.1f %s\n",
					faint.Sprint(m.Date.Format("2006-01-02")),
					padRight(name, 16), m.Value, m.Unit)
			}
			return nil
		}

		history, err := db.ListMeasurements(currentUserID(), args[0], measureLimit)
		if err != nil {
			return fmt.Errorf("failed to list measurements: %w", err)
		}
		if len(history) == 0 {
			fmt.Println("No measurements found.")
			return nil
		}
		for _, m := range history {
			fmt.Printf("%s %s %.1f %s\n",
				faint.Sprint(shortID(m.ID)),
				faint.Sprint(m.Date.Format("2006-01-02 15:04")),
				m.Value, m.Unit)
		}
		return nil
	},
}

var measureDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a measurement locally and in the cloud",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if engine != nil {
			err = engine.DeleteMeasurement(args[0])
		} else {
			_, err = db.DeleteMeasurement(args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to delete measurement: %w", err)
		}

		color.Green("✓ Deleted measurement %s", args[0])
		return nil
	},
}

func init() {
	measureAddCmd.Flags().StringVar(&measureUnit, "unit", "", "unit of measurement (cm, %, kg)")
	measureListCmd.Flags().IntVarP(&measureLimit, "limit", "n", 20, "max number of results")

	measureCmd.AddCommand(measureAddCmd)
	measureCmd.AddCommand(measureListCmd)
	measureCmd.AddCommand(measureDeleteCmd)
	rootCmd.AddCommand(measureCmd)
}
