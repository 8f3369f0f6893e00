// ABOUTME: CLI commands for workout sessions.
// ABOUTME: Supports add, set logging, list, show, and delete.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	workoutDate  string
	workoutNotes string
	setCategory  string
	setWeight    float64
	setReps      int
	setDistance  float64
	setDuration  float64
	workoutLimit int
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Log and browse workout sessions",
	Long: `Log and browse workout sessions.

A session is a titled, dated container for exercises; each exercise holds
the sets you logged for it.

Examples:
  fittrack workout add "Push Day"
  fittrack workout set ab12 "Bench Press" --weight 80 --reps 8
  fittrack workout set ab12 "Morning Run" --distance 5.2 --duration 1800
  fittrack workout list
  fittrack workout show ab12
  fittrack workout delete ab12`,
}

var workoutAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a workout session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := models.NewWorkoutSession(currentUserID(), args[0])

		if workoutDate != "" {
			t, err := parseTime(workoutDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s", workoutDate)
			}
			w.WithDate(t)
		}
		if workoutNotes != "" {
			w.WithNotes(workoutNotes)
		}

		if err := db.SaveWorkout(w); err != nil {
			return fmt.Errorf("failed to save workout: %w", err)
		}
		afterMutation()

		color.Green("✓ Added workout %q", w.Title)
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(w.ID),
			w.Date.Format("2006-01-02 15:04"))
		return nil
	},
}

var workoutSetCmd = &cobra.Command{
	Use:   "set <workout-id> <exercise>",
	Short: "Log a set within a session",
	Long: `Log one set for an exercise within an existing session. The first set
for a new exercise name adds the exercise to the session; later sets with
the same name append to it.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := db.GetWorkout(args[0])
		if err != nil {
			return fmt.Errorf("workout not found: %s", args[0])
		}

		name := args[1]
		var ex *models.Exercise
		for i := range w.Exercises {
			if strings.EqualFold(w.Exercises[i].Name, name) {
				ex = &w.Exercises[i]
				break
			}
		}
		if ex == nil {
			ex = w.AddExercise(name, setCategory)
		}

		ex.AddSet(models.SetLog{
			Weight:   setWeight,
			Reps:     setReps,
			Distance: setDistance,
			Duration: setDuration,
		})

		if err := db.SaveWorkout(w); err != nil {
			return fmt.Errorf("failed to save workout: %w", err)
		}
		afterMutation()

		color.Green("✓ Logged set for %s", ex.Name)
		fmt.Printf("  %s set %d\n",
			color.New(color.Faint).Sprint(w.ID), len(ex.Sets))
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts, err := db.ListWorkouts(currentUserID(), workoutLimit)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}
		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, w := range workouts {
			fmt.Printf("%s %s %s  %d exercises, %d sets\n",
				faint.Sprint(shortID(w.ID)),
				faint.Sprint(w.Date.Format("2006-01-02")),
				padRight(w.Title, 24),
				len(w.Exercises), w.TotalSets())
		}
		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <workout-id>",
	Short: "Show a session with all sets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := db.GetWorkout(args[0])
		if err != nil {
			return fmt.Errorf("workout not found: %s", args[0])
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s  %s\n", w.Title, faint.Sprint(w.Date.Format("2006-01-02 15:04")))
		if w.Notes != "" {
			fmt.Printf("  %s\n", faint.Sprint(w.Notes))
		}
		for _, ex := range w.Exercises {
			fmt.Printf("\n  %s\n", ex.Name)
			for i, set := range ex.Sets {
				fmt.Printf("    %d. %s\n", i+1, formatSet(set))
			}
		}
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <workout-id>",
	Aliases: []string{"rm"},
	Short:   "Delete a session locally and in the cloud",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if engine != nil {
			err = engine.DeleteWorkout(args[0])
		} else {
			_, err = db.DeleteWorkout(args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}

		color.Green("✓ Deleted workout %s", args[0])
		return nil
	},
}

func formatSet(s models.SetLog) string {
	var parts []string
	if s.Weight > 0 {
		parts = append(parts, fmt.Sprintf("%.1f kg", s.Weight))
	}
	if s.Reps > 0 {
		parts = append(parts, fmt.Sprintf("%d reps", s.Reps))
	}
	if s.Distance > 0 {
		parts = append(parts, fmt.Sprintf("%.2f km", s.Distance))
	}
	if s.Duration > 0 {
		parts = append(parts, (time.Duration(s.Duration) * time.Second).String())
	}
	for name, v := range s.Custom {
		parts = append(parts, fmt.Sprintf("%s %.1f", name, v))
	}
	if len(parts) == 0 {
		return "(empty set)"
	}
	out := strings.Join(parts, " × ")
	if len(s.SubSets) > 0 {
		out += fmt.Sprintf(" +%d sub-sets", len(s.SubSets))
	}
	return out
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func init() {
	workoutAddCmd.Flags().StringVar(&workoutDate, "date", "", "session date (YYYY-MM-DD or YYYY-MM-DD HH:MM)")
	workoutAddCmd.Flags().StringVar(&workoutNotes, "notes", "", "free-text session notes")
	workoutSetCmd.Flags().StringVar(&setCategory, "category", "", "exercise category (chest, legs, cardio)")
	workoutSetCmd.Flags().Float64Var(&setWeight, "weight", 0, "set weight in kg")
	workoutSetCmd.Flags().IntVar(&setReps, "reps", 0, "repetitions")
	workoutSetCmd.Flags().Float64Var(&setDistance, "distance", 0, "distance in km")
	workoutSetCmd.Flags().Float64Var(&setDuration, "duration", 0, "duration in seconds")
	workoutListCmd.Flags().IntVarP(&workoutLimit, "limit", "n", 20, "max number of results")

	workoutCmd.AddCommand(workoutAddCmd)
	workoutCmd.AddCommand(workoutSetCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutShowCmd)
	workoutCmd.AddCommand(workoutDeleteCmd)
	rootCmd.AddCommand(workoutCmd)
}
