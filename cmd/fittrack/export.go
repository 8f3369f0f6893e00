// ABOUTME: CLI commands for JSON export and import.
// ABOUTME: Round-trips the full training log through one JSON document.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data as JSON",
	Long: `Export workouts, weight entries, measurements, and goals as one JSON
document. Writes to stdout unless --output is given.

Examples:
  fittrack export > backup.json
  fittrack export --output backup.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		export, err := db.Export(currentUserID())
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		data, err := export.MarshalIndent()
		if err != nil {
			return fmt.Errorf("failed to encode export: %w", err)
		}

		if exportOutput == "" {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(exportOutput, data, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}

		color.Green("✓ Exported to %s", exportOutput)
		fmt.Printf("  Workouts: %d  Weight entries: %d  Measurements: %d  Goals: %d\n",
			len(export.Workouts), len(export.WeightLog), len(export.Measurements), len(export.Goals))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data from a JSON export",
	Long: `Import a JSON export produced by 'fittrack export'. Records are upserted
by id, so importing the same file twice is harmless.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		var export storage.ExportData
		if err := json.Unmarshal(raw, &export); err != nil {
			return fmt.Errorf("failed to parse export: %w", err)
		}

		if err := db.Import(&export); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		afterMutation()

		color.Green("✓ Imported %s", args[0])
		fmt.Printf("  Workouts: %d  Weight entries: %d  Measurements: %d  Goals: %d\n",
			len(export.Workouts), len(export.WeightLog), len(export.Measurements), len(export.Goals))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
