// ABOUTME: CLI commands for Charm-based sync.
// ABOUTME: Supports now, status, link, unlink, and reset operations.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"sort"
	"time"

	"github.com/fatih/color"
	syncengine "github.com/harperreed/fittrack/internal/sync"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"s"},
	Short:   "Sync fitness data across devices",
	Long: `Sync fitness data across devices using Charm Cloud.

Your data is E2E encrypted with your SSH key before upload. The server
never sees your unencrypted training log.

GETTING STARTED:

  1. Link your device (creates/uses SSH key automatically):
     fittrack sync link

  2. On other devices, link with the same Charm account:
     fittrack sync link

  3. Check sync status:
     fittrack sync status

COMMANDS:

  now         Run a full sync pass
  status      Show sync status and per-entity results of the last pass
  link        Link this device to your Charm account
  unlink      Disconnect this device from Charm
  reset       Reset local cloud cache and re-pull (destructive)

Workouts, weight, measurements, and goals sync immediately after each
change. Preference edits are debounced into one pass.`,
}

var syncNowCmd = &cobra.Command{
	Use:   "now",
	Short: "Run a full sync pass",
	RunE: func(cmd *cobra.Command, args []string) error {
		if engine == nil {
			color.Yellow("Not linked to Charm")
			fmt.Println("\nRun 'fittrack sync link' to connect.")
			return nil
		}

		report, err := engine.SyncNow(cmd.Context())
		if err != nil {
			printReport(report)
			return fmt.Errorf("sync failed: %w", err)
		}

		color.Green("✓ Sync complete (%s)",
			report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond))
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	RunE: func(cmd *cobra.Command, args []string) error {
		if engine == nil {
			color.Yellow("Not linked to Charm")
			fmt.Println("\nRun 'fittrack sync link' to connect.")
			return nil
		}

		fmt.Println("Charm ID:", userID)
		fmt.Println("State:   ", engine.State())

		workouts, _ := db.ListWorkouts(userID, 0)
		entries, _ := db.ListWeightEntries(userID, 0)
		goalList, _ := db.ListGoals(userID, false)

		color.Green("✓ Connected to Charm")
		fmt.Printf("  Workouts: %d\n", len(workouts))
		fmt.Printf("  Weight entries: %d\n", len(entries))
		fmt.Printf("  Goals: %d\n", len(goalList))

		if report := engine.LastReport(); report != nil {
			fmt.Println()
			printReport(report)
		}
		return nil
	},
}

var syncLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link this device to Charm",
	Long: `Link this device to your Charm account.

If you don't have a Charm account, one will be created using your SSH key.
If you already have an account, you'll be prompted to link via charm.sh.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		charmCmd := exec.Command("charm", "link")
		charmCmd.Stdin = os.Stdin
		charmCmd.Stdout = os.Stdout
		charmCmd.Stderr = os.Stderr

		if err := charmCmd.Run(); err != nil {
			return fmt.Errorf("failed to link: %w\n\nMake sure 'charm' CLI is installed: go install github.com/charmbracelet/charm@latest", err)
		}

		color.Green("\n✓ Device linked to Charm")
		fmt.Println("Your fitness data will now sync automatically across devices.")

		if engine != nil {
			if report, err := engine.SyncNow(cmd.Context()); err != nil {
				color.Yellow("⚠ Initial sync failed: %v", err)
				printReport(report)
			} else {
				color.Green("✓ Initial sync complete")
			}
		}
		return nil
	},
}

var syncUnlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Disconnect from Charm",
	Long: `Disconnect this device from Charm.

This does not delete your local fitness data. You can link again later
with 'fittrack sync link'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		charmCmd := exec.Command("charm", "unlink")
		charmCmd.Stdin = os.Stdin
		charmCmd.Stdout = os.Stdout
		charmCmd.Stderr = os.Stderr

		if err := charmCmd.Run(); err != nil {
			return fmt.Errorf("failed to unlink: %w", err)
		}

		color.Green("✓ Device unlinked from Charm")
		fmt.Println("Your local fitness data is preserved.")
		return nil
	},
}

var syncResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the local cloud cache and re-pull",
	Long: `Delete the local cloud cache and re-pull everything from Charm Cloud.

Use this to recover from cache corruption. Your SQLite data is untouched;
the next sync pass re-merges it against the fresh cloud state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if remoteClient == nil {
			color.Yellow("Not linked to Charm")
			return nil
		}

		fmt.Println("This will delete the local cloud cache and re-pull from Charm.")
		fmt.Print("Continue? [y/N]: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "y" && confirm != "Y" {
			fmt.Println("Canceled.")
			return nil
		}

		if err := remoteClient.Reset(); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}

		color.Green("✓ Cloud cache reset")
		if engine != nil {
			if _, err := engine.SyncNow(cmd.Context()); err != nil {
				return fmt.Errorf("re-sync failed: %w", err)
			}
			color.Green("✓ Re-synced from cloud")
		}
		return nil
	},
}

// printReport shows per-entity results of a pass.
func printReport(report *syncengine.Report) {
	if report == nil {
		return
	}
	fmt.Printf("Last pass: %s\n", report.StartedAt.Format("2006-01-02 15:04:05"))
	if !report.Failed() {
		color.Green("  ✓ all entity types synced")
		return
	}
	names := make([]string, 0, len(report.Errors))
	for name := range report.Errors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		color.Red("  ✗ %s: %v", name, report.Errors[name])
	}
}

func init() {
	syncCmd.AddCommand(syncNowCmd)
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncLinkCmd)
	syncCmd.AddCommand(syncUnlinkCmd)
	syncCmd.AddCommand(syncResetCmd)
	rootCmd.AddCommand(syncCmd)
}
