// ABOUTME: Root Cobra command for fittrack CLI.
// ABOUTME: Opens storage and prefs, and wires the sync engine when linked.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/config"
	"github.com/harperreed/fittrack/internal/goals"
	"github.com/harperreed/fittrack/internal/remote"
	"github.com/harperreed/fittrack/internal/storage"
	syncengine "github.com/harperreed/fittrack/internal/sync"
	"github.com/spf13/cobra"
)

var (
	db           *storage.DB
	prefs        *config.Prefs
	remoteClient *remote.Client
	engine       *syncengine.Engine
	userID       string
)

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "Personal fitness tracker",
	Long: `Fittrack is a CLI tool for logging workouts, body weight, measurements,
and fitness goals, with automatic sync across devices.

QUICK START:

  $ fittrack workout add "Push Day"            # Start a workout session
  $ fittrack workout set ab12 "Bench Press" --weight 80 --reps 8
  $ fittrack weight add 82.5                   # Log body weight (kg)
  $ fittrack weight add 180 --unit lb          # Or in pounds
  $ fittrack measure add waist 84 --unit cm    # Log a body measurement
  $ fittrack goal add strength "Bench 100kg" 100 --auto max_weight --exercise "Bench Press"
  $ fittrack workout list                      # See recent sessions

GOALS:

  Goals track weight, strength, or training-frequency targets. Auto goals
  recompute from your logged data after every mutation:

    max_weight       heaviest set for an exercise
    session_count    sessions this calendar month
    body_weight      your latest weight entry

SYNC (AUTOMATIC):

  Sync fitness data across devices using Charm Cloud. Data is E2E encrypted
  with your SSH key.

  $ fittrack sync link      # Link device to your Charm account
  $ fittrack sync status    # Check sync status
  $ fittrack sync now       # Run a full sync pass

  Logging a workout, weight, measurement, or goal syncs immediately.
  Preference changes are debounced into one pass.

MCP INTEGRATION:

  Run 'fittrack mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "fittrack": { "command": "fittrack", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Workouts, weight, measurements, and goals live in SQLite at
  ~/.local/share/fittrack/fittrack.db. Preferences live as JSON blobs in
  ~/.config/fittrack/. The cloud copy lives in Charm KV.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip setup for commands that don't touch data
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		prefs, err = config.OpenDefault()
		if err != nil {
			return fmt.Errorf("failed to open config: %w", err)
		}
		db, err = storage.OpenDefault()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}

		// Without a Charm link the CLI runs local-only; every command except
		// sync still works.
		remoteClient, err = remote.InitClient()
		if err != nil {
			return nil
		}
		userID, err = remoteClient.UserID()
		if err != nil {
			return nil
		}

		logger := log.New(os.Stderr)
		logger.SetLevel(log.WarnLevel)
		engine = syncengine.New(db, remoteClient, prefs, userID, logger)
		// Pulled records can move auto-goal values, so recompute after
		// every pass.
		engine.OnReload(func() {
			if _, err := goals.Recompute(db, userID); err != nil {
				logger.Warn("auto-goal recompute failed", "err", err)
			}
		})
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if engine != nil {
			engine.Stop()
		}
		if remoteClient != nil {
			if err := remoteClient.Close(); err != nil {
				return err
			}
		}
		if db != nil {
			return db.Close()
		}
		return nil
	},
}

// currentUserID returns the linked Charm user id, or the stable device id
// when running local-only.
func currentUserID() string {
	if userID != "" {
		return userID
	}
	device, err := prefs.Device()
	if err != nil {
		return "local"
	}
	return device.DeviceID
}

// afterMutation recomputes auto goals and runs an immediate sync pass. A
// pass already in flight is fine; the change rides along on the next one.
func afterMutation() {
	if _, err := goals.Recompute(db, currentUserID()); err != nil {
		color.Yellow("⚠ Goal auto-update failed: %v", err)
	}
	if engine == nil {
		return
	}
	if _, err := engine.SyncNow(context.Background()); err != nil && !errors.Is(err, syncengine.ErrSyncInProgress) {
		color.Yellow("⚠ Sync failed: %v", err)
	}
}
