// ABOUTME: Integration tests for fittrack CLI.
// ABOUTME: Builds the binary and exercises the full logging workflow.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(projectRoot, "fittrack")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/fittrack")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(binary)

	// Point data, config, and charm storage at temp dirs
	tmpDir := t.TempDir()
	env := append(os.Environ(),
		"XDG_DATA_HOME="+filepath.Join(tmpDir, "data"),
		"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
		"CHARM_DATA_DIR="+filepath.Join(tmpDir, "charm"),
	)

	run := func(args ...string) (string, error) {
		cmd := exec.Command(binary, args...)
		cmd.Env = env
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Log a workout session
	output, err := run("workout", "add", "Push Day", "--notes", "felt strong")
	if err != nil {
		t.Fatalf("Failed to add workout: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Added workout") {
		t.Errorf("Expected 'Added workout' in output, got: %s", output)
	}

	// Grab the workout id from the list
	output, err = run("workout", "list")
	if err != nil {
		t.Fatalf("Failed to list workouts: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Push Day") {
		t.Fatalf("Expected 'Push Day' in list output, got: %s", output)
	}
	workoutID := strings.Fields(output)[0]

	// Log a set
	output, err = run("workout", "set", workoutID, "Bench Press", "--weight", "80", "--reps", "8")
	if err != nil {
		t.Fatalf("Failed to log set: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Logged set") {
		t.Errorf("Expected 'Logged set' in output, got: %s", output)
	}

	// Log body weight in pounds
	output, err = run("weight", "add", "180", "--unit", "lb")
	if err != nil {
		t.Fatalf("Failed to add weight: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Logged weight") {
		t.Errorf("Expected 'Logged weight' in output, got: %s", output)
	}

	// Stored canonically in kg
	output, err = run("weight", "list")
	if err != nil {
		t.Fatalf("Failed to list weight: %v\n%s", err, output)
	}
	if !strings.Contains(output, "81.6 kg") {
		t.Errorf("Expected converted weight in list output, got: %s", output)
	}

	// Imperial unit pref switches list display back to pounds
	output, err = run("prefs", "unit", "imperial")
	if err != nil {
		t.Fatalf("Failed to set unit system: %v\n%s", err, output)
	}
	output, err = run("weight", "list")
	if err != nil {
		t.Fatalf("Failed to list weight: %v\n%s", err, output)
	}
	if !strings.Contains(output, "180.0 lb") {
		t.Errorf("Expected imperial display in list output, got: %s", output)
	}
	if output, err = run("prefs", "unit", "metric"); err != nil {
		t.Fatalf("Failed to reset unit system: %v\n%s", err, output)
	}

	// Log a measurement
	output, err = run("measure", "add", "waist", "84", "--unit", "cm")
	if err != nil {
		t.Fatalf("Failed to add measurement: %v\n%s", err, output)
	}

	// Auto goal fed by the bench press set
	output, err = run("goal", "add", "strength", "Bench 100kg", "100",
		"--auto", "max_weight", "--exercise", "Bench Press")
	if err != nil {
		t.Fatalf("Failed to add goal: %v\n%s", err, output)
	}

	// The recompute runs on the next mutation; log another set to trigger it
	output, err = run("workout", "set", workoutID, "Bench Press", "--weight", "85", "--reps", "5")
	if err != nil {
		t.Fatalf("Failed to log second set: %v\n%s", err, output)
	}

	output, err = run("goal", "list")
	if err != nil {
		t.Fatalf("Failed to list goals: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Bench 100kg") {
		t.Errorf("Expected goal in list output, got: %s", output)
	}
	if !strings.Contains(output, "85.0/100.0") {
		t.Errorf("Expected auto-computed progress 85.0/100.0, got: %s", output)
	}

	// Preferences round trip
	output, err = run("prefs", "star", "Bench Press")
	if err != nil {
		t.Fatalf("Failed to star exercise: %v\n%s", err, output)
	}
	output, err = run("prefs", "show")
	if err != nil {
		t.Fatalf("Failed to show prefs: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Bench Press") {
		t.Errorf("Expected starred exercise in prefs output, got: %s", output)
	}

	// Export includes everything
	exportPath := filepath.Join(tmpDir, "backup.json")
	output, err = run("export", "--output", exportPath)
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	data, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("Failed to read export: %v", err)
	}
	for _, want := range []string{"Push Day", "waist", "Bench 100kg"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Expected %q in export, got: %s", want, data)
		}
	}

	// Delete the workout
	output, err = run("workout", "delete", workoutID)
	if err != nil {
		t.Fatalf("Failed to delete workout: %v\n%s", err, output)
	}
	output, err = run("workout", "list")
	if err != nil {
		t.Fatalf("Failed to list workouts: %v\n%s", err, output)
	}
	if !strings.Contains(output, "No workouts found") {
		t.Errorf("Expected empty list after delete, got: %s", output)
	}
}
