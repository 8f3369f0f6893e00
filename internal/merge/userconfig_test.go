// ABOUTME: Tests for the config-bundle field merge.
// ABOUTME: Pins whole-field overwrite and the timestamp arbitration rule.
package merge

import (
	"testing"
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

func TestBundlesRemoteFieldsReplaceWholesale(t *testing.T) {
	local := &models.UserConfigBundle{
		UserID:        "user-1",
		ExerciseNotes: map[string]string{"Squat": "local note", "Bench Press": "keep?"},
		RestPrefs:     map[string]int{"Squat": 120},
	}
	remote := &models.UserConfigBundle{
		UserID:        "user-1",
		ExerciseNotes: map[string]string{"Squat": "remote note"},
	}

	out := Bundles(local, remote)

	// Coarse overwrite: the whole notes map is replaced, not deep-merged.
	if len(out.ExerciseNotes) != 1 || out.ExerciseNotes["Squat"] != "remote note" {
		t.Errorf("ExerciseNotes = %v, want whole-field remote value", out.ExerciseNotes)
	}
	// Remote had no rest prefs; local field survives.
	if out.RestPrefs["Squat"] != 120 {
		t.Errorf("RestPrefs = %v, want local value kept", out.RestPrefs)
	}
}

func TestBundlesMetricDimensionTimestampArbitration(t *testing.T) {
	older := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	local := &models.UserConfigBundle{
		MetricDimensions:          map[string][]string{"Run": {"distance"}},
		MetricDimensionsUpdatedAt: newer,
	}
	remote := &models.UserConfigBundle{
		MetricDimensions:          map[string][]string{"Run": {"duration"}},
		MetricDimensionsUpdatedAt: older,
	}

	// Remote older: local config wins.
	out := Bundles(local, remote)
	if out.MetricDimensions["Run"][0] != "distance" {
		t.Errorf("older remote dimensions applied: %v", out.MetricDimensions)
	}
	if !out.MetricDimensionsUpdatedAt.Equal(newer) {
		t.Errorf("timestamp = %v, want local %v", out.MetricDimensionsUpdatedAt, newer)
	}

	// Remote newer: remote config wins.
	local.MetricDimensionsUpdatedAt = older
	remote.MetricDimensionsUpdatedAt = newer
	out = Bundles(local, remote)
	if out.MetricDimensions["Run"][0] != "duration" {
		t.Errorf("newer remote dimensions not applied: %v", out.MetricDimensions)
	}

	// Equal timestamps: local wins (strictly-newer rule).
	local.MetricDimensionsUpdatedAt = newer
	local.MetricDimensions = map[string][]string{"Run": {"distance"}}
	out = Bundles(local, remote)
	if out.MetricDimensions["Run"][0] != "distance" {
		t.Errorf("tie should keep local dimensions: %v", out.MetricDimensions)
	}
}

func TestBundlesNilRemote(t *testing.T) {
	local := &models.UserConfigBundle{
		UserID:  "user-1",
		Starred: map[string]bool{"Squat": true},
	}
	out := Bundles(local, nil)
	if !out.Starred["Squat"] {
		t.Error("nil remote should return local bundle unchanged")
	}
}
