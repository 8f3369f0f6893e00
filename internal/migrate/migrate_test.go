// ABOUTME: Tests for schema-evolution migrators.
// ABOUTME: Verifies backfill values and that migration is idempotent.
package migrate

import (
	"reflect"
	"testing"
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

func TestWorkoutBackfillsInstanceConfig(t *testing.T) {
	w := &models.WorkoutSession{
		ID:     "1",
		UserID: "user-1",
		Exercises: []models.Exercise{
			{ID: "ex-1", Name: "Squat"},
			{ID: "ex-2", Name: "Dips", Config: &models.InstanceConfig{BodyweightMode: models.BodyweightFull}},
		},
	}

	if !Workout(w) {
		t.Fatal("expected migration to report a change")
	}

	cfg := w.Exercises[0].Config
	if cfg == nil {
		t.Fatal("missing instance config not backfilled")
	}
	if cfg.EnablePyramid || cfg.AutoCalculateSubSets {
		t.Error("backfilled flags should default to false")
	}
	if cfg.BodyweightMode != models.BodyweightNone {
		t.Errorf("BodyweightMode = %q, want none", cfg.BodyweightMode)
	}
	if cfg.PyramidMode != models.PyramidDecreasing {
		t.Errorf("PyramidMode = %q, want decreasing", cfg.PyramidMode)
	}

	// Existing config must be untouched
	if w.Exercises[1].Config.BodyweightMode != models.BodyweightFull {
		t.Error("migration overwrote an existing instance config")
	}
}

func TestGoalBackfillsLegacyFields(t *testing.T) {
	created := time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)
	g := &models.Goal{
		ID:        "g-1",
		UserID:    "user-1",
		Type:      models.GoalWeight,
		Label:     "get to 80kg",
		CreatedAt: created,
	}

	if !Goal(g) {
		t.Fatal("expected migration to report a change")
	}

	if g.Title != "get to 80kg" {
		t.Errorf("Title = %q, want backfill from label", g.Title)
	}
	if !g.StartDate.Equal(created) {
		t.Errorf("StartDate = %v, want created-at %v", g.StartDate, created)
	}
	if g.DataSource != models.SourceManual {
		t.Errorf("DataSource = %q, want manual", g.DataSource)
	}
	if g.Progress == nil || len(g.Progress) != 0 {
		t.Errorf("Progress = %v, want empty slice", g.Progress)
	}
	if g.IsActive == nil || !*g.IsActive {
		t.Error("IsActive should backfill to true")
	}
}

func TestWeightEntryBackfillsUnit(t *testing.T) {
	e := &models.WeightEntry{ID: "1", UserID: "user-1", Weight: 82}
	if !WeightEntry(e) {
		t.Fatal("expected migration to report a change")
	}
	if e.Unit != "kg" {
		t.Errorf("Unit = %q, want kg", e.Unit)
	}
}

func TestMigrationIdempotent(t *testing.T) {
	w := &models.WorkoutSession{
		ID:        "1",
		UserID:    "user-1",
		Exercises: []models.Exercise{{ID: "ex-1", Name: "Squat"}},
	}
	g := &models.Goal{ID: "g-1", UserID: "user-1", Label: "old", CreatedAt: time.Now()}
	e := &models.WeightEntry{ID: "w-1", UserID: "user-1", Weight: 80}

	Workout(w)
	Goal(g)
	WeightEntry(e)

	onceW, onceG, onceE := *w, *g, *e

	if Workout(w) {
		t.Error("second workout migration should be a no-op")
	}
	if Goal(g) {
		t.Error("second goal migration should be a no-op")
	}
	if WeightEntry(e) {
		t.Error("second weight migration should be a no-op")
	}

	if !reflect.DeepEqual(onceW, *w) || !reflect.DeepEqual(onceG, *g) || !reflect.DeepEqual(onceE, *e) {
		t.Error("second migration changed record contents")
	}
}
