// ABOUTME: Tests for the typed entity helpers (workouts, entries, goals).
// ABOUTME: Covers sorting, latest-value queries, filtering, and export.
package storage

import (
	"testing"
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

func TestListWorkoutsSortedNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	base := time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)

	for i, title := range []string{"Mon", "Wed", "Fri"} {
		w := models.NewWorkoutSession("user-1", title).WithDate(base.AddDate(0, 0, i*2))
		if err := db.SaveWorkout(w); err != nil {
			t.Fatalf("SaveWorkout failed: %v", err)
		}
	}

	workouts, err := db.ListWorkouts("user-1", 0)
	if err != nil {
		t.Fatalf("ListWorkouts failed: %v", err)
	}
	if len(workouts) != 3 {
		t.Fatalf("expected 3 workouts, got %d", len(workouts))
	}
	if workouts[0].Title != "Fri" || workouts[2].Title != "Mon" {
		t.Errorf("workouts not sorted newest first: %s, %s, %s",
			workouts[0].Title, workouts[1].Title, workouts[2].Title)
	}

	limited, err := db.ListWorkouts("user-1", 2)
	if err != nil {
		t.Fatalf("ListWorkouts with limit failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("expected 2 workouts with limit, got %d", len(limited))
	}
}

func TestWorkoutRoundTripPreservesNesting(t *testing.T) {
	db := setupTestDB(t)

	w := models.NewWorkoutSession("user-1", "Pull")
	ex := w.AddExercise("Deadlift", "back")
	ex.AddSet(models.SetLog{
		Weight: 140,
		Reps:   5,
		SubSets: []models.SubSetLog{{Weight: 100, Reps: 8, RestSeconds: 20}},
	})

	if err := db.SaveWorkout(w); err != nil {
		t.Fatalf("SaveWorkout failed: %v", err)
	}

	got, err := db.GetWorkout(w.ID)
	if err != nil {
		t.Fatalf("GetWorkout failed: %v", err)
	}
	if len(got.Exercises) != 1 || len(got.Exercises[0].Sets) != 1 {
		t.Fatal("exercise or set lost in round trip")
	}
	set := got.Exercises[0].Sets[0]
	if len(set.SubSets) != 1 || set.SubSets[0].RestSeconds != 20 {
		t.Errorf("sub-set lost or mangled: %+v", set.SubSets)
	}
	if got.Exercises[0].Config == nil || got.Exercises[0].Config.PyramidMode != models.PyramidDecreasing {
		t.Errorf("instance config lost: %+v", got.Exercises[0].Config)
	}
}

func TestCurrentWeight(t *testing.T) {
	db := setupTestDB(t)

	if _, err := db.CurrentWeight("user-1"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound with no entries, got %v", err)
	}

	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	older := &models.WeightEntry{ID: "a", UserID: "user-1", Weight: 84, Date: base, Unit: "kg"}
	newer := &models.WeightEntry{ID: "b", UserID: "user-1", Weight: 82, Date: base.AddDate(0, 0, 7), Unit: "kg"}
	for _, e := range []*models.WeightEntry{older, newer} {
		if err := db.SaveWeightEntry(e); err != nil {
			t.Fatalf("SaveWeightEntry failed: %v", err)
		}
	}

	got, err := db.CurrentWeight("user-1")
	if err != nil {
		t.Fatalf("CurrentWeight failed: %v", err)
	}
	if got.ID != "b" {
		t.Errorf("CurrentWeight = %s, want entry b (max date)", got.ID)
	}
}

func TestListMeasurementsFilterByName(t *testing.T) {
	db := setupTestDB(t)

	for _, m := range []*models.Measurement{
		models.NewMeasurement("user-1", "waist", 90, "cm"),
		models.NewMeasurement("user-1", "waist", 89, "cm"),
		models.NewMeasurement("user-1", "biceps", 38, "cm"),
	} {
		if err := db.SaveMeasurement(m); err != nil {
			t.Fatalf("SaveMeasurement failed: %v", err)
		}
	}

	waist, err := db.ListMeasurements("user-1", "waist", 0)
	if err != nil {
		t.Fatalf("ListMeasurements failed: %v", err)
	}
	if len(waist) != 2 {
		t.Errorf("expected 2 waist entries, got %d", len(waist))
	}

	latest, err := db.LatestMeasurements("user-1")
	if err != nil {
		t.Fatalf("LatestMeasurements failed: %v", err)
	}
	if len(latest) != 2 {
		t.Errorf("expected 2 distinct names, got %d", len(latest))
	}
}

func TestListGoalsActiveFirst(t *testing.T) {
	db := setupTestDB(t)

	done := models.NewGoal("user-1", models.GoalWeight, "old cut", 78)
	done.Complete()
	active := models.NewGoal("user-1", models.GoalStrength, "squat 140", 140)
	for _, g := range []*models.Goal{done, active} {
		if err := db.SaveGoal(g); err != nil {
			t.Fatalf("SaveGoal failed: %v", err)
		}
	}

	goals, err := db.ListGoals("user-1", false)
	if err != nil {
		t.Fatalf("ListGoals failed: %v", err)
	}
	if len(goals) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(goals))
	}
	if !goals[0].Active() || goals[1].Active() {
		t.Error("active goals should sort before completed ones")
	}

	activeOnly, err := db.ListGoals("user-1", true)
	if err != nil {
		t.Fatalf("ListGoals activeOnly failed: %v", err)
	}
	if len(activeOnly) != 1 || activeOnly[0].ID != active.ID {
		t.Errorf("activeOnly should return just the active goal")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := setupTestDB(t)

	w := models.NewWorkoutSession("user-1", "Push")
	w.AddExercise("Bench Press", "chest").AddSet(models.SetLog{Weight: 80, Reps: 8})
	if err := src.SaveWorkout(w); err != nil {
		t.Fatalf("SaveWorkout failed: %v", err)
	}
	if err := src.SaveWeightEntry(models.NewWeightEntry("user-1", 82, "kg")); err != nil {
		t.Fatalf("SaveWeightEntry failed: %v", err)
	}
	if err := src.SaveGoal(models.NewGoal("user-1", models.GoalWeight, "cut", 78)); err != nil {
		t.Fatalf("SaveGoal failed: %v", err)
	}

	data, err := src.Export("user-1")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	dst := setupTestDB(t)
	if err := dst.Import(data); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	workouts, err := dst.ListWorkouts("user-1", 0)
	if err != nil {
		t.Fatalf("ListWorkouts failed: %v", err)
	}
	if len(workouts) != 1 || workouts[0].ID != w.ID {
		t.Errorf("workout missing after import")
	}
	goals, err := dst.ListGoals("user-1", false)
	if err != nil {
		t.Fatalf("ListGoals failed: %v", err)
	}
	if len(goals) != 1 {
		t.Errorf("goal missing after import")
	}
}
