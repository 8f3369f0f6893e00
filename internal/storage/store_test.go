// ABOUTME: Tests for the generic document-table operations.
// ABOUTME: Covers upsert semantics, user scoping, prefix resolution, clear.
package storage

import (
	"errors"
	"testing"

	"github.com/harperreed/fittrack/internal/models"
)

func TestPutIsUpsert(t *testing.T) {
	db := setupTestDB(t)

	e := models.NewWeightEntry("user-1", 82.5, "kg")
	if err := Put(db, TableWeightEntries, e.ID, e.UserID, e); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	e.Weight = 81.0
	if err := Put(db, TableWeightEntries, e.ID, e.UserID, e); err != nil {
		t.Fatalf("second Put failed: %v", err)
	}

	got, err := Get[models.WeightEntry](db, TableWeightEntries, e.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Weight != 81.0 {
		t.Errorf("Weight = %v, want 81 (replaced)", got.Weight)
	}

	entries, err := List[models.WeightEntry](db, TableWeightEntries, "user-1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 entry after upsert, got %d", len(entries))
	}
}

func TestListScopedByUser(t *testing.T) {
	db := setupTestDB(t)

	mine := models.NewWeightEntry("user-1", 82, "kg")
	theirs := models.NewWeightEntry("user-2", 70, "kg")
	for _, e := range []*models.WeightEntry{mine, theirs} {
		if err := Put(db, TableWeightEntries, e.ID, e.UserID, e); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	entries, err := List[models.WeightEntry](db, TableWeightEntries, "user-1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != mine.ID {
		t.Errorf("List should return only user-1 entries, got %d", len(entries))
	}
}

func TestDeleteAbsentIsNoop(t *testing.T) {
	db := setupTestDB(t)
	if err := db.Delete(TableWeightEntries, "nope"); err != nil {
		t.Errorf("deleting absent id should not error: %v", err)
	}
}

func TestUnknownTableRejected(t *testing.T) {
	db := setupTestDB(t)
	if _, err := List[models.WeightEntry](db, "users; DROP TABLE goals", "u"); err == nil {
		t.Error("expected error for unknown table name")
	}
}

func TestResolveID(t *testing.T) {
	db := setupTestDB(t)

	w := &models.WorkoutSession{ID: "1710000000000-0001", UserID: "user-1", Title: "A"}
	w2 := &models.WorkoutSession{ID: "1720000000000-0002", UserID: "user-1", Title: "B"}
	for _, s := range []*models.WorkoutSession{w, w2} {
		if err := db.SaveWorkout(s); err != nil {
			t.Fatalf("SaveWorkout failed: %v", err)
		}
	}

	id, err := db.ResolveID(TableWorkouts, "1710")
	if err != nil {
		t.Fatalf("ResolveID failed: %v", err)
	}
	if id != w.ID {
		t.Errorf("ResolveID = %s, want %s", id, w.ID)
	}

	if _, err := db.ResolveID(TableWorkouts, "17"); !errors.Is(err, ErrAmbiguous) {
		t.Errorf("expected ErrAmbiguous for shared prefix, got %v", err)
	}
	if _, err := db.ResolveID(TableWorkouts, "999"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClear(t *testing.T) {
	db := setupTestDB(t)

	e := models.NewWeightEntry("user-1", 82, "kg")
	if err := db.SaveWeightEntry(e); err != nil {
		t.Fatalf("SaveWeightEntry failed: %v", err)
	}
	if err := db.Clear(TableWeightEntries); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	entries, err := db.ListWeightEntries("user-1", 0)
	if err != nil {
		t.Fatalf("ListWeightEntries failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty table after Clear, got %d entries", len(entries))
	}
}
