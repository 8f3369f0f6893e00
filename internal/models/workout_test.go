// ABOUTME: Tests for WorkoutSession model construction and helpers.
// ABOUTME: Covers ID generation, completeness checks, and set counting.
package models

import (
	"testing"
	"time"
)

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestNewWorkoutSession(t *testing.T) {
	w := NewWorkoutSession("user-1", "Push Day")

	if w.ID == "" {
		t.Error("expected generated ID")
	}
	if w.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1", w.UserID)
	}
	if w.Title != "Push Day" {
		t.Errorf("Title = %q, want Push Day", w.Title)
	}
	if time.Since(w.Date) > time.Minute {
		t.Errorf("Date not set to now: %v", w.Date)
	}
}

func TestAddExerciseAndSets(t *testing.T) {
	w := NewWorkoutSession("user-1", "Legs")
	ex := w.AddExercise("Squat", "legs")
	ex.AddSet(SetLog{Weight: 100, Reps: 5})
	ex.AddSet(SetLog{Weight: 105, Reps: 3})

	if len(w.Exercises) != 1 {
		t.Fatalf("expected 1 exercise, got %d", len(w.Exercises))
	}
	if got := w.Exercises[0]; len(got.Sets) != 2 {
		t.Fatalf("expected 2 sets, got %d", len(got.Sets))
	}
	if w.Exercises[0].Sets[0].ID == "" {
		t.Error("set should get an ID when added without one")
	}
	if w.TotalSets() != 2 {
		t.Errorf("TotalSets = %d, want 2", w.TotalSets())
	}
	if w.Exercises[0].Config == nil {
		t.Fatal("new exercise should carry a default instance config")
	}
	if w.Exercises[0].Config.BodyweightMode != BodyweightNone {
		t.Errorf("BodyweightMode = %q, want %q", w.Exercises[0].Config.BodyweightMode, BodyweightNone)
	}
}

func TestIsComplete(t *testing.T) {
	w := NewWorkoutSession("user-1", "Empty")
	if w.IsComplete() {
		t.Error("session with no exercises should not be complete")
	}

	w.AddExercise("Bench Press", "chest")
	if w.IsComplete() {
		t.Error("session whose exercises have no sets should not be complete")
	}

	w.Exercises[0].AddSet(SetLog{Weight: 60, Reps: 10})
	if !w.IsComplete() {
		t.Error("session with a logged set should be complete")
	}
}

func TestSubSets(t *testing.T) {
	ex := Exercise{ID: NewID(), Name: "Curl"}
	ex.AddSet(SetLog{
		Weight: 20,
		Reps:   10,
		SubSets: []SubSetLog{
			{Weight: 15, Reps: 8, RestSeconds: 15},
			{Weight: 10, Reps: 8, Note: "to failure"},
		},
	})

	if got := len(ex.Sets[0].SubSets); got != 2 {
		t.Fatalf("expected 2 sub-sets, got %d", got)
	}
}
