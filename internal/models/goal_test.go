// ABOUTME: Tests for the Goal model lifecycle helpers.
// ABOUTME: Covers progress recording, completion, and legacy title fallback.
package models

import "testing"

func TestNewGoalDefaults(t *testing.T) {
	g := NewGoal("user-1", GoalWeight, "Reach 80kg", 80)

	if g.DataSource != SourceManual {
		t.Errorf("DataSource = %q, want manual", g.DataSource)
	}
	if !g.Active() {
		t.Error("new goal should be active")
	}
	if g.Progress == nil {
		t.Error("Progress should be initialized, not nil")
	}
	if g.StartDate.IsZero() {
		t.Error("StartDate should be set")
	}
}

func TestRecordProgress(t *testing.T) {
	g := NewGoal("user-1", GoalStrength, "Squat 140", 140)
	g.RecordProgress(120, "")
	g.RecordProgress(125, "new belt")

	if g.CurrentValue != 125 {
		t.Errorf("CurrentValue = %v, want 125", g.CurrentValue)
	}
	if len(g.Progress) != 2 {
		t.Fatalf("expected 2 progress entries, got %d", len(g.Progress))
	}
	if g.Progress[1].Note != "new belt" {
		t.Errorf("Note = %q, want 'new belt'", g.Progress[1].Note)
	}
}

func TestComplete(t *testing.T) {
	g := NewGoal("user-1", GoalFrequency, "12 sessions", 12)
	g.Complete()

	if g.Active() {
		t.Error("completed goal should be inactive")
	}
	if g.CompletedAt == nil {
		t.Error("CompletedAt should be set")
	}
}

func TestDisplayTitleLegacyFallback(t *testing.T) {
	g := &Goal{Label: "old label"}
	if got := g.DisplayTitle(); got != "old label" {
		t.Errorf("DisplayTitle = %q, want legacy label", got)
	}

	g.Title = "new title"
	if got := g.DisplayTitle(); got != "new title" {
		t.Errorf("DisplayTitle = %q, want new title", got)
	}
}

func TestActiveTreatsMissingFlagAsActive(t *testing.T) {
	g := &Goal{}
	if !g.Active() {
		t.Error("goal without isActive field should read as active")
	}
}
