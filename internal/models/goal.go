// ABOUTME: Goal model with progress history and auto-update rules.
// ABOUTME: Goals track weight, strength, or training-frequency targets.
package models

import "time"

// GoalType classifies what a goal tracks.
type GoalType string

const (
	GoalWeight    GoalType = "weight"
	GoalStrength  GoalType = "strength"
	GoalFrequency GoalType = "frequency"
)

// IsValidGoalType reports whether s names a known goal type.
func IsValidGoalType(s string) bool {
	switch GoalType(s) {
	case GoalWeight, GoalStrength, GoalFrequency:
		return true
	}
	return false
}

// DataSource says how a goal's current value is maintained.
type DataSource string

const (
	SourceManual DataSource = "manual"
	SourceAuto   DataSource = "auto"
)

// Aggregations an auto-update rule can apply.
const (
	AggMaxWeight    = "max_weight"    // heaviest set logged for the exercise
	AggSessionCount = "session_count" // sessions this calendar month
	AggBodyWeight   = "body_weight"   // latest weight entry
)

// AutoRule tells the auto-updater which data feeds an auto-sourced goal.
type AutoRule struct {
	Exercise    string `json:"exercise,omitempty"`
	Aggregation string `json:"aggregation"`
}

// ProgressEntry is one timestamped point in a goal's progress history.
type ProgressEntry struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
	Note  string    `json:"note,omitempty"`
}

// Goal is a tracked target. Label is the legacy name field kept for records
// written before Title existed; IsActive is a pointer so the migrator can
// distinguish a legacy record (field absent) from an archived goal (false).
type Goal struct {
	ID           string          `json:"id"`
	UserID       string          `json:"userId"`
	Type         GoalType        `json:"type"`
	Category     string          `json:"category,omitempty"`
	Title        string          `json:"title"`
	Label        string          `json:"label,omitempty"`
	TargetValue  float64         `json:"targetValue"`
	CurrentValue float64         `json:"currentValue"`
	Unit         string          `json:"unit,omitempty"`
	StartDate    time.Time       `json:"startDate"`
	TargetDate   time.Time       `json:"targetDate,omitempty"`
	DataSource   DataSource      `json:"dataSource"`
	AutoRule     *AutoRule       `json:"autoRule,omitempty"`
	Progress     []ProgressEntry `json:"progressHistory"`
	IsActive     *bool           `json:"isActive,omitempty"`
	CompletedAt  *time.Time      `json:"completedAt,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// NewGoal creates an active manual goal starting now.
func NewGoal(userID string, typ GoalType, title string, target float64) *Goal {
	now := time.Now()
	active := true
	return &Goal{
		ID:          NewID(),
		UserID:      userID,
		Type:        typ,
		Title:       title,
		TargetValue: target,
		StartDate:   now,
		DataSource:  SourceManual,
		Progress:    []ProgressEntry{},
		IsActive:    &active,
		CreatedAt:   now,
	}
}

// WithAutoRule marks the goal auto-sourced with the given rule.
func (g *Goal) WithAutoRule(rule AutoRule) *Goal {
	g.DataSource = SourceAuto
	g.AutoRule = &rule
	return g
}

// Active reports whether the goal is still being tracked.
func (g *Goal) Active() bool {
	return g.IsActive == nil || *g.IsActive
}

// RecordProgress appends a progress point and updates the current value.
func (g *Goal) RecordProgress(value float64, note string) {
	g.CurrentValue = value
	g.Progress = append(g.Progress, ProgressEntry{
		Date:  time.Now(),
		Value: value,
		Note:  note,
	})
}

// Complete archives the goal. Completed goals are never hard-deleted by the
// engine; they stay in history with isActive=false.
func (g *Goal) Complete() {
	now := time.Now()
	inactive := false
	g.IsActive = &inactive
	g.CompletedAt = &now
}

// DisplayTitle returns Title, falling back to the legacy Label field for
// records that predate the migrator.
func (g *Goal) DisplayTitle() string {
	if g.Title != "" {
		return g.Title
	}
	return g.Label
}
