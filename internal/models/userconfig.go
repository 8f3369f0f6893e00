// ABOUTME: UserConfigBundle, the single per-user blob of exercise preferences.
// ABOUTME: Synced as one unit; metric dimensions carry their own timestamp.
package models

import "time"

// ExerciseTag is a user-defined tag for grouping exercises.
type ExerciseTag struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// CustomExercise is a user-defined exercise definition.
type CustomExercise struct {
	Name       string   `json:"name"`
	Category   string   `json:"category,omitempty"`
	Dimensions []string `json:"dimensions,omitempty"`
}

// UserConfigBundle carries every per-exercise preference as one blob. The
// maps are keyed by resolved exercise name.
//
// MetricDimensionsUpdatedAt changes only when a dimension is toggled; it
// arbitrates merge conflicts for MetricDimensions alone. All other fields
// merge by whole-field overwrite.
type UserConfigBundle struct {
	UserID                    string                    `json:"userId"`
	Tags                      []ExerciseTag             `json:"tags,omitempty"`
	CustomExercises           []CustomExercise          `json:"customExercises,omitempty"`
	ExerciseNotes             map[string]string         `json:"exerciseNotes,omitempty"`
	RestPrefs                 map[string]int            `json:"restPrefs,omitempty"`
	Starred                   map[string]bool           `json:"starred,omitempty"`
	ExerciseOverrides         map[string]InstanceConfig `json:"exerciseOverrides,omitempty"`
	MetricDimensions          map[string][]string       `json:"metricDimensions,omitempty"`
	MetricDimensionsUpdatedAt time.Time                 `json:"metricDimensionsUpdatedAt"`
	UpdatedAt                 time.Time                 `json:"updatedAt"`
}

// IsEmpty reports whether the bundle carries no preferences at all.
func (b *UserConfigBundle) IsEmpty() bool {
	return len(b.Tags) == 0 &&
		len(b.CustomExercises) == 0 &&
		len(b.ExerciseNotes) == 0 &&
		len(b.RestPrefs) == 0 &&
		len(b.Starred) == 0 &&
		len(b.ExerciseOverrides) == 0 &&
		len(b.MetricDimensions) == 0
}
