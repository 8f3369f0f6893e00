// ABOUTME: Field-level merge for the per-user config bundle.
// ABOUTME: Whole-field remote overwrite, except timestamp-guarded dimensions.
package merge

import "github.com/harperreed/fittrack/internal/models"

// Bundles merges a remote config bundle into the local one and returns the
// converged bundle that both sides should hold afterwards.
//
// The baseline is local. Each top-level field the remote has a non-empty
// value for replaces the local field wholesale; config-like data is edited
// from one active device at a time, so field-level overwrite is enough. The
// exception is the metric-dimension map, which users toggle in rapid bursts
// from whichever device is in hand: it only moves in the direction of the
// newer metric-dimension timestamp.
func Bundles(local, remote *models.UserConfigBundle) *models.UserConfigBundle {
	if remote == nil {
		out := *local
		return &out
	}

	out := *local

	if len(remote.Tags) > 0 {
		out.Tags = remote.Tags
	}
	if len(remote.CustomExercises) > 0 {
		out.CustomExercises = remote.CustomExercises
	}
	if len(remote.ExerciseNotes) > 0 {
		out.ExerciseNotes = remote.ExerciseNotes
	}
	if len(remote.RestPrefs) > 0 {
		out.RestPrefs = remote.RestPrefs
	}
	if len(remote.Starred) > 0 {
		out.Starred = remote.Starred
	}
	if len(remote.ExerciseOverrides) > 0 {
		out.ExerciseOverrides = remote.ExerciseOverrides
	}

	// Strictly newer remote timestamp wins; ties keep local.
	if remote.MetricDimensionsUpdatedAt.After(local.MetricDimensionsUpdatedAt) {
		out.MetricDimensions = remote.MetricDimensions
		out.MetricDimensionsUpdatedAt = remote.MetricDimensionsUpdatedAt
	}

	if remote.UpdatedAt.After(out.UpdatedAt) {
		out.UpdatedAt = remote.UpdatedAt
	}

	return &out
}
