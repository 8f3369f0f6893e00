// ABOUTME: Schema-evolution backfills for records written by older clients.
// ABOUTME: Migrations are idempotent; presence checks decide what to fill.
package migrate

import (
	"github.com/harperreed/fittrack/internal/models"
)

// Records carry no schema version. Each migrator looks for fields a current
// client always writes and backfills the ones an older client left out, so
// running a migrator on already-migrated data changes nothing. Callers
// persist the record back only when a migrator reports a change, which keeps
// migration to one write per record per device.

// Workout backfills missing per-exercise instance configs. Returns true if
// the session was modified.
func Workout(w *models.WorkoutSession) bool {
	changed := false
	for i := range w.Exercises {
		if w.Exercises[i].Config == nil {
			w.Exercises[i].Config = models.DefaultInstanceConfig()
			changed = true
		}
	}
	return changed
}

// Goal backfills the five fields added since the first goal schema: title,
// start date, data source, progress history, and the active flag. Legacy
// goals carried only a label; title inherits it.
func Goal(g *models.Goal) bool {
	changed := false

	if g.Title == "" && g.Label != "" {
		g.Title = g.Label
		changed = true
	}
	if g.StartDate.IsZero() {
		if !g.CreatedAt.IsZero() {
			g.StartDate = g.CreatedAt
		} else if len(g.Progress) > 0 {
			g.StartDate = g.Progress[0].Date
		}
		if !g.StartDate.IsZero() {
			changed = true
		}
	}
	if g.DataSource == "" {
		g.DataSource = models.SourceManual
		changed = true
	}
	if g.Progress == nil {
		g.Progress = []models.ProgressEntry{}
		changed = true
	}
	if g.IsActive == nil {
		active := true
		g.IsActive = &active
		changed = true
	}
	return changed
}

// WeightEntry backfills the unit tag on entries from before units were
// recorded; weights have always been stored in kilograms.
func WeightEntry(e *models.WeightEntry) bool {
	if e.Unit == "" {
		e.Unit = "kg"
		return true
	}
	return false
}
