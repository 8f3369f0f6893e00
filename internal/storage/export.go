// ABOUTME: Full-dataset export for backups and data portability.
// ABOUTME: Gathers every entity type for one user into a single structure.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

// ExportData holds a complete snapshot of one user's local data.
type ExportData struct {
	ExportedAt   time.Time                `json:"exportedAt"`
	UserID       string                   `json:"userId"`
	Workouts     []*models.WorkoutSession `json:"workouts"`
	WeightLog    []*models.WeightEntry    `json:"weightLog"`
	Measurements []*models.Measurement    `json:"measurements"`
	Goals        []*models.Goal           `json:"goals"`
}

// Export gathers all of a user's records from the local store.
func (d *DB) Export(userID string) (*ExportData, error) {
	workouts, err := d.ListWorkouts(userID, 0)
	if err != nil {
		return nil, fmt.Errorf("export workouts: %w", err)
	}
	weights, err := d.ListWeightEntries(userID, 0)
	if err != nil {
		return nil, fmt.Errorf("export weight log: %w", err)
	}
	measurements, err := d.ListMeasurements(userID, "", 0)
	if err != nil {
		return nil, fmt.Errorf("export measurements: %w", err)
	}
	goals, err := d.ListGoals(userID, false)
	if err != nil {
		return nil, fmt.Errorf("export goals: %w", err)
	}

	return &ExportData{
		ExportedAt:   time.Now(),
		UserID:       userID,
		Workouts:     workouts,
		WeightLog:    weights,
		Measurements: measurements,
		Goals:        goals,
	}, nil
}

// MarshalIndent renders the export as pretty-printed JSON.
func (e *ExportData) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

// Import writes every record from an export snapshot into the local store,
// overwriting records that share an id.
func (d *DB) Import(data *ExportData) error {
	for _, w := range data.Workouts {
		if err := d.SaveWorkout(w); err != nil {
			return fmt.Errorf("import workout %s: %w", w.ID, err)
		}
	}
	for _, e := range data.WeightLog {
		if err := d.SaveWeightEntry(e); err != nil {
			return fmt.Errorf("import weight entry %s: %w", e.ID, err)
		}
	}
	for _, m := range data.Measurements {
		if err := d.SaveMeasurement(m); err != nil {
			return fmt.Errorf("import measurement %s: %w", m.ID, err)
		}
	}
	for _, g := range data.Goals {
		if err := d.SaveGoal(g); err != nil {
			return fmt.Errorf("import goal %s: %w", g.ID, err)
		}
	}
	return nil
}
